package middleware

import (
	"log"

	"luxe-studio/internal/catalog"
	"luxe-studio/internal/showcase"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const (
	sessCategory  = "category"
	sessProjectID = "project_id"
	sessImage     = "image"

	showcaseKey = "Showcase"
)

// LoadShowcase restores the visitor's portfolio state from the session.
func LoadShowcase(cat *catalog.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := sessions.Default(c)

		var st showcase.State
		st.Category, _ = sess.Get(sessCategory).(string)
		st.ProjectID, _ = sess.Get(sessProjectID).(string)
		st.Image, _ = sess.Get(sessImage).(int)

		c.Set(showcaseKey, showcase.Restore(cat, st))
		c.Next()
	}
}

// Showcase returns the controller placed by LoadShowcase.
func Showcase(c *gin.Context) *showcase.Controller {
	return c.MustGet(showcaseKey).(*showcase.Controller)
}

// SaveShowcase writes the controller's state back to the session.
func SaveShowcase(c *gin.Context) error {
	st := Showcase(c).Snapshot()

	sess := sessions.Default(c)
	sess.Set(sessCategory, st.Category)
	if st.ProjectID == "" {
		sess.Delete(sessProjectID)
		sess.Delete(sessImage)
	} else {
		sess.Set(sessProjectID, st.ProjectID)
		sess.Set(sessImage, st.Image)
	}

	if err := sess.Save(); err != nil {
		log.Printf("failed to save showcase state: %v", err)
		return err
	}
	return nil
}
