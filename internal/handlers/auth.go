package handlers

import (
	"log"
	"net/http"
	"strings"
	"time"

	"luxe-studio/internal/database"
	"luxe-studio/internal/middleware"
	"luxe-studio/internal/models"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

func loginPage(c *gin.Context, status int, next, msg string) {
	render(c, status, "login.html", gin.H{"Title": "Staff login", "error": msg, "next": next})
}

func ShowLogin(c *gin.Context) {
	loginPage(c, http.StatusOK, c.Query("next"), "")
}

type loginForm struct {
	Username string `form:"username"`
	Password string `form:"password"`
	Next     string `form:"next"`
}

func Login(c *gin.Context) {
	var form loginForm
	if err := c.ShouldBind(&form); err != nil {
		loginPage(c, http.StatusBadRequest, "", "Invalid form data")
		return
	}

	var user models.User
	if err := database.DB.Where("username = ?", strings.TrimSpace(form.Username)).First(&user).Error; err != nil {
		loginPage(c, http.StatusBadRequest, form.Next, "Wrong username or password")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(form.Password)); err != nil {
		loginPage(c, http.StatusBadRequest, form.Next, "Wrong username or password")
		return
	}

	now := time.Now()
	if err := database.DB.Model(&user).Update("last_login_at", &now).Error; err != nil {
		log.Printf("failed to record login of %s: %v", user.Username, err)
	}

	sess := sessions.Default(c)
	sess.Set("user_id", user.ID)
	_ = sess.Save()

	target := "/staff/inquiries"
	if middleware.SafeNext(form.Next) {
		target = form.Next
	}
	c.Redirect(http.StatusFound, target)
}

// Logout drops only the staff keys so the visitor's portfolio state survives.
func Logout(c *gin.Context) {
	sess := sessions.Default(c)
	sess.Delete("user_id")
	_ = sess.Save()
	c.Redirect(http.StatusFound, "/staff/login")
}
