package handlers

import (
	"log"
	"net/http"
	"strings"

	"luxe-studio/internal/database"
	"luxe-studio/internal/models"

	"github.com/gin-gonic/gin"
)

type contactForm struct {
	Name    string `form:"name"`
	Email   string `form:"email"`
	Message string `form:"message"`
}

func (f *contactForm) normalize() {
	f.Name = strings.TrimSpace(f.Name)
	f.Email = strings.TrimSpace(f.Email)
	f.Message = strings.TrimSpace(f.Message)
}

// validate returns the message shown to the visitor, or "" when the form is fine.
func (f contactForm) validate() string {
	switch {
	case len([]rune(f.Name)) < 2:
		return "Please tell us your name"
	case !validEmail(f.Email):
		return "Please enter a valid email address"
	case len([]rune(f.Message)) < 10:
		return "Your message should be at least 10 characters"
	case len(f.Message) > 5000:
		return "Your message is too long"
	}
	return ""
}

func validEmail(s string) bool {
	at := strings.LastIndex(s, "@")
	return at > 0 && at < len(s)-1 && !strings.ContainsAny(s, " \t\r\n")
}

func ContactPage(c *gin.Context) {
	render(c, http.StatusOK, "contact.html", gin.H{
		"Title": "Contact",
		"form":  contactForm{},
		"sent":  c.Query("sent") == "1",
	})
}

func SubmitContact(c *gin.Context) {
	var form contactForm
	if err := c.ShouldBind(&form); err != nil {
		renderContactError(c, form, "Invalid form data")
		return
	}
	form.normalize()

	if msg := form.validate(); msg != "" {
		renderContactError(c, form, msg)
		return
	}

	// без БД заявка только пишется в лог
	if database.DB == nil {
		log.Printf("contact inquiry from %s <%s>: %q", form.Name, form.Email, form.Message)
		c.Redirect(http.StatusFound, "/contact?sent=1")
		return
	}

	inq := models.Inquiry{
		Name:    form.Name,
		Email:   form.Email,
		Message: form.Message,
	}
	if err := database.CreateInquiry(&inq); err != nil {
		log.Printf("failed to save inquiry: %v", err)
		render(c, http.StatusInternalServerError, "contact.html", gin.H{
			"Title": "Contact",
			"form":  form,
			"error": "We could not send your message, please try again later",
		})
		return
	}

	c.Redirect(http.StatusFound, "/contact?sent=1")
}

func renderContactError(c *gin.Context, form contactForm, msg string) {
	render(c, http.StatusBadRequest, "contact.html", gin.H{
		"Title": "Contact",
		"form":  form,
		"error": msg,
	})
}
