package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"luxe-studio/internal/database"
	"luxe-studio/internal/middleware"
	"luxe-studio/internal/models"

	"github.com/gin-gonic/gin"
)

// Список заявок + фильтр по статусу
func ListInquiries(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	statusStr := c.Query("status")
	status := models.InquiryStatus(statusStr)
	switch status {
	case "", models.InquiryNew, models.InquiryHandled:
	default:
		c.String(http.StatusBadRequest, "Unknown status")
		return
	}

	inquiries, err := database.ListInquiries(status, 200)
	if err != nil {
		c.String(http.StatusInternalServerError, "Failed to load inquiries")
		return
	}

	render(c, http.StatusOK, "inquiries.html", gin.H{
		"Title":        "Inquiries",
		"inquiries":    inquiries,
		"FilterStatus": statusStr,
		"IsAdmin":      user.IsAdmin(),
	})
}

func MarkInquiryHandled(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		c.String(http.StatusBadRequest, "Invalid inquiry ID")
		return
	}

	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.Redirect(http.StatusFound, middleware.LoginRedirect(c.Request.URL.Path))
		return
	}

	if err := database.MarkInquiryHandled(uint(id), user.ID); err != nil {
		if errors.Is(err, database.ErrInquiryNotFound) {
			c.String(http.StatusNotFound, "Inquiry not found")
			return
		}
		c.String(http.StatusInternalServerError, "Failed to update inquiry")
		return
	}

	c.Redirect(http.StatusFound, "/staff/inquiries")
}
