package handlers

import (
	"net/http"

	"luxe-studio/internal/database"

	"github.com/gin-gonic/gin"
)

func ListAuditLogs(c *gin.Context) {
	logs, err := database.ListAuditLogs(200)
	if err != nil {
		c.String(http.StatusInternalServerError, "Failed to load audit log")
		return
	}

	render(c, http.StatusOK, "audit_list.html", gin.H{
		"Title": "Audit log",
		"logs":  logs,
	})
}
