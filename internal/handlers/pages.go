package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func AboutPage(c *gin.Context) {
	render(c, http.StatusOK, "about.html", gin.H{"Title": "About"})
}

func ServicesPage(c *gin.Context) {
	render(c, http.StatusOK, "services.html", gin.H{"Title": "Services"})
}
