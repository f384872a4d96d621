// Package web serves the embedded resume form.
package web

import (
	"embed"
	"net/http"

	"github.com/gin-gonic/gin"
)

//go:embed index.html
var assets embed.FS

// RegisterRoutes serves the form at the site root.
func RegisterRoutes(r *gin.Engine) {
	r.GET("/", func(c *gin.Context) {
		page, err := assets.ReadFile("index.html")
		if err != nil {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.Data(http.StatusOK, "text/html; charset=utf-8", page)
	})
}
