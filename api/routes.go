package api

import (
	"github.com/gin-gonic/gin"
)

// Config holds application configuration
type Config struct {
	Port        string
	MaxFileSize int64
}

func SetupRoutes(r *gin.Engine, config *Config) {
	apiGroup := r.Group("/api/pdf")
	{
		apiGroup.POST("/inspect", func(c *gin.Context) { HandleInspect(c, config) })
		apiGroup.POST("/parse-spec", func(c *gin.Context) { HandleParseSpec(c, config) })
		apiGroup.POST("/extract", func(c *gin.Context) { HandleExtract(c, config) })
	}
}
