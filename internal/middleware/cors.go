package middleware

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORS allows every origin outside production. In production only allowedOrigins are
// accepted, falling back to every origin when the list is empty.
func CORS(isProduction bool, allowedOrigins []string) gin.HandlerFunc {
	config := cors.DefaultConfig()
	if !isProduction || len(allowedOrigins) == 0 {
		config.AllowAllOrigins = true
	} else {
		config.AllowOrigins = allowedOrigins
	}
	config.AddAllowHeaders("Authorization", "X-Request-ID")
	config.AddExposeHeaders("X-Request-ID", "Content-Disposition")
	config.MaxAge = 12 * time.Hour
	return cors.New(config)
}
