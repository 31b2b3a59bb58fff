package middleware

import (
	"github.com/gin-gonic/gin"
)

// SecurityHeaders adds common security headers to all responses.
// The CSP admits the KnightLab CDN, which serves the TimelineJS widget the
// bundled client loads.
func SecurityHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("X-Frame-Options", "DENY")
		c.Header("X-XSS-Protection", "1; mode=block")
		c.Header("Referrer-Policy", "strict-origin-when-cross-origin")
		c.Header("Permissions-Policy", "camera=(), microphone=(), geolocation=()")
		c.Header("Content-Security-Policy",
			"default-src 'self'; "+
				"script-src 'self' https://cdn.knightlab.com; "+
				"style-src 'self' 'unsafe-inline' https://cdn.knightlab.com; "+
				"img-src 'self' data: https:; "+
				"font-src 'self' https:; "+
				"connect-src 'self'; "+
				"frame-ancestors 'none'")

		// HSTS (only when serving TLS)
		if c.Request.TLS != nil {
			c.Header("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
		}

		c.Next()
	}
}
