package middleware

import (
	"github.com/gin-gonic/gin"
)

// CORSConfig lists the browser origins allowed to call the API
type CORSConfig struct {
	// Always allowed (the deployed portfolio site)
	AllowedOrigins []string
	// Production disables the localhost dev origins
	IsProduction bool
}

var devOrigins = map[string]bool{
	"http://localhost:3000": true,
	"http://127.0.0.1:3000": true,
	"http://localhost:5173": true,
	"http://127.0.0.1:5173": true,
}

// CORSMiddleware adds CORS headers for allowed cross-origin requests.
// Disallowed origins get no CORS headers and the browser blocks the response.
// Preflight replies are left to the routes.
func CORSMiddleware(cfg CORSConfig) gin.HandlerFunc {
	allowed := make(map[string]bool, len(cfg.AllowedOrigins))
	for _, origin := range cfg.AllowedOrigins {
		if origin != "" {
			allowed[origin] = true
		}
	}

	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")

		isAllowed := allowed[origin] || (!cfg.IsProduction && devOrigins[origin])

		if origin != "" && isAllowed {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Headers", "Content-Type, Accept, Origin, X-Requested-With, X-Request-ID")
			c.Header("Access-Control-Allow-Methods", "POST, OPTIONS")
			c.Header("Access-Control-Expose-Headers", "X-Request-ID")
			c.Header("Access-Control-Max-Age", "86400") // 24 hours
		}

		// Vary header to ensure caches differentiate by Origin
		c.Header("Vary", "Origin")

		c.Next()
	}
}
