package middlewares

import (
	"fmt"
	"net/http"

	"github.com/wb-go/wbf/ginext"

	"github.com/reservio/booking-notifier/internal/api/respond"
)

// CORSMiddleware allows the operator dashboard to call the API from the
// browser.
func CORSMiddleware() func(c *ginext.Context) {
	return func(c *ginext.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Authorization, Content-Type, X-API-Key")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// APIKey guards the cron and operator endpoints with a shared secret
// carried in the X-API-Key header.
func APIKey(key string) func(c *ginext.Context) {
	return func(c *ginext.Context) {
		if key == "" || c.GetHeader("X-API-Key") != key {
			respond.Fail(c.Writer, http.StatusUnauthorized, fmt.Errorf("invalid api key"))
			c.Abort()
			return
		}

		c.Next()
	}
}
