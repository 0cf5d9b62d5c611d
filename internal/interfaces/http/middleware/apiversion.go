package middleware

import (
	"net/http"
	"regexp"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/portalkit/portalkit/internal/shared/utils"
)

const (
	HeaderAPIVersion  = "X-API-Version"
	CurrentAPIVersion = 1
)

// vendorMediaType matches "application/vnd.portalkit.v1+json".
var vendorMediaType = regexp.MustCompile(`application/vnd\.portalkit\.v(\d+)\+json`)

// APIVersion echoes CurrentAPIVersion on every response. A request that pins
// another version, through X-API-Version or the vendor media type in Accept,
// is answered with 406.
func APIVersion() gin.HandlerFunc {
	current := strconv.Itoa(CurrentAPIVersion)

	return func(c *gin.Context) {
		c.Header(HeaderAPIVersion, current)

		requested := c.GetHeader(HeaderAPIVersion)
		if requested == "" {
			if m := vendorMediaType.FindStringSubmatch(c.GetHeader("Accept")); len(m) == 2 {
				requested = m[1]
			}
		}
		if requested != "" && requested != current {
			utils.ErrorResponse(c, http.StatusNotAcceptable, "unsupported API version "+requested)
			c.Abort()
			return
		}

		c.Next()
	}
}
