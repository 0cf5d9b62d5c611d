package utils

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/portalkit/portalkit/internal/shared/config"
	"github.com/portalkit/portalkit/internal/shared/constants"
)

// SetAuthCookies sets the access and refresh tokens as HttpOnly cookies.
func SetAuthCookies(c *gin.Context, cookieConfig config.CookieConfig, accessToken, refreshToken string, accessTTL, refreshTTL time.Duration) {
	SetAccessTokenCookie(c, cookieConfig, accessToken, accessTTL)
	setCookie(c, cookieConfig, constants.CookieRefreshToken, refreshToken, int(refreshTTL.Seconds()))
}

// SetAccessTokenCookie replaces only the access token, as on refresh.
func SetAccessTokenCookie(c *gin.Context, cookieConfig config.CookieConfig, accessToken string, accessTTL time.Duration) {
	setCookie(c, cookieConfig, constants.CookieAccessToken, accessToken, int(accessTTL.Seconds()))
}

func ClearAuthCookies(c *gin.Context, cookieConfig config.CookieConfig) {
	setCookie(c, cookieConfig, constants.CookieAccessToken, "", -1)
	setCookie(c, cookieConfig, constants.CookieRefreshToken, "", -1)
}

// GetTokenFromCookie returns "" when the cookie is absent.
func GetTokenFromCookie(c *gin.Context, cookieName string) string {
	token, err := c.Cookie(cookieName)
	if err != nil {
		return ""
	}
	return token
}

func setCookie(c *gin.Context, cookieConfig config.CookieConfig, name, value string, maxAge int) {
	path := cookieConfig.Path
	if path == "" {
		path = "/"
	}
	c.SetSameSite(parseSameSite(cookieConfig.SameSite))
	c.SetCookie(name, value, maxAge, path, cookieConfig.Domain, cookieConfig.Secure, true)
}

func parseSameSite(sameSite string) http.SameSite {
	switch sameSite {
	case "Strict":
		return http.SameSiteStrictMode
	case "None":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
