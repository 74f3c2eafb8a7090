package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	accessCookieName  = "accessToken"
	refreshCookieName = "refreshToken"

	accessCookieMaxAge  = 24 * 60 * 60
	refreshCookieMaxAge = 7 * 24 * 60 * 60
)

// CookieOptions enumerates the session cookie attributes resolved once
// from configuration at startup.
type CookieOptions struct {
	Secure bool
}

func (o CookieOptions) setSessionCookies(c *gin.Context, accessToken, refreshToken string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(accessCookieName, accessToken, accessCookieMaxAge, "/", "", o.Secure, true)
	c.SetCookie(refreshCookieName, refreshToken, refreshCookieMaxAge, "/", "", o.Secure, true)
}

func (o CookieOptions) clearSessionCookies(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(accessCookieName, "", -1, "/", "", o.Secure, true)
	c.SetCookie(refreshCookieName, "", -1, "/", "", o.Secure, true)
}
