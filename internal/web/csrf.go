package web

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	gomponents "maragu.dev/gomponents"
	html "maragu.dev/gomponents/html"
)

const (
	csrfCookieName = "um_csrf"
	csrfFormField  = "csrf_token"
	csrfHeader     = "X-CSRF-Token"
	csrfContextKey = "web.csrf_token"
)

// EnsureCSRFToken issues the CSRF cookie when the request has none and
// makes the token available to the page being rendered.
func (h *Handler) EnsureCSRFToken() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := readCSRFCookie(c.Request)
		if token == "" {
			token = randomToken(32)
			http.SetCookie(c.Writer, &http.Cookie{
				Name:     csrfCookieName,
				Value:    token,
				Path:     "/",
				HttpOnly: true,
				Secure:   h.production,
				SameSite: http.SameSiteLaxMode,
			})
		}
		c.Set(csrfContextKey, token)
		c.Next()
	}
}

// RequireCSRF rejects unsafe requests whose form or header token does not
// match the cookie
func (h *Handler) RequireCSRF() gin.HandlerFunc {
	return func(c *gin.Context) {
		switch c.Request.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			c.Next()
			return
		}

		cookieToken := readCSRFCookie(c.Request)
		if cookieToken == "" {
			renderHTML(c, http.StatusForbidden, errorPage("CSRF Validation Failed", "Missing CSRF token cookie."))
			c.Abort()
			return
		}

		formToken := strings.TrimSpace(c.GetHeader(csrfHeader))
		if formToken == "" {
			formToken = strings.TrimSpace(c.PostForm(csrfFormField))
		}

		if subtle.ConstantTimeCompare([]byte(cookieToken), []byte(formToken)) != 1 {
			renderHTML(c, http.StatusForbidden, errorPage("CSRF Validation Failed", "Invalid or missing CSRF token."))
			c.Abort()
			return
		}

		c.Next()
	}
}

func csrfField(c *gin.Context) gomponents.Node {
	token := c.GetString(csrfContextKey)
	if token == "" {
		token = readCSRFCookie(c.Request)
	}
	return html.Input(
		html.Type("hidden"),
		html.Name(csrfFormField),
		html.Value(token),
	)
}

func readCSRFCookie(r *http.Request) string {
	cookie, err := r.Cookie(csrfCookieName)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(cookie.Value)
}

func randomToken(size int) string {
	if size < 16 {
		size = 16
	}
	b := make([]byte, size)
	_, _ = rand.Read(b)
	return base64.RawURLEncoding.EncodeToString(b)
}
