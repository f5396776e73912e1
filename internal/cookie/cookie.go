// Package cookie provides the session cookie helpers. All session state
// travels through one HttpOnly cookie; handlers never touch http.Cookie
// directly.
package cookie

import (
	"net/http"
	"time"
)

// Config holds cookie security settings.
type Config struct {
	// Secure requires HTTPS for the cookie. True in production, false in
	// development.
	Secure bool
}

// NewConfig creates a new cookie configuration.
func NewConfig(secure bool) *Config {
	return &Config{Secure: secure}
}

// SetSession sets a session cookie. HttpOnly and SameSite=Lax always;
// Secure per config.
func (c *Config) SetSession(w http.ResponseWriter, name, value string, maxAge time.Duration) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   int(maxAge.Seconds()),
		HttpOnly: true,
		Secure:   c.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearSession removes a session cookie by expiring it immediately.
func (c *Config) ClearSession(w http.ResponseWriter, name string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   c.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// Get returns the named cookie's value, or empty string when absent.
func Get(r *http.Request, name string) string {
	ck, err := r.Cookie(name)
	if err != nil {
		return ""
	}
	return ck.Value
}
