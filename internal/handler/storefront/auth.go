package storefront

import (
	"net/http"

	"github.com/agromarket-cm/agromarket/internal/domain"
	"github.com/agromarket-cm/agromarket/internal/handler"
	"github.com/agromarket-cm/agromarket/internal/middleware"
	"github.com/agromarket-cm/agromarket/internal/telemetry"
)

// Authenticator is the slice of the account registry the auth handler needs.
type Authenticator interface {
	Authenticate(email, password string) (*domain.User, error)
}

// AuthHandler serves the demo sign-in routes. Signing in only attaches an
// identity to the session for checkout pre-fill; the cart is unaffected.
type AuthHandler struct {
	registry Authenticator
	metrics  *telemetry.BusinessMetrics
}

// NewAuthHandler creates a new auth handler. metrics may be nil.
func NewAuthHandler(registry Authenticator, metrics *telemetry.BusinessMetrics) *AuthHandler {
	return &AuthHandler{registry: registry, metrics: metrics}
}

// SessionResponse is the payload for GET /session.
type SessionResponse struct {
	Authenticated bool      `json:"authenticated"`
	User          *UserView `json:"user,omitempty"`
}

// Login handles POST /login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	sess := middleware.GetSession(r.Context())

	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := handler.DecodeJSON(r, &req); err != nil {
		handler.RespondError(w, r, err)
		return
	}

	user, err := h.registry.Authenticate(req.Email, req.Password)
	if err != nil {
		if h.metrics != nil {
			h.metrics.LoginFailed.Inc()
		}
		handler.RespondError(w, r, err)
		return
	}

	sess.SetUser(user)
	if h.metrics != nil {
		h.metrics.Logins.Inc()
	}

	v := userView(user)
	handler.RespondJSON(w, http.StatusOK, SessionResponse{Authenticated: true, User: &v})
}

// Logout handles POST /logout. The cart survives sign-out.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	sess := middleware.GetSession(r.Context())
	sess.ClearUser()
	handler.RespondJSON(w, http.StatusOK, SessionResponse{Authenticated: false})
}

// Session handles GET /session.
func (h *AuthHandler) Session(w http.ResponseWriter, r *http.Request) {
	sess := middleware.GetSession(r.Context())

	if user := sess.User(); user != nil {
		v := userView(user)
		handler.RespondJSON(w, http.StatusOK, SessionResponse{Authenticated: true, User: &v})
		return
	}
	handler.RespondJSON(w, http.StatusOK, SessionResponse{Authenticated: false})
}
