package auth

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/gridpass/authcore/core/cookie"
	"github.com/gridpass/authcore/core/logger"
	"github.com/gridpass/authcore/core/session"
	"github.com/gridpass/authcore/core/user"
	"github.com/gridpass/authcore/pkg/clientip"
	"github.com/gridpass/authcore/pkg/useragent"
)

// Handler is the HTTP boundary of the auth core: account form actions on the
// cookie channel and token endpoints on the bearer channel. The session
// middleware must run before every route so the cookie-channel result is in
// the request context.
type Handler struct {
	svc        *Service
	gateway    *Gateway
	cookies    *cookie.Manager
	cookieName string
	log        *slog.Logger
}

// HandlerOption configures a Handler.
type HandlerOption func(*Handler)

// WithCookieName overrides the session cookie name.
func WithCookieName(name string) HandlerOption {
	return func(h *Handler) {
		if name != "" {
			h.cookieName = name
		}
	}
}

// WithHandlerLogger sets the handler logger. Defaults to a discard logger.
func WithHandlerLogger(log *slog.Logger) HandlerOption {
	return func(h *Handler) {
		if log != nil {
			h.log = log
		}
	}
}

// NewHandler creates the auth HTTP handler.
func NewHandler(svc *Service, gateway *Gateway, cookies *cookie.Manager, opts ...HandlerOption) *Handler {
	h := &Handler{
		svc:        svc,
		gateway:    gateway,
		cookies:    cookies,
		cookieName: DefaultCookieName,
		log:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// DefaultCookieName is the session cookie name used unless overridden.
const DefaultCookieName = "auth_session"

// Routes mounts the auth endpoints on mux.
func (h *Handler) Routes(mux *http.ServeMux) {
	mux.HandleFunc("POST /auth/register", h.handleRegister)
	mux.HandleFunc("POST /auth/login", h.handleLogin)
	mux.HandleFunc("POST /auth/logout", h.handleLogout)
	mux.HandleFunc("POST /auth/access-token", h.handleAccessToken)
	mux.HandleFunc("POST /auth/refresh-token", h.handleRefreshToken)
}

// handleRegister creates an account from a username/password/confirm form and
// logs it in. Only a taken username gets a specific message; everything else
// about the credential stays generic.
func (h *Handler) handleRegister(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeError(w, http.StatusBadRequest, "invalid form data")
		return
	}

	username := r.PostFormValue("username")
	password := r.PostFormValue("password")
	confirm := r.PostFormValue("confirm_password")
	if password == "" || password != confirm {
		writeError(w, http.StatusBadRequest, ErrPasswordMismatch.Error())
		return
	}

	login, err := h.svc.Register(r.Context(), username, password, MetadataFromRequest(r))
	if err != nil {
		switch {
		case errors.Is(err, user.ErrUsernameTaken):
			writeError(w, http.StatusBadRequest, "user with this name already exists")
		case errors.Is(err, ErrStoreUnavailable):
			h.log.ErrorContext(r.Context(), "registration failed", logger.Component("auth.handler"), logger.Error(err))
			writeError(w, http.StatusServiceUnavailable, "service unavailable")
		default:
			writeError(w, http.StatusBadRequest, ErrInvalidUsernameOrPassword.Error())
		}
		return
	}

	h.setSessionCookie(w, login)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// handleLogin authenticates a username/password form and starts a session.
func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeError(w, http.StatusBadRequest, "invalid form data")
		return
	}

	login, err := h.svc.Authenticate(r.Context(), r.PostFormValue("username"), r.PostFormValue("password"), MetadataFromRequest(r))
	if err != nil {
		if errors.Is(err, ErrStoreUnavailable) {
			h.log.ErrorContext(r.Context(), "login failed", logger.Component("auth.handler"), logger.Error(err))
			writeError(w, http.StatusServiceUnavailable, "service unavailable")
			return
		}
		// Unknown username and wrong password share one message.
		writeError(w, http.StatusBadRequest, ErrInvalidUsernameOrPassword.Error())
		return
	}

	h.setSessionCookie(w, login)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// handleLogout deletes the current session, revokes the user's refresh
// tokens, and clears the cookie. Without a live session it only clears.
func (h *Handler) handleLogout(w http.ResponseWriter, r *http.Request) {
	usr, sess := SessionFromContext(r.Context())
	if sess != nil {
		if err := h.svc.Logout(r.Context(), sess.ID); err != nil {
			h.log.ErrorContext(r.Context(), "logout failed", logger.Component("auth.handler"), logger.Error(err))
			writeError(w, http.StatusServiceUnavailable, "service unavailable")
			return
		}
		if err := h.gateway.RevokeRefreshTokens(r.Context(), usr.ID); err != nil {
			h.log.ErrorContext(r.Context(), "refresh revocation failed", logger.Component("auth.handler"), logger.Error(err))
		}
	}

	h.cookies.Delete(w, h.cookieName)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// handleAccessToken exchanges a refresh token for a fresh access token. Every
// rejection shares one opaque 401 body; only infrastructure failures differ.
func (h *Handler) handleAccessToken(w http.ResponseWriter, r *http.Request) {
	var req struct {
		RefreshToken string `json:"refresh_token"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.RefreshToken == "" {
		writeError(w, http.StatusUnauthorized, ErrInvalidRefreshToken.Error())
		return
	}

	accessToken, expiresAt, err := h.gateway.ExchangeRefreshToken(r.Context(), req.RefreshToken)
	if err != nil {
		if errors.Is(err, ErrStoreUnavailable) {
			writeError(w, http.StatusServiceUnavailable, "service unavailable")
			return
		}
		writeError(w, http.StatusUnauthorized, ErrInvalidRefreshToken.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"access_token": accessToken,
		"expires_at":   expiresAt.Unix(),
	})
}

// handleRefreshToken issues a refresh token to the session-authenticated
// user. The raw token appears in this response and nowhere else; issuing
// invalidates any previously issued refresh token for the user.
func (h *Handler) handleRefreshToken(w http.ResponseWriter, r *http.Request) {
	usr, _ := SessionFromContext(r.Context())
	if usr == nil {
		writeError(w, http.StatusUnauthorized, ErrUnauthenticated.Error())
		return
	}

	refreshToken, err := h.gateway.IssueRefreshToken(r.Context(), usr.ID, usr.Username)
	if err != nil {
		h.log.ErrorContext(r.Context(), "refresh issuance failed", logger.Component("auth.handler"), logger.Error(err))
		writeError(w, http.StatusServiceUnavailable, "service unavailable")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"refresh_token": refreshToken})
}

func (h *Handler) setSessionCookie(w http.ResponseWriter, login Login) {
	h.cookies.Set(w, h.cookieName, login.RawToken, cookie.WithExpires(login.Session.ExpiresAt))
}

// MetadataFromRequest collects client metadata for a new session from the
// request: client IP, device classification, and edge geo headers.
func MetadataFromRequest(r *http.Request) session.Metadata {
	ua := r.UserAgent()
	return session.Metadata{
		IP:         clientip.GetIP(r),
		Country:    geoHeader(r, "X-Vercel-IP-Country", "CF-IPCountry"),
		Region:     geoHeader(r, "X-Vercel-IP-Country-Region"),
		City:       geoHeader(r, "X-Vercel-IP-City"),
		DeviceType: useragent.DeviceType(ua),
		UserAgent:  ua,
	}
}

func geoHeader(r *http.Request, names ...string) string {
	for _, name := range names {
		if v := r.Header.Get(name); v != "" {
			return v
		}
	}
	return ""
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
