package auth

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/prakashpaswan/employee-portal/internal"
	"github.com/prakashpaswan/employee-portal/internal/transport"
	"github.com/prakashpaswan/employee-portal/pkg/logger"
)

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(svc ServiceAPI) *Handler {
	lg := logger.LoggerWrapper()
	if lg == nil {
		lg = slog.Default()
	}
	return &Handler{
		BaseHandler: transport.NewBaseHandler(lg),
		Service:     svc,
	}
}

// serviceError maps auth sentinel errors to AppErrors carrying HTTP status.
// Invalid and expired tokens answer with the same message so callers cannot
// distinguish them.
func serviceError(err error) error {
	switch {
	case errors.Is(err, ErrInvalidCredentials):
		return internal.NewUnauthorizedError("Invalid username or password", internal.ErrCodeInvalidCredentials)
	case errors.Is(err, ErrTokenExpired):
		return internal.NewUnauthorizedError("Invalid token", internal.ErrCodeTokenExpired)
	case errors.Is(err, ErrInvalidToken):
		return internal.NewUnauthorizedError("Invalid token", internal.ErrCodeInvalidToken)
	default:
		return internal.NewInternalError(err.Error(), err)
	}
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var dto LoginDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.HandleServiceError(w, internal.NewValidationError("invalid request body", internal.ErrCodeValidationFailed))
		return
	}

	resp, err := h.Service.Authenticate(dto)
	if err != nil {
		h.Logger.Warn("authentication failed", "username", dto.Username)
		h.HandleServiceError(w, serviceError(err))
		return
	}

	h.WriteJSON(w, http.StatusOK, resp)
}

// RequireAuth verifies the bearer token and stores the subject identifier in
// the request context for downstream handlers.
func (h *Handler) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := h.ExtractTokenFromHeader(r)
		if token == "" {
			h.HandleServiceError(w, internal.NewUnauthorizedError("Unauthorized", internal.ErrCodeMissingToken))
			return
		}

		claims, err := h.Service.ValidateToken(token)
		if err != nil {
			h.Logger.Warn("token validation failed", "error", err)
			h.HandleServiceError(w, serviceError(err))
			return
		}

		ctx := internal.ContextWithUserID(r.Context(), claims.UserID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// Profile returns the authenticated subject's profile. Only the identifier
// comes from the token; the display fields stay fixed until profile data is
// stored alongside the user record.
func (h *Handler) Profile(w http.ResponseWriter, r *http.Request) {
	userID := internal.UserIDFromContext(r.Context())
	if userID == "" {
		h.HandleServiceError(w, internal.NewUnauthorizedError("Unauthorized", internal.ErrCodeMissingToken))
		return
	}

	h.WriteJSON(w, http.StatusOK, ProfileResponse{
		UserID:   userID,
		Username: "prakash",
		Email:    "prakash@paswan.com",
	})
}
