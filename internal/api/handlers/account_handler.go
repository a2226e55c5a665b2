package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/isdelr/crud-auth-be/internal/auth"
	"github.com/isdelr/crud-auth-be/internal/services"
	"github.com/rs/zerolog/log"
)

// AccountHandler handles HTTP requests for registration, login and accounts.
type AccountHandler struct {
	service services.AccountServiceProvider
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(service services.AccountServiceProvider) *AccountHandler {
	return &AccountHandler{service: service}
}

// CredentialsPayload is the body of register and login requests.
type CredentialsPayload struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// TokenResponse is the body of a successful login.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// IdentityResponse is the body of GET /users/me.
type IdentityResponse struct {
	Username string `json:"username"`
}

func decodeCredentials(w http.ResponseWriter, r *http.Request) (CredentialsPayload, bool) {
	var payload *CredentialsPayload
	err := json.NewDecoder(r.Body).Decode(&payload)
	if err != nil || payload == nil || payload.Username == "" || payload.Password == "" {
		writeDetail(w, http.StatusBadRequest, "Invalid request body")
		return CredentialsPayload{}, false
	}
	return *payload, true
}

func internalError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	log.Error().Err(err).Str("request_id", middleware.GetReqID(r.Context())).Msg(msg)
	writeDetail(w, http.StatusInternalServerError, "Internal server error")
}

// Register handles new user registration.
func (h *AccountHandler) Register(w http.ResponseWriter, r *http.Request) {
	payload, ok := decodeCredentials(w, r)
	if !ok {
		return
	}

	err := h.service.Register(r.Context(), payload.Username, payload.Password)
	switch {
	case err == nil:
		log.Info().Str("username", payload.Username).Msg("User registered")
		writeJSON(w, http.StatusOK, message{Msg: "User registered successfully"})
	case errors.Is(err, services.ErrDuplicateUser):
		writeDetail(w, http.StatusBadRequest, "User already exists")
	default:
		internalError(w, r, err, "Failed to register user")
	}
}

// Login handles user authentication and token issuance.
func (h *AccountHandler) Login(w http.ResponseWriter, r *http.Request) {
	payload, ok := decodeCredentials(w, r)
	if !ok {
		return
	}

	token, err := h.service.Login(r.Context(), payload.Username, payload.Password)
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, TokenResponse{AccessToken: token, TokenType: "bearer"})
	case errors.Is(err, services.ErrInvalidCredentials):
		log.Warn().Str("username", payload.Username).Msg("Failed authentication attempt")
		writeDetail(w, http.StatusUnauthorized, "Invalid credentials")
	default:
		internalError(w, r, err, "Failed to log in user")
	}
}

// Me returns the username carried by the bearer token.
func (h *AccountHandler) Me(w http.ResponseWriter, r *http.Request) {
	token, err := auth.BearerToken(r)
	if err != nil {
		writeDetail(w, http.StatusUnauthorized, "Token required")
		return
	}

	username, err := h.service.Identify(token)
	if err != nil {
		writeDetail(w, http.StatusUnauthorized, "Invalid token")
		return
	}
	writeJSON(w, http.StatusOK, IdentityResponse{Username: username})
}

// Delete handles the permanent deletion of the caller's own account.
func (h *AccountHandler) Delete(w http.ResponseWriter, r *http.Request) {
	token, err := auth.BearerToken(r)
	if err != nil {
		writeDetail(w, http.StatusUnauthorized, "Token required")
		return
	}

	id := chi.URLParam(r, "id")
	err = h.service.DeleteAccount(r.Context(), token, id)
	switch {
	case err == nil:
		log.Info().Str("username", id).Msg("User deleted")
		writeJSON(w, http.StatusOK, message{Msg: "User deleted successfully"})
	case errors.Is(err, services.ErrUnauthorized):
		log.Warn().Str("username", id).Msg("Rejected deletion of another account")
		writeDetail(w, http.StatusUnauthorized, "Unauthorized action")
	case errors.Is(err, auth.ErrInvalidToken), errors.Is(err, auth.ErrTokenMissing):
		writeDetail(w, http.StatusUnauthorized, "Invalid token")
	default:
		internalError(w, r, err, "Failed to delete user")
	}
}
