package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/mnyiz/lockdin/internal/identity"
	"github.com/mnyiz/lockdin/internal/models"
	"github.com/mnyiz/lockdin/internal/utils"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	AccessToken string            `json:"access_token"`
	User        *identity.Account `json:"user"`
	Profile     *models.Profile   `json:"profile"`
}

type SignupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Username string `json:"username,omitempty"`
}

type SignupResponse struct {
	Message string            `json:"message"`
	User    *identity.Account `json:"user"`
	Profile *models.Profile   `json:"profile"`
}

// POST /login
// Login godoc
// @Summary Log in with email and password
// @Description Authenticates against the identity service and returns the access token, account and profile.
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body LoginRequest true "Credentials"
// @Success 200 {object} LoginResponse
// @Failure 401 {object} utils.ErrorPayload "Login failed"
// @Failure 500 {object} utils.ErrorPayload "Profile fetch failed"
// @Router /login [post]
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var input LoginRequest
	if err := decode(r, &input); err != nil {
		utils.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	h.log.InfoContext(r.Context(), "login request", "email", input.Email)

	session, err := h.identity.Authenticate(r.Context(), input.Email, input.Password)
	if err != nil || session == nil || session.AccessToken == "" || session.User == nil {
		h.log.WarnContext(r.Context(), "login failed", "email", input.Email, "err", err)
		utils.ErrorResponse(w, http.StatusUnauthorized, authMessage(err, "Login failed."))
		return
	}

	profile, err := h.profiles.GetProfile(r.Context(), session.User.ID)
	if err != nil {
		h.log.ErrorContext(r.Context(), "failed to fetch profile", "user_id", session.User.ID, "err", err)
		utils.ErrorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	utils.JSONResponse(w, http.StatusOK, LoginResponse{
		AccessToken: session.AccessToken,
		User:        session.User,
		Profile:     profile,
	})
}

// POST /signup
// Signup godoc
// @Summary Create an account and its profile
// @Description Creates the account in the identity service, then inserts a profile. The username defaults to the local part of the email.
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body SignupRequest true "New account"
// @Success 200 {object} SignupResponse
// @Failure 400 {object} utils.ErrorPayload "Signup failed"
// @Failure 500 {object} utils.ErrorPayload "Profile insert failed"
// @Router /signup [post]
func (h *Handler) Signup(w http.ResponseWriter, r *http.Request) {
	var input SignupRequest
	if err := decode(r, &input); err != nil {
		utils.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	h.log.InfoContext(r.Context(), "signup request", "email", input.Email, "username", input.Username)

	account, err := h.identity.CreateAccount(r.Context(), input.Email, input.Password)
	if err != nil || account == nil {
		h.log.WarnContext(r.Context(), "signup failed", "email", input.Email, "err", err)
		utils.ErrorResponse(w, http.StatusBadRequest, authMessage(err, "Signup failed."))
		return
	}
	h.log.InfoContext(r.Context(), "account created", "user_id", account.ID)

	profile := &models.Profile{
		ID:           account.ID,
		Username:     DefaultUsername(input.Username, input.Email),
		SessionHours: 0,
	}
	if err := h.profiles.CreateProfile(r.Context(), profile); err != nil {
		// The account stays behind without a profile; nothing rolls it back.
		h.log.ErrorContext(r.Context(), "profile insert failed, account orphaned", "user_id", account.ID, "err", err)
		utils.JSONResponse(w, http.StatusInternalServerError, utils.ErrorPayload{
			Error:    "Insert failed",
			RawError: err.Error(),
		})
		return
	}

	utils.JSONResponse(w, http.StatusOK, SignupResponse{
		Message: "User signed up and profile created!",
		User:    account,
		Profile: profile,
	})
}

// DefaultUsername returns username, or the part of email before the first
// "@" when username is empty.
func DefaultUsername(username, email string) string {
	if username != "" {
		return username
	}
	local, _, _ := strings.Cut(email, "@")
	return local
}

// authMessage relays the identity service's wording when there is one.
func authMessage(err error, fallback string) string {
	var authErr *identity.AuthError
	if errors.As(err, &authErr) && authErr.Message != "" {
		return authErr.Message
	}
	return fallback
}
