package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"newgen_backend/internal/app/service"
	"newgen_backend/internal/common"

	"github.com/go-chi/chi/v5"
)

type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) RegisterRoutes(r chi.Router) {
	r.Post("/signup", h.signup)
	r.Post("/login", h.login)
}

func (h *AuthHandler) signup(w http.ResponseWriter, r *http.Request) {
	var req service.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	_, err := h.authService.Signup(r.Context(), req)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), signupMessage(err))
		return
	}
	common.RespondWithJSON(w, http.StatusCreated, map[string]string{"message": "User registered successfully"})
}

func (h *AuthHandler) login(w http.ResponseWriter, r *http.Request) {
	var req service.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	resp, err := h.authService.Login(r.Context(), req)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), loginMessage(err))
		return
	}
	common.RespondWithJSON(w, http.StatusOK, resp)
}

func signupMessage(err error) string {
	switch {
	case errors.Is(err, common.ErrBadRequest):
		return "Missing required fields"
	case errors.Is(err, common.ErrConflict):
		return "Email already registered"
	default:
		return "Signup failed"
	}
}

func loginMessage(err error) string {
	switch {
	case errors.Is(err, common.ErrBadRequest):
		return "Missing username or password"
	case errors.Is(err, common.ErrUnauthorized):
		return "Invalid credentials"
	default:
		return "Login failed"
	}
}
