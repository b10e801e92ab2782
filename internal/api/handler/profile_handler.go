package handler

import (
	"errors"
	"net/http"

	"newgen_backend/internal/app/service"
	"newgen_backend/internal/common"

	"github.com/go-chi/chi/v5"
)

type ProfileHandler struct {
	profileService *service.ProfileService
}

func NewProfileHandler(profileService *service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

func (h *ProfileHandler) RegisterRoutes(r chi.Router) {
	r.Get("/profile/{id}", h.profile)
}

func (h *ProfileHandler) profile(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "id")

	resp, err := h.profileService.Profile(r.Context(), userID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) || errors.Is(err, common.ErrBadRequest) {
			common.RespondWithError(w, http.StatusNotFound, "User not found")
			return
		}
		common.RespondWithError(w, common.HTTPStatusFromError(err), "Error fetching profile")
		return
	}
	common.RespondWithJSON(w, http.StatusOK, resp)
}
