package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"newgen_backend/internal/app/service"
	"newgen_backend/internal/common"

	"github.com/go-chi/chi/v5"
)

type CareerHandler struct {
	careerService *service.CareerService
}

func NewCareerHandler(careerService *service.CareerService) *CareerHandler {
	return &CareerHandler{careerService: careerService}
}

func (h *CareerHandler) RegisterRoutes(r chi.Router) {
	r.Post("/saveCourse", h.saveCourse)
	r.Get("/allSavedCareers", h.allSavedCareers)
}

type saveCourseRequest struct {
	UserID     string `json:"userId"`
	CareerName string `json:"careerName"`
}

type saveCourseResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func (h *CareerHandler) saveCourse(w http.ResponseWriter, r *http.Request) {
	var req saveCourseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	created, err := h.careerService.Save(r.Context(), req.UserID, req.CareerName)
	if err != nil {
		if errors.Is(err, common.ErrBadRequest) {
			common.RespondWithError(w, http.StatusBadRequest, "Missing fields")
			return
		}
		common.RespondWithError(w, common.HTTPStatusFromError(err), "DB error")
		return
	}

	// A duplicate save is a 200 with success=false, never a failure code.
	if !created {
		common.RespondWithJSON(w, http.StatusOK, saveCourseResponse{Success: false, Message: "Already saved"})
		return
	}
	common.RespondWithJSON(w, http.StatusCreated, saveCourseResponse{Success: true, Message: "Course saved"})
}

func (h *CareerHandler) allSavedCareers(w http.ResponseWriter, r *http.Request) {
	names, err := h.careerService.ListDistinct(r.Context())
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), "DB error")
		return
	}
	common.RespondWithJSON(w, http.StatusOK, map[string][]string{"careers": names})
}
