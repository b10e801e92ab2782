package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"newgen_backend/internal/app/service"
	"newgen_backend/internal/common"

	"github.com/go-chi/chi/v5"
)

type ChatHandler struct {
	chatService *service.ChatService
}

func NewChatHandler(chatService *service.ChatService) *ChatHandler {
	return &ChatHandler{chatService: chatService}
}

func (h *ChatHandler) RegisterRoutes(r chi.Router) {
	r.Post("/chat", h.chat)
}

type chatRequest struct {
	Message string `json:"message"`
}

func (h *ChatHandler) chat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	reply, err := h.chatService.Advise(r.Context(), req.Message)
	if err != nil {
		if errors.Is(err, common.ErrBadRequest) {
			common.RespondWithError(w, http.StatusBadRequest, "Missing message")
			return
		}
		common.RespondWithError(w, common.HTTPStatusFromError(err), "AI request failed")
		return
	}
	common.RespondWithJSON(w, http.StatusOK, map[string]string{"reply": reply})
}
