package handlers

import (
	"encoding/json"
	"net/http"

	"iot-site-backend/models"
	"iot-site-backend/services"

	"github.com/gorilla/mux"
)

// ChatHandler exposes the chat widget backend
type ChatHandler struct {
	chat services.ChatService
}

// NewChatHandler creates a new chat handler
func NewChatHandler(chat services.ChatService) *ChatHandler {
	return &ChatHandler{chat: chat}
}

// OpenSession handles POST /api/v1/chat/sessions
//
// An empty body or empty session_id opens a fresh session with the welcome
// message and responds 201; a known session_id reopens that session without
// replaying it and responds 200.
func (h *ChatHandler) OpenSession(w http.ResponseWriter, r *http.Request) {
	var req models.OpenChatRequest
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeErrorResponse(w, http.StatusBadRequest, "invalid request body", err.Error())
			return
		}
	}

	session, err := h.chat.OpenSession(r.Context(), req.SessionID, req.PagePath)
	if err != nil {
		writeAppErrorResponse(w, err)
		return
	}

	status := http.StatusCreated
	if req.SessionID != "" && session.ID == req.SessionID {
		status = http.StatusOK
	}
	writeJSONResponse(w, status, session)
}

// GetSession handles GET /api/v1/chat/sessions/{id}
//
// Clients poll this after sending a turn until is_typing flips back to
// false and the bot reply shows up at the end of the log.
func (h *ChatHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	sessionID := vars["id"]

	session, err := h.chat.GetSession(r.Context(), sessionID)
	if err != nil {
		writeAppErrorResponse(w, err)
		return
	}

	writeJSONResponse(w, http.StatusOK, session)
}

// SendMessage handles POST /api/v1/chat/sessions/{id}/messages
func (h *ChatHandler) SendMessage(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	sessionID := vars["id"]

	var req models.SendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	message, err := h.chat.SendMessage(r.Context(), sessionID, req.Text, req.QuickReply)
	if err != nil {
		writeAppErrorResponse(w, err)
		return
	}

	writeJSONResponse(w, http.StatusAccepted, models.SendMessageResponse{
		Message:  *message,
		IsTyping: true,
	})
}

// CloseSession handles DELETE /api/v1/chat/sessions/{id}
func (h *ChatHandler) CloseSession(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	sessionID := vars["id"]

	if err := h.chat.CloseSession(r.Context(), sessionID); err != nil {
		writeAppErrorResponse(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
