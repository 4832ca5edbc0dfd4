package handler

import (
	"net/http"

	"acedating-api/internal/logging"
	"acedating-api/internal/models"
	"acedating-api/internal/service"

	"github.com/go-chi/chi/v5"
)

type LetterHandler struct {
	svc *service.LetterService
	log logging.Logger
}

func NewLetterHandler(s *service.LetterService, log logging.Logger) *LetterHandler {
	return &LetterHandler{svc: s, log: log}
}

type writeLetterRequest struct {
	Letter string `json:"letter"`
}

type letterCreatedResponse struct {
	OK       bool   `json:"ok"`
	LetterID string `json:"letter_id"`
}

// @Summary Write an introduction letter
// @Description One letter per sender and receiver; 1 to 2000 characters after trimming
// @Tags letters
// @Accept json
// @Produce json
// @Param user_id path string true "sender id"
// @Param profile_id path string true "receiver id"
// @Param body body writeLetterRequest true "letter"
// @Success 201 {object} letterCreatedResponse
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Failure 409 {object} errorResponse
// @Router /writelatter/{user_id}/{profile_id} [post]
func (h *LetterHandler) Write(w http.ResponseWriter, r *http.Request) {
	var req writeLetterRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, h.log, err)
		return
	}

	id, err := h.svc.Write(r.Context(), chi.URLParam(r, "user_id"), chi.URLParam(r, "profile_id"), req.Letter)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	h.log.Info(r.Context(), "letter written", "letter_id", id.Hex())
	writeJSON(w, http.StatusCreated, letterCreatedResponse{OK: true, LetterID: id.Hex()})
}

type inboxResponse struct {
	Items []models.InboxItem `json:"items"`
}

// @Summary Inbox
// @Description Newest letters addressed to the user, at most 200
// @Tags letters
// @Produce json
// @Param user_id path string true "receiver id"
// @Success 200 {object} inboxResponse
// @Failure 400 {object} errorResponse
// @Router /inbox/{user_id} [get]
func (h *LetterHandler) Inbox(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.Inbox(r.Context(), chi.URLParam(r, "user_id"))
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, inboxResponse{Items: items})
}

type markReadRequest struct {
	UserID string `json:"user_id"`
}

type readAtResponse struct {
	ReadAt string `json:"read_at"`
}

// @Summary Mark a letter read
// @Tags letters
// @Accept json
// @Produce json
// @Param id path string true "letter id"
// @Param body body markReadRequest true "receiver id"
// @Success 200 {object} readAtResponse
// @Failure 403 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Router /letters/{id}/read [post]
func (h *LetterHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	var req markReadRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, h.log, err)
		return
	}

	at, err := h.svc.MarkRead(r.Context(), chi.URLParam(r, "id"), requesterID(r, req.UserID))
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, readAtResponse{ReadAt: at})
}

// @Summary Delete a letter
// @Tags letters
// @Produce json
// @Param id path string true "letter id"
// @Param user_id query string false "receiver id"
// @Success 200 {object} okResponse
// @Failure 403 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Router /letters/{id} [delete]
func (h *LetterHandler) Delete(w http.ResponseWriter, r *http.Request) {
	err := h.svc.Delete(r.Context(), chi.URLParam(r, "id"), requesterID(r, r.URL.Query().Get("user_id")))
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, okResponse{OK: true})
}
