package handler

import (
	"net/http"

	"acedating-api/internal/logging"
	"acedating-api/internal/service"
)

type MediaHandler struct {
	svc *service.MediaService
	log logging.Logger
}

func NewMediaHandler(s *service.MediaService, log logging.Logger) *MediaHandler {
	return &MediaHandler{svc: s, log: log}
}

type deleteImageRequest struct {
	PublicID string `json:"public_id"`
}

type deleteImageResponse struct {
	Result string `json:"result"`
}

// @Summary Delete a profile picture
// @Tags media
// @Accept json
// @Produce json
// @Param body body deleteImageRequest true "object key"
// @Success 200 {object} deleteImageResponse
// @Failure 400 {object} errorResponse
// @Failure 503 {object} errorResponse
// @Router /media/delete [post]
func (h *MediaHandler) Delete(w http.ResponseWriter, r *http.Request) {
	var req deleteImageRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, h.log, err)
		return
	}
	if err := h.svc.DeleteImage(r.Context(), req.PublicID); err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, deleteImageResponse{Result: "ok"})
}

type uploadURLRequest struct {
	FileName    string `json:"file_name"`
	ContentType string `json:"content_type"`
}

// @Summary Presigned upload URL
// @Description Returns a short-lived PUT URL and the public_id to store on the profile
// @Tags media
// @Accept json
// @Produce json
// @Param body body uploadURLRequest true "file"
// @Success 200 {object} media.Upload
// @Failure 400 {object} errorResponse
// @Failure 503 {object} errorResponse
// @Router /media/upload-url [post]
func (h *MediaHandler) UploadURL(w http.ResponseWriter, r *http.Request) {
	var req uploadURLRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, h.log, err)
		return
	}
	up, err := h.svc.UploadURL(r.Context(), req.FileName, req.ContentType)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, up)
}
