package handler

import (
	"net/http"

	"acedating-api/internal/logging"
	"acedating-api/internal/service"

	"github.com/go-chi/chi/v5"
)

type LikeHandler struct {
	svc *service.LikeService
	log logging.Logger
}

func NewLikeHandler(s *service.LikeService, log logging.Logger) *LikeHandler {
	return &LikeHandler{svc: s, log: log}
}

type likedResponse struct {
	Liked []string `json:"liked"`
}

type itemsResponse struct {
	Items any `json:"items"`
}

type okResponse struct {
	OK bool `json:"ok"`
}

// @Summary Liked ids
// @Tags likes
// @Produce json
// @Param user_id path string true "user id"
// @Success 200 {object} likedResponse
// @Router /likes/{user_id} [get]
func (h *LikeHandler) List(w http.ResponseWriter, r *http.Request) {
	liked, err := h.svc.List(r.Context(), chi.URLParam(r, "user_id"))
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, likedResponse{Liked: liked})
}

// @Summary Saved profiles
// @Description Public profiles of the liked users, in liked order
// @Tags likes
// @Produce json
// @Param user_id path string true "user id"
// @Success 200 {object} itemsResponse
// @Router /profilessaved/{user_id} [get]
func (h *LikeHandler) Saved(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.Saved(r.Context(), chi.URLParam(r, "user_id"))
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, itemsResponse{Items: items})
}

// @Summary Like a profile
// @Tags likes
// @Produce json
// @Param user_id path string true "user id"
// @Param profile_id path string true "liked profile id"
// @Success 200 {object} okResponse
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Router /likes/{user_id}/{profile_id} [post]
func (h *LikeHandler) Add(w http.ResponseWriter, r *http.Request) {
	err := h.svc.Add(r.Context(), chi.URLParam(r, "user_id"), chi.URLParam(r, "profile_id"))
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, okResponse{OK: true})
}

// @Summary Unlike a profile
// @Tags likes
// @Produce json
// @Param user_id path string true "user id"
// @Param profile_id path string true "profile id"
// @Success 200 {object} okResponse
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Router /likes/{user_id}/{profile_id} [delete]
func (h *LikeHandler) Remove(w http.ResponseWriter, r *http.Request) {
	err := h.svc.Remove(r.Context(), chi.URLParam(r, "user_id"), chi.URLParam(r, "profile_id"))
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, okResponse{OK: true})
}
