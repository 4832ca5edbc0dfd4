package handler

import (
	"net/http"
	"strconv"

	"acedating-api/internal/logging"
	"acedating-api/internal/models"
	"acedating-api/internal/service"

	"github.com/go-chi/chi/v5"
)

type ProfileHandler struct {
	svc *service.ProfileService
	log logging.Logger
}

func NewProfileHandler(s *service.ProfileService, log logging.Logger) *ProfileHandler {
	return &ProfileHandler{svc: s, log: log}
}

// @Summary Profile feed
// @Description Cursor-paginated profiles in ascending id order. Profiles whose preference excludes the viewer's gender are hidden.
// @Tags profiles
// @Produce json
// @Param limit query int false "page size (default 24, max 60)"
// @Param cursor query string false "next_cursor of the previous page"
// @Param viewer_id query string false "viewer user id"
// @Param X-User-Id header string false "viewer user id"
// @Success 200 {object} service.FeedPage
// @Router /profiles [get]
func (h *ProfileHandler) Feed(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	req := service.FeedRequest{
		Cursor:   q.Get("cursor"),
		ViewerID: q.Get("viewer_id"),
	}
	if n, err := strconv.Atoi(q.Get("limit")); err == nil {
		req.Limit = &n
	}
	if req.ViewerID == "" {
		req.ViewerID = requesterID(r, "")
	}

	page, err := h.svc.Feed(r.Context(), req)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, page)
}

// @Summary Get profile
// @Tags profiles
// @Produce json
// @Param user_id path string true "user id"
// @Success 200 {object} map[string]any
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Router /profile/{user_id} [get]
func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	doc, err := h.svc.Get(r.Context(), chi.URLParam(r, "user_id"))
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

type updateProfileRequest struct {
	// UserID identifies the requester when no session or X-User-Id is sent.
	UserID string `json:"user_id"`

	Username      *string            `json:"username"`
	Name          *string            `json:"name"`
	Age           models.OptionalInt `json:"age" swaggertype:"integer"`
	City          *string            `json:"city"`
	Gender        *string            `json:"gender"`
	Orientation   *string            `json:"orientation"`
	LookingFor    *string            `json:"looking_for"`
	Info          *string            `json:"info"`
	Contact       *string            `json:"contact"`
	ImageURL      *string            `json:"image_url"`
	ImagePublicID *string            `json:"image_public_id"`
	Preference    *string            `json:"preference"`
}

// @Summary Update profile
// @Description Partial edit. Only the owner may edit; unknown fields are rejected.
// @Tags profiles
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param user_id path string true "user id"
// @Param X-User-Id header string false "requester id"
// @Param body body updateProfileRequest true "fields to change"
// @Success 200 {object} map[string]any
// @Failure 400 {object} errorResponse
// @Failure 403 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Failure 409 {object} errorResponse
// @Router /profile/{user_id} [put]
func (h *ProfileHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req updateProfileRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, h.log, err)
		return
	}

	upd := models.ProfileUpdate{
		Username:      req.Username,
		Name:          req.Name,
		ClearAge:      req.Age.Set && !req.Age.Valid,
		City:          req.City,
		Gender:        req.Gender,
		Orientation:   req.Orientation,
		LookingFor:    req.LookingFor,
		Info:          req.Info,
		Contact:       req.Contact,
		ImageURL:      req.ImageURL,
		ImagePublicID: req.ImagePublicID,
		Preference:    req.Preference,
	}
	if req.Age.Valid {
		upd.Age = &req.Age.Value
	}

	userID := chi.URLParam(r, "user_id")
	doc, err := h.svc.Update(r.Context(), userID, requesterID(r, req.UserID), upd)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, doc)
}
