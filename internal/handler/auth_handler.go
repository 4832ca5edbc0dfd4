package handler

import (
	"net/http"

	"acedating-api/internal/logging"
	"acedating-api/internal/models"
	"acedating-api/internal/service"
)

type AuthHandler struct {
	svc *service.AuthService
	log logging.Logger
}

func NewAuthHandler(s *service.AuthService, log logging.Logger) *AuthHandler {
	return &AuthHandler{svc: s, log: log}
}

type signupRequest struct {
	Username string          `json:"username"`
	Password string          `json:"password"`
	Age      *models.FlexInt `json:"age" swaggertype:"integer"`

	Name        string `json:"name"`
	Orientation string `json:"orientation"`
	LookingFor  string `json:"looking_for"`
	ImageURL    string `json:"image_url"`
	City        string `json:"city"`
	Gender      string `json:"gender"`
	Info        string `json:"info"`
	Contact     string `json:"contact"`
	Preference  string `json:"preference"`
}

type sessionResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
	UserID  string `json:"user_id"`
}

// @Summary Signup
// @Description Creates an account and returns its first session token
// @Tags auth
// @Accept json
// @Produce json
// @Param body body signupRequest true "account and profile"
// @Success 201 {object} sessionResponse
// @Failure 400 {object} errorResponse
// @Failure 409 {object} errorResponse
// @Router /signup [post]
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, h.log, err)
		return
	}

	sess, err := h.svc.Signup(r.Context(), service.SignupData{
		Username:    req.Username,
		Password:    req.Password,
		Age:         req.Age.Ptr(),
		Name:        req.Name,
		Orientation: req.Orientation,
		LookingFor:  req.LookingFor,
		ImageURL:    req.ImageURL,
		City:        req.City,
		Gender:      req.Gender,
		Info:        req.Info,
		Contact:     req.Contact,
		Preference:  req.Preference,
	})
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	h.log.Info(r.Context(), "signup", "user_id", sess.UserID.Hex())
	writeJSON(w, http.StatusCreated, sessionResponse{
		Message: "Signup successful",
		Token:   sess.Token,
		UserID:  sess.UserID.Hex(),
	})
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// @Summary Login
// @Description Verifies credentials and rotates the session token
// @Tags auth
// @Accept json
// @Produce json
// @Param body body loginRequest true "credentials"
// @Success 200 {object} sessionResponse
// @Failure 400 {object} errorResponse
// @Failure 401 {object} errorResponse
// @Router /login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, h.log, err)
		return
	}

	sess, err := h.svc.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, sessionResponse{
		Message: "Login successful",
		Token:   sess.Token,
		UserID:  sess.UserID.Hex(),
	})
}
