package handler

import (
	"github.com/go-chi/chi/v5"
)

type Handlers struct {
	Auth    *AuthHandler
	Profile *ProfileHandler
	Like    *LikeHandler
	Letter  *LetterHandler
	Media   *MediaHandler
}

// MountRoutes registers the API on r. The web client calls it under /api,
// older clients at the root, so callers mount it on both.
func MountRoutes(r chi.Router, h Handlers) {
	r.Post("/signup", h.Auth.Signup)
	r.Post("/login", h.Auth.Login)

	r.Get("/profiles", h.Profile.Feed)
	r.Get("/allprofiles", h.Profile.Feed)
	r.Get("/profile/{user_id}", h.Profile.Get)
	r.Put("/profile/{user_id}", h.Profile.Update)

	r.Get("/profilessaved/{user_id}", h.Like.Saved)
	r.Get("/likes/{user_id}", h.Like.List)
	r.Post("/likes/{user_id}/{profile_id}", h.Like.Add)
	r.Delete("/likes/{user_id}/{profile_id}", h.Like.Remove)

	r.Post("/writelatter/{user_id}/{profile_id}", h.Letter.Write)
	r.Get("/inbox/{user_id}", h.Letter.Inbox)
	r.Post("/letters/{id}/read", h.Letter.MarkRead)
	r.Delete("/letters/{id}", h.Letter.Delete)

	r.Post("/media/delete", h.Media.Delete)
	r.Post("/cloudinary/delete", h.Media.Delete)
	r.Post("/media/upload-url", h.Media.UploadURL)
}
