// Package http реализует HTTP-фронтенд доски активностей поверх сервиса доски.
package http

type errorResponse struct {
	Error errorBody `json:"error"`
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type activityResponse struct {
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	SpotsLeft       int      `json:"spots_left"`
	Participants    []string `json:"participants"`
}

type bannerResponse struct {
	Kind        string `json:"kind"`
	Text        string `json:"text,omitempty"`
	HideAfterMS int64  `json:"hide_after_ms,omitempty"`
}

type boardResponse struct {
	Activities []activityResponse `json:"activities"`
	LoadFailed bool               `json:"load_failed"`
	Banner     bannerResponse     `json:"banner"`
}
