package http

import (
	"bytes"
	"encoding/json"
	"net/http"

	"activity-board/internal/model"
	"activity-board/internal/service"
)

func (h *Handler) handlePage(w http.ResponseWriter, r *http.Request) {
	const handlerName = "page"

	sess := h.session(w, r)
	sess.ResetForm()

	view := h.Board.FetchActivities(r.Context(), sess)
	h.renderPage(w, handlerName, http.StatusOK, view)
}

func (h *Handler) handleSignup(w http.ResponseWriter, r *http.Request) {
	const handlerName = "signup"

	if err := r.ParseForm(); err != nil {
		h.rejectForm(w, r, handlerName, service.ErrBadRequest("invalid form"))
		return
	}

	sess := h.session(w, r)
	form := model.SignupForm{
		Email:    r.PostForm.Get("email"),
		Activity: r.PostForm.Get("activity"),
	}

	h.Board.Signup(r.Context(), sess, form)
	h.renderPage(w, handlerName, http.StatusOK, sess.View())
}

func (h *Handler) handleRemove(w http.ResponseWriter, r *http.Request) {
	const handlerName = "remove"

	if err := r.ParseForm(); err != nil {
		h.rejectForm(w, r, handlerName, service.ErrBadRequest("invalid form"))
		return
	}

	activity, email, err := ValidateRemoveTarget(r.PostForm.Get("target"))
	if err != nil {
		h.rejectForm(w, r, handlerName, err)
		return
	}

	sess := h.session(w, r)
	h.Board.Remove(r.Context(), sess, activity, email)
	h.renderPage(w, handlerName, http.StatusOK, sess.View())
}

func (h *Handler) handleBoardState(w http.ResponseWriter, r *http.Request) {
	const handlerName = "board_state"

	sess := h.session(w, r)
	view := h.Board.FetchActivities(r.Context(), sess)

	resp := boardResponse{
		Activities: make([]activityResponse, 0, len(view.Activities)),
		LoadFailed: view.LoadFailed,
		Banner: bannerResponse{
			Kind:        string(view.Banner.Kind),
			Text:        view.Banner.Text,
			HideAfterMS: view.Banner.Remaining.Milliseconds(),
		},
	}
	for _, a := range view.Activities {
		resp.Activities = append(resp.Activities, activityResponse{
			Name:            a.Name,
			Description:     a.Description,
			Schedule:        a.Schedule,
			MaxParticipants: a.MaxParticipants,
			SpotsLeft:       a.SpotsLeft(),
			Participants:    a.Participants,
		})
	}

	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(resp); err != nil {
		h.writeError(w, handlerName, service.ErrInternal("failed to encode board", err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}
