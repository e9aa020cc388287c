package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"activity-board/internal/model"
	"activity-board/internal/render"
	"activity-board/internal/service"
)

// SessionCookie — имя cookie с идентификатором сессии посетителя.
const SessionCookie = "board_session"

type Handler struct {
	Board    *service.BoardService
	Sessions *service.SessionStore
	Log      *slog.Logger

	allowedOrigins []string
	secureCookies  bool
}

// Options — настройки HTTP-слоя, не относящиеся к доске.
type Options struct {
	AllowedOrigins []string
	SecureCookies  bool
}

func NewHandler(board *service.BoardService, sessions *service.SessionStore, log *slog.Logger, opts Options) *Handler {
	return &Handler{
		Board:          board,
		Sessions:       sessions,
		Log:            log,
		allowedOrigins: opts.AllowedOrigins,
		secureCookies:  opts.SecureCookies,
	}
}

func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(h.logRequests)
	r.Use(middleware.Recoverer)

	r.Get("/health", h.handleHealth)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Get("/", h.handlePage)
	r.Post("/signup", h.handleSignup)
	r.Post("/remove", h.handleRemove)

	r.Group(func(r chi.Router) {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   h.allowedOrigins,
			AllowedMethods:   []string{http.MethodGet, http.MethodOptions},
			AllowedHeaders:   []string{"Accept"},
			AllowCredentials: false,
			MaxAge:           300,
		}))
		r.Get("/board", h.handleBoardState)
	})

	return r
}

// session возвращает сессию посетителя и при необходимости выставляет cookie.
func (h *Handler) session(w http.ResponseWriter, r *http.Request) *service.Session {
	id := ""
	if c, err := r.Cookie(SessionCookie); err == nil {
		id = c.Value
	}

	sess, created := h.Sessions.Get(id)
	if created {
		http.SetCookie(w, &http.Cookie{
			Name:     SessionCookie,
			Value:    sess.ID,
			Path:     "/",
			HttpOnly: true,
			Secure:   h.secureCookies,
			SameSite: http.SameSiteLaxMode,
		})
	}
	return sess
}

// renderPage рендерит страницу в буфер, чтобы ошибка шаблона не оставила полстраницы.
func (h *Handler) renderPage(w http.ResponseWriter, handlerName string, status int, v model.BoardView) {
	var buf bytes.Buffer
	if err := render.RenderPage(&buf, v); err != nil {
		h.writeError(w, handlerName, service.ErrInternal("failed to render page", err))
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	_, _ = w.Write(buf.Bytes())
}

// rejectForm показывает ошибку разбора формы баннером на обычной странице доски.
func (h *Handler) rejectForm(w http.ResponseWriter, r *http.Request, handlerName string, err error) {
	var appErr *service.AppError
	if !errors.As(err, &appErr) {
		appErr = service.ErrBadRequest("invalid form")
	}

	h.Log.Warn("form rejected",
		slog.String("handler", handlerName),
		slog.String("code", appErr.Code),
		slog.String("message", appErr.Message),
	)

	sess := h.session(w, r)
	view := h.Board.Reject(r.Context(), sess, appErr.Message)
	h.renderPage(w, handlerName, appErr.Status, view)
}

func (h *Handler) writeError(w http.ResponseWriter, handlerName string, err error) {
	var appErr *service.AppError
	if !errors.As(err, &appErr) {
		appErr = service.ErrInternal("internal error", err)
	}

	h.Log.Error("handler error",
		slog.String("handler", handlerName),
		slog.String("code", appErr.Code),
		slog.String("message", appErr.Message),
		slog.Any("err", appErr.Err),
	)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(appErr.Status)

	resp := errorResponse{}
	resp.Error.Code = appErr.Code
	resp.Error.Message = appErr.Message
	_ = json.NewEncoder(w).Encode(resp)
}

func (h *Handler) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		next.ServeHTTP(ww, r)

		h.Log.Debug("http request",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", ww.Status()),
			slog.Duration("duration", time.Since(start)),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)
	})
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
