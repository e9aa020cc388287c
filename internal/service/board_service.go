// Package service содержит логику доски активностей: загрузку списка занятий,
// запись и снятие участников и управление баннером с итогом операции.
package service

import (
	"context"
	"errors"
	"log/slog"

	"activity-board/internal/model"
	"activity-board/internal/repository"
)

// Тексты баннера, когда сервер не прислал своего.
const (
	MsgSignupFallback    = "An error occurred"
	MsgSignupFailed      = "Failed to sign up. Please try again."
	MsgSignedUp          = "Signed up successfully."
	MsgRemoved           = "Participant removed."
	MsgRemoveFallback    = "Error removing participant."
	MsgRemoveFailed      = "Failed to remove participant. Please try again."
	MsgActivitiesFailure = "Failed to load activities. Please try again later."
)

// ActivityRepository описывает контракт доступа к занятиям для бизнес-слоя.
type ActivityRepository interface {
	ListActivities(ctx context.Context) (model.Catalog, error)
	Signup(ctx context.Context, activity, email string) (string, error)
	Remove(ctx context.Context, activity, email string) (string, error)
}

// Outcome — итог операции записи или снятия.
type Outcome struct {
	Success   bool
	ResetForm bool
	Refetched bool
}

// BoardService — контроллер доски. Сам состояния не хранит: всё, что переживает
// вызов, лежит в Session.
type BoardService struct {
	repo ActivityRepository
	log  *slog.Logger
}

// NewBoardService создаёт контроллер доски.
func NewBoardService(repo ActivityRepository, log *slog.Logger) *BoardService {
	return &BoardService{repo: repo, log: log}
}

// FetchActivities загружает каталог и кладёт его в сессию.
// При сбое прежний каталог остаётся (он нужен для списка в форме), а вид помечается
// как LoadFailed; ошибка логируется и наружу не возвращается.
func (s *BoardService) FetchActivities(ctx context.Context, sess *Session) model.BoardView {
	catalog, err := s.repo.ListActivities(ctx)
	if err != nil {
		s.log.Error("fetch activities failed",
			slog.String("session", sess.ID),
			slog.Any("err", err),
		)
		sess.markLoadFailed()
		return sess.View()
	}

	sess.setCatalog(catalog)
	return sess.View()
}

// Signup записывает участника. При успехе форма очищается и каталог перезагружается;
// при ошибке форма сохраняет введённые значения, повторной загрузки нет, если в сессии
// уже есть каталог.
func (s *BoardService) Signup(ctx context.Context, sess *Session, form model.SignupForm) Outcome {
	msg, err := s.repo.Signup(ctx, form.Activity, form.Email)
	if err != nil {
		sess.setForm(form)
		s.showFailure(sess, err, MsgSignupFallback, MsgSignupFailed, "sign up failed",
			slog.String("activity", form.Activity))
		return Outcome{Refetched: s.ensureCatalog(ctx, sess)}
	}

	if msg == "" {
		msg = MsgSignedUp
	}
	sess.Banner.Success(msg)
	sess.ResetForm()
	s.FetchActivities(ctx, sess)

	s.log.Info("participant signed up",
		slog.String("session", sess.ID),
		slog.String("activity", form.Activity),
	)
	return Outcome{Success: true, ResetForm: true, Refetched: true}
}

// Remove снимает участника с занятия и при успехе перезагружает каталог.
func (s *BoardService) Remove(ctx context.Context, sess *Session, activity, email string) Outcome {
	msg, err := s.repo.Remove(ctx, activity, email)
	if err != nil {
		s.showFailure(sess, err, MsgRemoveFallback, MsgRemoveFailed, "remove participant failed",
			slog.String("activity", activity))
		return Outcome{Refetched: s.ensureCatalog(ctx, sess)}
	}

	if msg == "" {
		msg = MsgRemoved
	}
	sess.Banner.Success(msg)
	s.FetchActivities(ctx, sess)

	s.log.Info("participant removed",
		slog.String("session", sess.ID),
		slog.String("activity", activity),
	)
	return Outcome{Success: true, Refetched: true}
}

// Reject показывает в баннере ошибку запроса, который не дошёл до API
// (например, неразбираемая форма), и возвращает вид для повторного рендера.
func (s *BoardService) Reject(ctx context.Context, sess *Session, text string) model.BoardView {
	sess.Banner.Error(text)
	s.ensureCatalog(ctx, sess)
	return sess.View()
}

// ensureCatalog загружает каталог, если сессия его ещё не получала: посетитель пришёл
// сразу с POST или его сессию удалили по простою. Иначе страница после ошибки
// осталась бы без списка занятий.
func (s *BoardService) ensureCatalog(ctx context.Context, sess *Session) bool {
	if sess.hasCatalog() {
		return false
	}
	s.FetchActivities(ctx, sess)
	return true
}

// showFailure выводит ошибку в баннер. Ответ сервера показывается его текстом detail
// (или fallback); сбой транспорта — фиксированным текстом и пишется в лог.
func (s *BoardService) showFailure(sess *Session, err error, fallback, fixed, logMsg string, attrs ...any) {
	var statusErr *repository.StatusError
	if errors.As(err, &statusErr) {
		text := statusErr.Detail
		if text == "" {
			text = fallback
		}
		sess.Banner.Error(text)
		s.log.Warn(logMsg, append(attrs,
			slog.String("session", sess.ID),
			slog.Int("status", statusErr.Status),
			slog.String("detail", statusErr.Detail),
		)...)
		return
	}

	sess.Banner.Error(fixed)
	s.log.Error(logMsg, append(attrs,
		slog.String("session", sess.ID),
		slog.Any("err", err),
	)...)
}
