package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"time"

	"activity-board/internal/metrics"
	"activity-board/internal/model"
)

// Операции API, используются в ошибках и метках метрик.
const (
	OpList   = "list_activities"
	OpSignup = "signup"
	OpRemove = "remove"
)

// ActivityRepo реализует доступ к занятиям через API записи.
type ActivityRepo struct {
	client *Client
}

// NewActivityRepo создаёт репозиторий поверх клиента API.
func NewActivityRepo(client *Client) *ActivityRepo {
	return &ActivityRepo{client: client}
}

// activityDetails — значение под ключом занятия в ответе GET /activities.
type activityDetails struct {
	Description     string      `json:"description"`
	Schedule        string      `json:"schedule"`
	MaxParticipants json.Number `json:"max_participants"`
	Participants    []string    `json:"participants"`
}

// mutationResult — ответ на запись или удаление участника.
// detail хранится сырым: при ошибках валидации сервер присылает в нём массив, а не строку.
type mutationResult struct {
	Message string          `json:"message"`
	Detail  json.RawMessage `json:"detail"`
}

// ListActivities запрашивает актуальный список занятий.
// Порядок каталога совпадает с порядком ключей в ответе.
func (r *ActivityRepo) ListActivities(ctx context.Context) (catalog model.Catalog, err error) {
	started := time.Now()
	defer func() { metrics.ObserveAPI(OpList, outcomeOf(err), started) }()

	status, body, err := r.client.do(ctx, http.MethodGet, r.client.activitiesURL())
	if err != nil {
		return nil, &TransportError{Op: OpList, Err: err}
	}
	if status < 200 || status > 299 {
		var res mutationResult
		_ = json.Unmarshal(body, &res)
		return nil, &StatusError{Op: OpList, Status: status, Detail: detailText(res.Detail)}
	}

	if err := validateActivities(body); err != nil {
		return nil, &TransportError{Op: OpList, Err: err}
	}

	catalog, err = decodeCatalog(body)
	if err != nil {
		return nil, &TransportError{Op: OpList, Err: err}
	}
	return catalog, nil
}

// Signup записывает email на занятие и возвращает сообщение сервера.
func (r *ActivityRepo) Signup(ctx context.Context, activity, email string) (string, error) {
	return r.mutate(ctx, OpSignup, http.MethodPost, activity, email)
}

// Remove снимает email с занятия и возвращает сообщение сервера.
func (r *ActivityRepo) Remove(ctx context.Context, activity, email string) (string, error) {
	return r.mutate(ctx, OpRemove, http.MethodDelete, activity, email)
}

func (r *ActivityRepo) mutate(ctx context.Context, op, method, activity, email string) (msg string, err error) {
	started := time.Now()
	defer func() { metrics.ObserveAPI(op, outcomeOf(err), started) }()

	status, body, err := r.client.do(ctx, method, r.client.signupURL(activity, email))
	if err != nil {
		return "", &TransportError{Op: op, Err: err}
	}

	// Тело разбирается до проверки статуса: не-JSON ответ — сбой транспорта при любом коде.
	var res mutationResult
	if err := json.Unmarshal(body, &res); err != nil {
		return "", &TransportError{Op: op, Err: errors.Join(ErrMalformedPayload, err)}
	}

	if status < 200 || status > 299 {
		return "", &StatusError{Op: op, Status: status, Detail: detailText(res.Detail)}
	}
	return res.Message, nil
}

// detailText достаёт detail, только если это строка.
func detailText(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return ""
	}
	return s
}

// decodeCatalog разбирает JSON-объект потоком токенов, чтобы сохранить порядок ключей.
// Повторный ключ заменяет значение, оставляя занятие на месте первого вхождения.
func decodeCatalog(body []byte) (model.Catalog, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, fmt.Errorf("%w: expected object, got %v", ErrMalformedPayload, tok)
	}

	catalog := make(model.Catalog, 0)
	index := make(map[string]int)

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
		}
		name, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("%w: expected key, got %v", ErrMalformedPayload, keyTok)
		}

		var d activityDetails
		if err := dec.Decode(&d); err != nil {
			return nil, fmt.Errorf("%w: activity %q: %v", ErrMalformedPayload, name, err)
		}
		maxParticipants, err := numberToInt(d.MaxParticipants)
		if err != nil {
			return nil, fmt.Errorf("%w: activity %q: %v", ErrMalformedPayload, name, err)
		}

		a := model.Activity{
			Name:            name,
			Description:     d.Description,
			Schedule:        d.Schedule,
			MaxParticipants: maxParticipants,
			Participants:    d.Participants,
		}
		if a.Participants == nil {
			a.Participants = []string{}
		}

		if i, dup := index[name]; dup {
			catalog[i] = a
			continue
		}
		index[name] = len(catalog)
		catalog = append(catalog, a)
	}

	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}
	return catalog, nil
}

// numberToInt принимает и 15, и 15.0: схема JSON считает оба целыми.
// Значения вне диапазона int (например, 1e300) отвергаются.
func numberToInt(n json.Number) (int, error) {
	if i, err := n.Int64(); err == nil {
		if i < math.MinInt || i > math.MaxInt {
			return 0, fmt.Errorf("max_participants %s out of range", n)
		}
		return int(i), nil
	}
	f, err := n.Float64()
	if err != nil {
		return 0, fmt.Errorf("max_participants: %w", err)
	}
	if f < math.MinInt || f >= -float64(math.MinInt) {
		return 0, fmt.Errorf("max_participants %s out of range", n)
	}
	return int(f), nil
}

func outcomeOf(err error) string {
	if err == nil {
		return metrics.OutcomeOK
	}
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return metrics.OutcomeStatus
	}
	return metrics.OutcomeTransport
}
