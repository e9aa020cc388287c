package repository

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedPayload возвращается, если тело ответа не разбирается как ожидаемый JSON.
	ErrMalformedPayload = errors.New("malformed payload")

	// ErrSchemaMismatch возвращается, если список занятий не соответствует схеме.
	ErrSchemaMismatch = errors.New("activities payload does not match schema")
)

// StatusError — прикладная ошибка API: ответ не 2xx.
// Detail содержит текст из поля detail, если сервер прислал его строкой.
type StatusError struct {
	Op     string
	Status int
	Detail string
}

func (e *StatusError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s: status %d: %s", e.Op, e.Status, e.Detail)
	}
	return fmt.Sprintf("%s: status %d", e.Op, e.Status)
}

// TransportError — сбой сети или разбора ответа. Такие ошибки не несут текста для пользователя.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

// Unwrap возвращает вложенную ошибку для поддержки errors.Is/As.
func (e *TransportError) Unwrap() error {
	return e.Err
}
