package repository

import (
	"errors"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// activitiesSchemaJSON описывает ответ GET /activities: объект, где ключ — имя занятия.
// description и schedule не обязательны: без них карточка просто выводится пустой.
const activitiesSchemaJSON = `{
  "type": "object",
  "additionalProperties": {
    "type": "object",
    "required": ["max_participants", "participants"],
    "properties": {
      "description": {"type": "string"},
      "schedule": {"type": "string"},
      "max_participants": {"type": "integer"},
      "participants": {"type": "array", "items": {"type": "string"}}
    }
  }
}`

var activitiesSchema = mustSchema(activitiesSchemaJSON)

func mustSchema(src string) *gojsonschema.Schema {
	s, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(src))
	if err != nil {
		panic(fmt.Sprintf("compile schema: %v", err))
	}
	return s
}

// validateActivities проверяет тело ответа по схеме.
// Невалидный JSON даёт ErrMalformedPayload, несоответствие схеме — ErrSchemaMismatch.
func validateActivities(body []byte) error {
	result, err := activitiesSchema.Validate(gojsonschema.NewBytesLoader(body))
	if err != nil {
		return errors.Join(ErrMalformedPayload, err)
	}
	if result.Valid() {
		return nil
	}

	msgs := make([]string, 0, len(result.Errors()))
	for _, e := range result.Errors() {
		msgs = append(msgs, e.String())
	}
	return fmt.Errorf("%w: %s", ErrSchemaMismatch, strings.Join(msgs, "; "))
}
