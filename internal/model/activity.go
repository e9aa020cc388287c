// Package model содержит доменные структуры доски активностей: занятия, их участников и состояние баннера.
package model

// Activity описывает занятие с расписанием, вместимостью и списком записавшихся (email).
// Name — уникальный ключ, под которым API отдаёт занятие.
type Activity struct {
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

// SpotsLeft возвращает число свободных мест. Значение не обрезается снизу:
// если сервер вернул переполненное занятие, показывается отрицательное число.
func (a Activity) SpotsLeft() int {
	return a.MaxParticipants - len(a.Participants)
}

// HasParticipant проверяет, записан ли email на занятие.
func (a Activity) HasParticipant(email string) bool {
	for _, p := range a.Participants {
		if p == email {
			return true
		}
	}
	return false
}

// Catalog — список занятий в том порядке, в котором ключи пришли в ответе API.
type Catalog []Activity

// Names возвращает имена занятий в порядке каталога.
func (c Catalog) Names() []string {
	names := make([]string, 0, len(c))
	for _, a := range c {
		names = append(names, a.Name)
	}
	return names
}

// Find ищет занятие по имени.
func (c Catalog) Find(name string) (Activity, bool) {
	for _, a := range c {
		if a.Name == name {
			return a, true
		}
	}
	return Activity{}, false
}
