package model

import "time"

// BannerKind — состояние баннера с сообщением об итоге операции.
type BannerKind string

const (
	// BannerHidden означает, что баннер скрыт.
	BannerHidden BannerKind = "hidden"
	// BannerSuccess — баннер показан со стилем успеха.
	BannerSuccess BannerKind = "success"
	// BannerError — баннер показан со стилем ошибки.
	BannerError BannerKind = "error"
)

// Banner — снимок состояния баннера на момент рендера.
// Remaining — сколько ещё баннер останется видимым; ноль для скрытого баннера.
type Banner struct {
	Kind      BannerKind
	Text      string
	Remaining time.Duration
}

// Visible сообщает, показан ли баннер.
func (b Banner) Visible() bool {
	return b.Kind == BannerSuccess || b.Kind == BannerError
}

// SignupForm — значения полей формы записи.
type SignupForm struct {
	Email    string
	Activity string
}

// BoardView — всё, что нужно для отрисовки доски: каталог, признак неудачной загрузки,
// баннер и значения формы.
type BoardView struct {
	Activities Catalog
	LoadFailed bool
	Banner     Banner
	Form       SignupForm
}
