// Package render строит представления доски: HTML-страницу и текст для терминала.
// Функции чистые: результат зависит только от переданного BoardView.
package render

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"net/url"

	"activity-board/internal/model"
)

// FailureText выводится вместо списка, если каталог загрузить не удалось.
const FailureText = "Failed to load activities. Please try again later."

//go:embed templates/page.html.tmpl
var templatesFS embed.FS

var pageTemplate = template.Must(
	template.New("page.html.tmpl").
		Funcs(template.FuncMap{"removeTarget": RemoveTarget}).
		ParseFS(templatesFS, "templates/page.html.tmpl"),
)

// pageData — BoardView плюс значения, которые шаблон не должен вычислять сам.
type pageData struct {
	model.BoardView
	FailureText string
	BannerClass string
	HideAfterMS int64
}

// RemoveTarget кодирует пару занятие/email в значение кнопки удаления.
// Все кнопки отправляют одну форму-контейнер, сервер разбирает значение нажатой.
func RemoveTarget(activity, email string) string {
	return url.Values{"activity": {activity}, "email": {email}}.Encode()
}

// ParseRemoveTarget разбирает значение, созданное RemoveTarget.
func ParseRemoveTarget(target string) (activity, email string, err error) {
	q, err := url.ParseQuery(target)
	if err != nil {
		return "", "", fmt.Errorf("parse remove target: %w", err)
	}
	return q.Get("activity"), q.Get("email"), nil
}

// BannerClass возвращает CSS-класс элемента #message.
func BannerClass(b model.Banner) string {
	if b.Visible() {
		return string(b.Kind)
	}
	return string(model.BannerHidden)
}

// RenderPage пишет HTML-страницу доски.
func RenderPage(w io.Writer, v model.BoardView) error {
	data := pageData{
		BoardView:   v,
		FailureText: FailureText,
		BannerClass: BannerClass(v.Banner),
		HideAfterMS: v.Banner.Remaining.Milliseconds(),
	}
	if err := pageTemplate.Execute(w, data); err != nil {
		return fmt.Errorf("render page: %w", err)
	}
	return nil
}
