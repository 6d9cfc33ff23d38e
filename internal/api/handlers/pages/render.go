package pages

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

//go:embed templates/*.html
var templatesFS embed.FS

//go:embed content/home.md
var homeMarkdown []byte

// page шаблоны страниц; каждая страница рендерится внутри layout
const (
	pageHome         = "home"
	pageBooking      = "booking"
	pageConfirmation = "confirmation"
	pageNotFound     = "notfound"
)

type renderer struct {
	pages    map[string]*template.Template
	homeBody template.HTML
}

func newRenderer() (*renderer, error) {
	r := &renderer{pages: make(map[string]*template.Template)}

	for _, name := range []string{pageHome, pageBooking, pageConfirmation, pageNotFound} {
		tpl, err := template.ParseFS(templatesFS, "templates/layout.html", "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("parse %s template: %w", name, err)
		}
		r.pages[name] = tpl
	}

	md := goldmark.New(goldmark.WithExtensions(extension.GFM))
	var buf bytes.Buffer
	if err := md.Convert(homeMarkdown, &buf); err != nil {
		return nil, fmt.Errorf("render home markdown: %w", err)
	}
	r.homeBody = template.HTML(buf.String())

	return r, nil
}

// render выполняет шаблон в буфер, чтобы ошибка шаблона не оставила половину страницы
func (r *renderer) render(w http.ResponseWriter, status int, name string, data interface{}) error {
	tpl, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("unknown page %q", name)
	}

	var buf bytes.Buffer
	if err := tpl.ExecuteTemplate(&buf, "layout", data); err != nil {
		return fmt.Errorf("execute %s template: %w", name, err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(buf.Bytes())
	return nil
}

// occasionLabel подпись повода для списка ("engagement" -> "Engagement")
func occasionLabel(value string) string {
	if value == "" {
		return value
	}
	return strings.ToUpper(value[:1]) + value[1:]
}
