package web

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"
	"time"

	"github.com/muhammadheryan/inventory-management/utils/logger"
	"go.uber.org/zap"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageNames = []string{
	"home.html",
	"products_index.html",
	"products_search.html",
	"products_details.html",
	"products_form.html",
	"arrival_index.html",
	"arrival_search.html",
	"arrival_details.html",
	"arrival_form.html",
	"error.html",
}

// page is the data every template receives.
type page struct {
	Title   string
	Message string
	Errors  []string
	Data    interface{}
	Query   map[string]string
}

var funcs = template.FuncMap{
	"date": func(layout string, t *time.Time) string {
		if t == nil {
			return ""
		}
		return t.Format(layout)
	},
}

func parseTemplates() map[string]*template.Template {
	pages := make(map[string]*template.Template, len(pageNames))
	for _, name := range pageNames {
		pages[name] = template.Must(template.New(name).Funcs(funcs).ParseFS(templateFS, "templates/layout.html", "templates/"+name))
	}
	return pages
}

func (h *WebHandler) render(w http.ResponseWriter, r *http.Request, status int, name string, data page) {
	tpl, ok := h.pages[name]
	if !ok {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := tpl.ExecuteTemplate(&buf, "layout", data); err != nil {
		logger.FromContext(r.Context()).Error("[render] error ExecuteTemplate", zap.String("page", name), zap.String("error", err.Error()))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

func (h *WebHandler) renderError(w http.ResponseWriter, r *http.Request, status int, message string) {
	h.render(w, r, status, "error.html", page{Title: http.StatusText(status), Message: message})
}
