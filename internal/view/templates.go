package view

import (
	"fmt"
	"html/template"
	"net/http"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/odyssey-erp/finflow/internal/flow"
	"github.com/odyssey-erp/finflow/internal/flow/statements"
	"github.com/odyssey-erp/finflow/internal/shared"
	"github.com/odyssey-erp/finflow/web"
)

// Engine renders HTML templates.
type Engine struct {
	templates *template.Template
}

// TemplateData contains values shared across templates.
type TemplateData struct {
	Title       string
	CSRFToken   string
	Flash       *shared.FlashMessage
	CurrentPath string
	Data        any
}

// RowView pairs a statement row with its nesting depth for recursive rendering.
type RowView struct {
	Row   statements.Row
	Depth int
}

var printer = message.NewPrinter(language.English)

// FormatMoney renders an amount with thousands separators, e.g. "-$1,234.50".
func FormatMoney(m flow.Money) string {
	sign := ""
	if m < 0 {
		sign = "-"
		m = -m
	}
	return sign + "$" + printer.Sprintf("%.2f", m.Float64())
}

// NewEngine parses templates at build-time.
func NewEngine() (*Engine, error) {
	funcMap := template.FuncMap{
		"formatMoney": FormatMoney,
		"formatTimestamp": func(ts string) string {
			t, err := time.Parse(flow.TimestampLayout, ts)
			if err != nil {
				return ts
			}
			return t.Format("02 Jan 2006 15:04:05")
		},
		"activityLabel":    func(a flow.Activity) string { return a.Label() },
		"describeActivity": flow.DescribeActivity,
		"isInflow":         func(a flow.Activity) bool { return a.IsInflow() },
		"isNegative":       func(m flow.Money) bool { return m < 0 },
		"indent":           func(depth int) int { return depth * 16 },
		"inc":              func(i int) int { return i + 1 },
		"nest":             func(r statements.Row, depth int) RowView { return RowView{Row: r, Depth: depth} },
	}
	tpl, err := template.New("root").Funcs(funcMap).ParseFS(web.Templates, "templates/layouts/*.html", "templates/partials/*.html", "templates/pages/*.html")
	if err != nil {
		return nil, fmt.Errorf("view: parse templates: %w", err)
	}
	return &Engine{templates: tpl}, nil
}

// Render executes a named template with TemplateData.
func (e *Engine) Render(w http.ResponseWriter, name string, data TemplateData) error {
	if e == nil {
		return fmt.Errorf("template engine not initialised")
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	return e.templates.ExecuteTemplate(w, name, data)
}
