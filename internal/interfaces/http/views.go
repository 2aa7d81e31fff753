package http

import (
	"bytes"
	"fmt"
	"html/template"
	"io/fs"
	"net/url"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/mietpark-admin/internal/domain/entity"
	"github.com/jhoicas/mietpark-admin/pkg/format"
	"github.com/jhoicas/mietpark-admin/web"
)

// Views plantillas de página; cada una se parsea junto con layout.html.
type Views struct {
	pages map[string]*template.Template
}

var pageTemplates = []string{
	"geraete.html",
	"geraet_detail.html",
	"vermietungen.html",
	"einnahmen.html",
	"berichte.html",
	"stammdaten.html",
	"fehler.html",
}

// LoadViews parsea las plantillas embebidas en el binario.
func LoadViews() (*Views, error) {
	tfs := web.TemplatesFS()

	layout, err := fs.ReadFile(tfs, "layout.html")
	if err != nil {
		return nil, fmt.Errorf("leyendo layout: %w", err)
	}

	v := &Views{pages: make(map[string]*template.Template, len(pageTemplates))}
	for _, page := range pageTemplates {
		body, err := fs.ReadFile(tfs, page)
		if err != nil {
			return nil, fmt.Errorf("leyendo plantilla %s: %w", page, err)
		}
		tmpl, err := template.New(page).Funcs(funcMap()).Parse(string(layout))
		if err != nil {
			return nil, fmt.Errorf("parseando layout para %s: %w", page, err)
		}
		if tmpl, err = tmpl.Parse(string(body)); err != nil {
			return nil, fmt.Errorf("parseando plantilla %s: %w", page, err)
		}
		v.pages[page] = tmpl
	}
	return v, nil
}

// Render ejecuta la página en un buffer y solo entonces escribe la respuesta,
// así un fallo de plantilla no deja HTML a medias.
func (v *Views) Render(c *fiber.Ctx, status int, name string, data any) error {
	tmpl, ok := v.pages[name]
	if !ok {
		return fmt.Errorf("plantilla %q no registrada", name)
	}
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", data); err != nil {
		return fmt.Errorf("render %s: %w", name, err)
	}
	c.Status(status)
	c.Type("html", "utf-8")
	return c.Send(buf.Bytes())
}

// PageData datos comunes a todas las páginas.
type PageData struct {
	Title     string
	Active    string // entrada de navegación resaltada
	Error     string
	RequestID string
}

func newPageData(c *fiber.Ctx, title, active string) PageData {
	return PageData{Title: title, Active: active, RequestID: RequestIDFrom(c)}
}

func funcMap() template.FuncMap {
	return template.FuncMap{
		"money":    format.Money,
		"negative": format.Negative,
		"moneyOpt": func(d decimal.NullDecimal) string {
			if !d.Valid {
				return "—"
			}
			return format.Money(d.Decimal)
		},
		"date": func(d entity.Date) string { return format.Date(d.Time) },
		"dateOpt": func(d *entity.Date) string {
			if d == nil {
				return "—"
			}
			return format.Date(d.Time)
		},
		// Vermietung sin "bis".
		"until": func(d *entity.Date) string {
			if d == nil || d.IsZero() {
				return "offen"
			}
			return format.Date(d.Time)
		},
		"number": func(f float64) string { return format.Number(f, 1) },
		"year": func(y *int) string {
			if y == nil {
				return "—"
			}
			return strconv.Itoa(*y)
		},
		"id":      func(id int64) string { return strconv.FormatInt(id, 10) },
		"bar":     barHeight,
		"pageURL": pageURL,
		"rowURL":  rowURL,
		"param":   withParam,
		"inc":     func(n int) int { return n + 1 },
		"dec":     func(n int) int { return n - 1 },
	}
}

// barHeight altura relativa (0-100) de v frente al mayor de a y b.
func barHeight(v, a, b decimal.Decimal) int {
	top := decimal.Max(a.Abs(), b.Abs())
	if top.IsZero() {
		return 0
	}
	return int(v.Abs().Div(top).Mul(decimal.NewFromInt(100)).Round(0).IntPart())
}

// pageURL enlace al listado de equipos con filtros y página.
func pageURL(status, location string, page int) string {
	q := url.Values{}
	if status != "" {
		q.Set("status", status)
	}
	if location != "" {
		q.Set("standort_typ", location)
	}
	if page > 1 {
		q.Set("page", strconv.Itoa(page))
	}
	if len(q) == 0 {
		return "/geraete"
	}
	return "/geraete?" + q.Encode()
}

// withParam añade key=id a una URL local.
func withParam(base, key string, id int64) string {
	sep := "?"
	if strings.Contains(base, "?") {
		sep = "&"
	}
	return base + sep + key + "=" + strconv.FormatInt(id, 10)
}
