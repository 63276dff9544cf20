// Package mail delivers templated notifications through SendGrid or, in
// development, to the log.
package mail

import (
	"bytes"
	"embed"
	"fmt"
	htmltmpl "html/template"
	"io/fs"
	"path"
	"strings"
	texttmpl "text/template"
	"time"

	"github.com/shopspring/decimal"
)

//go:embed templates/*
var templateFS embed.FS

var funcs = map[string]any{
	"money": func(d decimal.Decimal) string { return d.StringFixed(2) },
	"date":  func(t time.Time) string { return t.Format("02 Jan 2006") },
}

// contextData is what every template is executed with.
type contextData struct {
	AppName string
	Data    any
}

// renderer holds the parsed text and HTML variants of each template.
type renderer struct {
	appName string
	text    map[string]*texttmpl.Template
	html    map[string]*htmltmpl.Template
}

func newRenderer(appName string) (*renderer, error) {
	r := &renderer{
		appName: appName,
		text:    make(map[string]*texttmpl.Template),
		html:    make(map[string]*htmltmpl.Template),
	}
	entries, err := fs.ReadDir(templateFS, "templates")
	if err != nil {
		return nil, err
	}
	for _, e := range entries {
		file := path.Join("templates", e.Name())
		src, err := templateFS.ReadFile(file)
		if err != nil {
			return nil, err
		}
		name := strings.TrimSuffix(e.Name(), path.Ext(e.Name()))
		switch path.Ext(e.Name()) {
		case ".txt":
			t, err := texttmpl.New(name).Funcs(funcs).Parse(string(src))
			if err != nil {
				return nil, fmt.Errorf("parse %s: %w", file, err)
			}
			r.text[name] = t
		case ".html":
			t, err := htmltmpl.New(name).Funcs(funcs).Parse(string(src))
			if err != nil {
				return nil, fmt.Errorf("parse %s: %w", file, err)
			}
			r.html[name] = t
		}
	}
	return r, nil
}

// render returns the plain text and HTML bodies of a template. A template
// without an HTML variant yields an empty HTML body.
func (r *renderer) render(name string, data any) (text, html string, err error) {
	tt, ok := r.text[name]
	if !ok {
		return "", "", fmt.Errorf("unknown email template %q", name)
	}
	ctx := contextData{AppName: r.appName, Data: data}

	var buf bytes.Buffer
	if err = tt.Execute(&buf, ctx); err != nil {
		return "", "", fmt.Errorf("render %s.txt: %w", name, err)
	}
	text = buf.String()

	if ht, ok := r.html[name]; ok {
		buf.Reset()
		if err = ht.Execute(&buf, ctx); err != nil {
			return "", "", fmt.Errorf("render %s.html: %w", name, err)
		}
		html = buf.String()
	}
	return text, html, nil
}
