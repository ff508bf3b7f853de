package templates

import (
	"bytes"
	"embed"
	"fmt"
	htmpl "html/template"
)

//go:embed *.tmpl
var FS embed.FS

var tset = htmpl.Must(htmpl.ParseFS(FS, "*.tmpl"))

// Render renders the named template against data and returns subject and
// HTML body.
func Render(name string, data map[string]any) (subject, html string, err error) {
	var buf bytes.Buffer
	if err := tset.ExecuteTemplate(&buf, name+".tmpl", data); err != nil {
		return "", "", fmt.Errorf("render %s: %w", name, err)
	}
	return SubjectFor(name), buf.String(), nil
}

func SubjectFor(name string) string {
	switch name {
	case "activation":
		return "Confirm your email address"
	case "password_reset":
		return "Reset your password"
	default:
		return "Notification"
	}
}
