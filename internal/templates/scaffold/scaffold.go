// Package scaffold provides templates for code generation.
package scaffold

import (
	"embed"
	"strings"
	"text/template"
)

//go:embed valueobject/*.tmpl
var scaffoldTemplates embed.FS

// GetValueObjectTemplate returns the content of a value object template.
// kind is the template's base name, e.g. "email".
func GetValueObjectTemplate(kind string) (string, error) {
	content, err := scaffoldTemplates.ReadFile("valueobject/" + kind + ".cs.tmpl")
	if err != nil {
		return "", err
	}
	return string(content), nil
}

// TemplateFuncs returns the template function map for scaffold templates.
func TemplateFuncs() template.FuncMap {
	return template.FuncMap{
		"toLower": strings.ToLower,
		"toUpper": strings.ToUpper,
		"title":   capitalize,
		"join":    strings.Join,
	}
}

// capitalize returns the string with the first letter uppercased.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
