package scaffold

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/example/loom/internal/core/layout"
	"github.com/example/loom/internal/models"
	scaffoldtmpl "github.com/example/loom/internal/templates/scaffold"
)

// Generator generates code from templates.
type Generator struct {
	funcs template.FuncMap
}

// NewGenerator creates a new Generator.
func NewGenerator() *Generator {
	return &Generator{
		funcs: scaffoldtmpl.TemplateFuncs(),
	}
}

// valueObjectData is the data passed to value object templates.
type valueObjectData struct {
	Namespace   string
	Name        string
	Type        string
	ValueMember string
	Param       string // camelCase constructor parameter
}

// RenderValueObject renders the initial class file of a value object.
func (g *Generator) RenderValueObject(project layout.Project, vo models.ValueObject) (string, error) {
	if vo.Name == "" {
		return "", fmt.Errorf("value object name is required")
	}

	kind := vo.Kind
	if kind == "" {
		kind = models.ValueObjectSimple
	}

	typ := vo.Type
	if typ == "" {
		typ = "string"
	}
	if kind == models.ValueObjectEmail {
		typ = "string?"
	}

	data := valueObjectData{
		Namespace:   project.ValueObjectNamespace(vo.Plural),
		Name:        vo.Name,
		Type:        typ,
		ValueMember: vo.ValueMember(),
		Param:       ToCamelCase(vo.ValueMember()),
	}
	return g.renderTemplate(string(kind), data)
}

// renderTemplate renders a value object template.
func (g *Generator) renderTemplate(name string, data valueObjectData) (string, error) {
	tmplContent, err := scaffoldtmpl.GetValueObjectTemplate(name)
	if err != nil {
		return "", fmt.Errorf("no template for %s value objects: %w", name, err)
	}

	tmpl, err := template.New(name).Funcs(g.funcs).Parse(tmplContent)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}

	return buf.String(), nil
}
