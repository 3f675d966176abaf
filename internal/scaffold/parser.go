package scaffold

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode"

	"gopkg.in/yaml.v3"

	"github.com/example/loom/internal/models"
)

// ErrNoEntities is returned for a template that declares no entities.
var ErrNoEntities = errors.New("template declares no entities")

// Definition is a parsed entity template with every default applied.
type Definition struct {
	ProjectName string
	DbProvider  string
	Entities    []models.Entity
}

// LoadTemplate reads and parses the entity template at path.
func LoadTemplate(path string) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read template: %w", err)
	}
	def, err := ParseTemplate(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return def, nil
}

// ParseTemplate parses template YAML into entities.
//
// Missing plurals are derived, properties default to string, value object
// kinds are inferred from their names and protected features without a
// permission name get one derived from the feature type.
func ParseTemplate(data []byte) (*Definition, error) {
	var tmpl Template
	if err := yaml.Unmarshal(data, &tmpl); err != nil {
		return nil, fmt.Errorf("invalid template: %w", err)
	}
	if len(tmpl.Entities) == 0 {
		return nil, ErrNoEntities
	}

	def := &Definition{
		ProjectName: strings.TrimSpace(tmpl.ProjectName),
		DbProvider:  strings.TrimSpace(tmpl.DbContext.Provider),
	}

	seen := make(map[string]bool)
	for i, et := range tmpl.Entities {
		entity, err := buildEntity(et)
		if err != nil {
			return nil, fmt.Errorf("entity %d: %w", i+1, err)
		}
		if seen[entity.Name] {
			return nil, fmt.Errorf("entity %d: duplicate entity %q", i+1, entity.Name)
		}
		seen[entity.Name] = true
		def.Entities = append(def.Entities, entity)
	}
	return def, nil
}

func buildEntity(et EntityTemplate) (models.Entity, error) {
	name := strings.TrimSpace(et.Name)
	if name == "" {
		return models.Entity{}, fmt.Errorf("entity name is required")
	}

	entity := models.Entity{
		Name:   name,
		Plural: orDefault(et.Plural, Pluralize(name)),
	}

	for _, pt := range et.Properties {
		prop, err := buildProperty(pt)
		if err != nil {
			return models.Entity{}, fmt.Errorf("%s: %w", name, err)
		}
		entity.Properties = append(entity.Properties, prop)
	}

	for _, ft := range et.Features {
		feature, err := buildFeature(ft, entity.Plural)
		if err != nil {
			return models.Entity{}, fmt.Errorf("%s: %w", name, err)
		}
		entity.Features = append(entity.Features, feature)
	}
	return entity, nil
}

func buildProperty(pt PropertyTemplate) (models.EntityProperty, error) {
	name := strings.TrimSpace(pt.Name)
	if name == "" {
		return models.EntityProperty{}, fmt.Errorf("property name is required")
	}

	rel, err := models.ParseRelationshipKind(pt.Relationship)
	if err != nil {
		return models.EntityProperty{}, fmt.Errorf("property %s: %w", name, err)
	}

	prop := models.EntityProperty{
		Name:         name,
		Type:         orDefault(pt.Type, "string"),
		Relationship: rel,
	}

	if prop.HasRelationship() {
		foreign := strings.TrimSpace(pt.ForeignEntityName)
		if foreign == "" {
			return models.EntityProperty{}, fmt.Errorf("property %s: relationship %s needs a foreign entity", name, rel)
		}
		prop.ForeignEntityName = foreign
		prop.ForeignEntityPlural = orDefault(pt.ForeignEntityPlural, Pluralize(foreign))
		prop.Type = orDefault(pt.Type, foreign)
	}

	if pt.isValueObject() {
		vo := buildValueObject(pt, prop)
		prop.ValueObject = &vo
		if strings.TrimSpace(pt.Type) == "" && vo.Kind != models.ValueObjectSimple {
			prop.Type = vo.Type
		}
	}
	return prop, nil
}

func buildValueObject(pt PropertyTemplate, prop models.EntityProperty) models.ValueObject {
	kind := models.ValueObjectSimple
	if pt.AsValueObject != "" {
		kind = models.ValueObjectKindFor(pt.AsValueObject)
	}

	vo := models.ValueObject{Kind: kind, Type: prop.Type}
	if base, ok := baseValueObject(kind); ok {
		vo = base
	}

	switch {
	case strings.TrimSpace(pt.ValueObjectName) != "":
		vo.Name = strings.TrimSpace(pt.ValueObjectName)
	case kind == models.ValueObjectSimple:
		vo.Name = prop.Name
	}

	vo.Plural = orDefault(pt.ValueObjectPlural, valueObjectPlural(vo.Name))
	return vo
}

func baseValueObject(kind models.ValueObjectKind) (models.ValueObject, bool) {
	if kind == models.ValueObjectSimple {
		return models.ValueObject{}, false
	}
	for _, vo := range models.BaseValueObjects() {
		if vo.Kind == kind {
			return vo, true
		}
	}
	return models.ValueObject{}, false
}

// valueObjectPlural keeps the base set's irregular plurals.
func valueObjectPlural(name string) string {
	for _, vo := range models.BaseValueObjects() {
		if vo.Name == name {
			return vo.Plural
		}
	}
	return Pluralize(name)
}

func buildFeature(ft FeatureTemplate, plural string) (models.Feature, error) {
	featureType := strings.TrimSpace(ft.Type)
	if featureType == "" {
		return models.Feature{}, fmt.Errorf("feature type is required")
	}

	feature := models.Feature{
		Type:           featureType,
		Name:           strings.TrimSpace(ft.Name),
		IsProtected:    ft.IsProtected,
		PermissionName: strings.TrimSpace(ft.PermissionName),
	}
	if feature.IsProtected && feature.PermissionName == "" {
		feature.PermissionName = DefaultPermission(feature.Type, feature.Name, plural)
	}
	return feature, nil
}

// DefaultPermission derives the permission guarding a feature.
// e.g. ("GetList", "", "Recipes") -> "CanReadRecipes"
func DefaultPermission(featureType, featureName, plural string) string {
	switch strings.ToLower(featureType) {
	case "getlist", "getrecord", "getall":
		return "CanRead" + plural
	case "addrecord", "addlistbyfk":
		return "CanAdd" + plural
	case "updaterecord":
		return "CanUpdate" + plural
	case "patchrecord":
		return "CanPatch" + plural
	case "deleterecord":
		return "CanDelete" + plural
	default:
		if featureName != "" {
			return "Can" + ToPascalCase(featureName)
		}
		return "Can" + ToPascalCase(featureType)
	}
}

func orDefault(s, def string) string {
	if s = strings.TrimSpace(s); s != "" {
		return s
	}
	return def
}

// Name transformation helpers

// ToPascalCase converts a string to PascalCase.
// Words that are already capitalized keep their inner casing.
func ToPascalCase(s string) string {
	words := splitWords(s)
	for i, word := range words {
		words[i] = capitalize(word)
	}
	return strings.Join(words, "")
}

// capitalize returns the string with the first letter uppercased.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// ToCamelCase converts a string to camelCase.
func ToCamelCase(s string) string {
	pascal := ToPascalCase(s)
	if len(pascal) == 0 {
		return pascal
	}
	return strings.ToLower(pascal[:1]) + pascal[1:]
}

// splitWords splits a string into words (handles camelCase, PascalCase, snake_case, kebab-case).
func splitWords(s string) []string {
	// Replace common separators with space
	s = strings.ReplaceAll(s, "_", " ")
	s = strings.ReplaceAll(s, "-", " ")

	// Insert space before uppercase letters in camelCase/PascalCase
	var result strings.Builder
	for i, r := range s {
		if i > 0 && unicode.IsUpper(r) {
			prev := rune(s[i-1])
			if !unicode.IsSpace(prev) && !unicode.IsUpper(prev) {
				result.WriteRune(' ')
			}
		}
		result.WriteRune(r)
	}

	return strings.Fields(result.String())
}

// Pluralize returns a simple pluralized form of a word.
func Pluralize(s string) string {
	if s == "" {
		return s
	}

	if strings.HasSuffix(s, "s") || strings.HasSuffix(s, "x") ||
		strings.HasSuffix(s, "ch") || strings.HasSuffix(s, "sh") {
		return s + "es"
	}
	if strings.HasSuffix(s, "y") && len(s) > 1 {
		lastChar := s[len(s)-2]
		if lastChar != 'a' && lastChar != 'e' && lastChar != 'i' && lastChar != 'o' && lastChar != 'u' {
			return s[:len(s)-1] + "ies"
		}
	}
	return s + "s"
}
