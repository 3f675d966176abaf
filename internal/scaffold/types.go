// Package scaffold loads entity templates and renders value object sources.
package scaffold

// Template is the root of an entity template file.
type Template struct {
	ProjectName string           `yaml:"ProjectName"`
	DbContext   DbContext        `yaml:"DbContext"`
	Entities    []EntityTemplate `yaml:"Entities"`
}

// DbContext carries the database settings of the scaffolded project.
type DbContext struct {
	ContextName string `yaml:"ContextName"`
	Provider    string `yaml:"Provider"`
}

// EntityTemplate describes one entity as written in a template.
type EntityTemplate struct {
	Name       string             `yaml:"Name"`
	Plural     string             `yaml:"Plural"`
	Properties []PropertyTemplate `yaml:"Properties"`
	Features   []FeatureTemplate  `yaml:"Features"`
}

// PropertyTemplate describes one entity property.
type PropertyTemplate struct {
	Name                string `yaml:"Name"`
	Type                string `yaml:"Type"`
	Relationship        string `yaml:"Relationship"`
	ForeignEntityName   string `yaml:"ForeignEntityName"`
	ForeignEntityPlural string `yaml:"ForeignEntityPlural"`
	AsValueObject       string `yaml:"AsValueObject"`
	ValueObjectName     string `yaml:"ValueObjectName"`
	ValueObjectPlural   string `yaml:"ValueObjectPlural"`
}

// FeatureTemplate describes a generated use case on an entity.
type FeatureTemplate struct {
	Type           string `yaml:"Type"`
	Name           string `yaml:"Name"`
	IsProtected    bool   `yaml:"IsProtected"`
	PermissionName string `yaml:"PermissionName"`
}

// isValueObject reports whether the property asks for a value object.
func (p PropertyTemplate) isValueObject() bool {
	return p.AsValueObject != "" || p.ValueObjectName != ""
}
