package models

import (
	"fmt"
	"strings"
)

// Entity is a scaffolded domain entity whose generated files are woven into.
type Entity struct {
	Name       string // PascalCase: "Recipe"
	Plural     string // PascalCase plural: "Recipes"
	Properties []EntityProperty
	Features   []Feature
}

// EntityProperty describes one property of an entity.
type EntityProperty struct {
	Name string // PascalCase: "Ingredients"
	Type string // underlying primitive: string, int, decimal, string[] ...

	Relationship        RelationshipKind
	ForeignEntityName   string
	ForeignEntityPlural string

	ValueObject *ValueObject
}

// HasRelationship reports whether the property links to another entity.
func (p EntityProperty) HasRelationship() bool {
	return p.Relationship != "" && p.Relationship != RelationshipNone
}

// IsStringArray reports whether the property is a string array column.
func (p EntityProperty) IsStringArray() bool {
	t := strings.ReplaceAll(strings.ToLower(p.Type), " ", "")
	return t == "string[]" || t == "string[]?"
}

// IsValueObject reports whether the property is backed by a value object.
func (p EntityProperty) IsValueObject() bool {
	return p.ValueObject != nil
}

// IsTextBacked reports whether the property's primitive type is plain,
// non-nullable text. A nullable string is not text backed.
func (p EntityProperty) IsTextBacked() bool {
	return strings.EqualFold(strings.TrimSpace(p.Type), "string")
}

// Feature is a generated use case on an entity (list, get, add, ...).
type Feature struct {
	Type           string
	Name           string
	IsProtected    bool
	PermissionName string
}

// RelationshipKind is the kind of link between two entities.
type RelationshipKind string

// Relationship kinds
const (
	RelationshipNone       RelationshipKind = "none"
	RelationshipOneToOne   RelationshipKind = "onetoone"
	RelationshipOneToMany  RelationshipKind = "onetomany"
	RelationshipManyToOne  RelationshipKind = "manytoone"
	RelationshipManyToMany RelationshipKind = "manytomany"
	RelationshipSelf       RelationshipKind = "self"
)

// ParseRelationshipKind parses a relationship name, case-insensitively.
// "1" may stand for "one" ("manyto1"). Empty input is treated as none.
func ParseRelationshipKind(s string) (RelationshipKind, error) {
	normalized := strings.ToLower(strings.NewReplacer("-", "", "_", "", " ", "", "1", "one").Replace(s))
	switch normalized {
	case "", "none":
		return RelationshipNone, nil
	case "onetoone":
		return RelationshipOneToOne, nil
	case "onetomany":
		return RelationshipOneToMany, nil
	case "manytoone", "child":
		return RelationshipManyToOne, nil
	case "manytomany":
		return RelationshipManyToMany, nil
	case "self":
		return RelationshipSelf, nil
	default:
		return "", fmt.Errorf("unknown relationship %q (valid: none, onetoone, onetomany, manytoone, manytomany, self)", s)
	}
}

// IsChild reports whether configuration for this kind lives on the foreign
// entity rather than the owner.
func (k RelationshipKind) IsChild() bool {
	return k == RelationshipManyToOne
}

// IsCollection reports whether the owner holds many foreign entities.
func (k RelationshipKind) IsCollection() bool {
	return k == RelationshipOneToMany || k == RelationshipManyToMany
}

// DbProvider is the configured database provider of the target project.
type DbProvider string

// Database providers
const (
	DbProviderPostgres  DbProvider = "postgres"
	DbProviderSQLServer DbProvider = "sqlserver"
	DbProviderMySQL     DbProvider = "mysql"
	DbProviderSQLite    DbProvider = "sqlite"
	DbProviderUnknown   DbProvider = "unknown"
)

// ParseDbProvider maps a configured provider name to a DbProvider.
// Unrecognized names map to DbProviderUnknown.
func ParseDbProvider(s string) DbProvider {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "postgres", "postgresql", "npgsql":
		return DbProviderPostgres
	case "sqlserver", "mssql":
		return DbProviderSQLServer
	case "mysql":
		return DbProviderMySQL
	case "sqlite":
		return DbProviderSQLite
	default:
		return DbProviderUnknown
	}
}
