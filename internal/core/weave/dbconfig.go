package weave

import (
	"fmt"

	"github.com/example/loom/internal/core/layout"
	"github.com/example/loom/internal/core/patch"
	"github.com/example/loom/internal/models"
)

// RelationshipConfig builds the database configuration recipe for a
// relationship property. Child relationships are configured on the foreign
// entity, so the target file is the foreign entity's configuration.
func RelationshipConfig(p layout.Project, entity models.Entity, prop models.EntityProperty) Recipe {
	target := entity.Name
	if prop.Relationship.IsChild() {
		target = prop.ForeignEntityName
	}

	return Recipe{
		Name:      "relationship-config",
		Path:      p.EntityConfigurationFile(target),
		CreateDir: true,
		Pass: patch.Pass{Specs: []patch.InsertionSpec{
			after(RelationshipMarker, relationshipConfigText(entity, prop)),
		}},
	}
}

func relationshipConfigText(entity models.Entity, prop models.EntityProperty) string {
	switch prop.Relationship {
	case models.RelationshipOneToMany:
		return fmt.Sprintf("        builder.HasMany(x => x.%s).WithOne(x => x.%s);", prop.Name, entity.Name)
	case models.RelationshipManyToOne:
		return fmt.Sprintf("        builder.HasMany(x => x.%s).WithOne(x => x.%s);", entity.Plural, prop.Name)
	case models.RelationshipOneToOne:
		return fmt.Sprintf("        builder.HasOne(x => x.%s).WithOne(x => x.%s).HasForeignKey<%s>(x => x.Id);",
			prop.Name, entity.Name, prop.ForeignEntityName)
	case models.RelationshipManyToMany:
		return fmt.Sprintf("        builder.HasMany(x => x.%s).WithMany(x => x.%s);", prop.Name, entity.Plural)
	case models.RelationshipSelf:
		return fmt.Sprintf("        builder.HasOne(x => x.%s);", prop.Name)
	default:
		return ""
	}
}

// StringArrayConfig builds the column type recipe for a string array property.
// The column type is Postgres specific; other providers get it anyway along
// with a warning.
func StringArrayConfig(p layout.Project, entity models.Entity, prop models.EntityProperty, provider models.DbProvider) Recipe {
	path := p.EntityConfigurationFile(entity.Name)
	className := entity.Name + "Configuration"

	var notices []Notice
	switch provider {
	case models.DbProviderPostgres:
	case models.DbProviderUnknown:
		notices = append(notices, Notice{
			Level: LevelWarning,
			Message: fmt.Sprintf("The database provider could not be determined. Check the `text[]` column type for %s in the %s class.",
				prop.Name, className),
		})
	default:
		notices = append(notices, Notice{
			Level: LevelWarning,
			Message: fmt.Sprintf("String arrays use a Postgres column type. Update the column type for %s in the %s class if you are not using Postgres.",
				prop.Name, className),
		})
	}

	return Recipe{
		Name:      "string-array-config",
		Path:      path,
		CreateDir: true,
		Notices:   notices,
		Pass: patch.Pass{Specs: []patch.InsertionSpec{
			after(PropertyMarker, fmt.Sprintf(`        builder.Property(x => x.%s).HasColumnType("text[]");`, prop.Name)),
		}},
	}
}

// ValueObjectConfig builds the owned-type mapping recipe for a value object
// property. One scan adds the mapping at the property marker and a using
// directive after the first using line.
func ValueObjectConfig(p layout.Project, entity models.Entity, prop models.EntityProperty) Recipe {
	vo := prop.ValueObject
	using := fmt.Sprintf("using %s;", p.ValueObjectNamespace(vo.Plural))

	return Recipe{
		Name:      "value-object-config",
		Path:      p.EntityConfigurationFile(entity.Name),
		CreateDir: true,
		Pass: patch.Pass{Specs: []patch.InsertionSpec{
			after(PropertyMarker, valueObjectConfigText(prop)),
			after(UsingDirective, using),
		}},
	}
}

func valueObjectConfigText(prop models.EntityProperty) string {
	return fmt.Sprintf(`        builder.OwnsOne(x => x.%[1]s, opts =>
            {
                opts.Property(x => x.%[2]s).HasColumnName("%[1]s");
            }).Navigation(x => x.%[1]s)
            .IsRequired();`, prop.Name, prop.ValueObject.ValueMember())
}
