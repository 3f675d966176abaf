package weave

import (
	"fmt"

	"github.com/example/loom/internal/core/anchor"
	"github.com/example/loom/internal/core/layout"
	"github.com/example/loom/internal/core/patch"
	"github.com/example/loom/internal/models"
)

// ToReadDtoMethodRoot is the mapper method that projects an entity to its read dto.
func ToReadDtoMethodRoot(entity string) anchor.Marker {
	return anchor.Marker(fmt.Sprintf("To%sDto(", entity))
}

// ToQueryableMethodRoot is the mapper method that projects a queryable of entities.
func ToQueryableMethodRoot(entity string) anchor.Marker {
	return anchor.Marker(fmt.Sprintf("To%sDtoQueryable(", entity))
}

// MappingAttributes adds a mapping attribute above every mapper method of the
// entity so the value object flattens into its dto. A mapper with no such
// method is assumed to be hand written and is left alone.
func MappingAttributes(p layout.Project, entity models.Entity, prop models.EntityProperty) Recipe {
	attr := fmt.Sprintf("    [MapProperty(new[] { nameof(%[1]s.%[2]s), nameof(%[1]s.%[2]s.%[3]s) }, new[] { nameof(%[1]sDto.%[2]s) })]",
		entity.Name, prop.Name, prop.ValueObject.ValueMember())

	return Recipe{
		Name:      "mapping-attributes",
		Path:      p.EntityMapperFile(entity.Name, entity.Plural),
		CreateDir: true,
		Pass: patch.Pass{Specs: []patch.InsertionSpec{{
			Matcher:    anchor.AnyOf(ToReadDtoMethodRoot(entity.Name), ToQueryableMethodRoot(entity.Name)),
			Text:       attr,
			Position:   patch.Before,
			Occurrence: patch.Every,
			Signature:  signatureOf(attr),
		}}},
		NotFound: &Notice{
			Level: LevelInfo,
			Message: fmt.Sprintf("It looks like you might have a custom mapper file for %s and may need to add mappings for your value object(s) manually.",
				entity.Name),
		},
	}
}
