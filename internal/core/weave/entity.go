package weave

import (
	"fmt"

	"github.com/example/loom/internal/core/layout"
	"github.com/example/loom/internal/core/patch"
	"github.com/example/loom/internal/models"
)

// EntityProperty adds the navigation property for a relationship to the
// owning entity class.
func EntityProperty(p layout.Project, entity models.Entity, prop models.EntityProperty) Recipe {
	var text string
	if prop.Relationship.IsCollection() {
		text = collectionProperty(prop.ForeignEntityName, prop.Name)
	} else {
		text = singleProperty(prop.ForeignEntityName, prop.Name)
	}

	return Recipe{
		Name:     "entity-property",
		Path:     p.EntityFile(entity.Name, entity.Plural),
		Required: true,
		Pass:     patch.Pass{Specs: []patch.InsertionSpec{after(EntityPropsMarker, text)}},
	}
}

// EntityMethods adds the management methods for a relationship property.
func EntityMethods(p layout.Project, entity models.Entity, prop models.EntityProperty) Recipe {
	var text string
	if prop.Relationship.IsCollection() {
		text = collectionMethods(entity.Name, prop.ForeignEntityName, prop.Name)
	} else {
		text = setMethod(entity.Name, prop.ForeignEntityName, prop.Name)
	}

	return Recipe{
		Name:     "entity-methods",
		Path:     p.EntityFile(entity.Name, entity.Plural),
		Required: true,
		Pass:     patch.Pass{Specs: []patch.InsertionSpec{after(EntityMethodsMarker, text)}},
	}
}

// ParentRelationship adds the inverse navigation to the foreign entity.
// Self relationships have no separate parent and yield no recipe.
func ParentRelationship(p layout.Project, entity models.Entity, prop models.EntityProperty) (Recipe, bool) {
	var text string
	switch prop.Relationship {
	case models.RelationshipOneToMany, models.RelationshipOneToOne:
		text = singleProperty(entity.Name, entity.Name)
	case models.RelationshipManyToOne, models.RelationshipManyToMany:
		text = collectionProperty(entity.Name, entity.Plural)
	default:
		return Recipe{}, false
	}

	return Recipe{
		Name:     "parent-relationship",
		Path:     p.EntityFile(prop.ForeignEntityName, prop.ForeignEntityPlural),
		Required: true,
		Pass:     patch.Pass{Specs: []patch.InsertionSpec{after(EntityPropsMarker, text)}},
	}, true
}

// StringArrayMethods adds item management methods for a string array property.
func StringArrayMethods(p layout.Project, entity models.Entity, prop models.EntityProperty) Recipe {
	text := fmt.Sprintf(`    public %[1]s Add%[2]sItem(string item)
    {
        %[2]s ??= new List<string>();
        %[2]s.Add(item);
        return this;
    }

    public %[1]s Remove%[2]sItem(string item)
    {
        %[2]s?.RemoveAll(x => x == item);
        return this;
    }`, entity.Name, prop.Name)

	return Recipe{
		Name:     "string-array-methods",
		Path:     p.EntityFile(entity.Name, entity.Plural),
		Required: true,
		Pass:     patch.Pass{Specs: []patch.InsertionSpec{after(EntityMethodsMarker, text)}},
	}
}

func singleProperty(typeName, name string) string {
	return fmt.Sprintf("    public %s %s { get; private set; }", typeName, name)
}

func collectionProperty(typeName, name string) string {
	field := "_" + lowerFirst(name)
	return fmt.Sprintf(`    private readonly List<%[1]s> %[2]s = new();
    public IReadOnlyCollection<%[1]s> %[3]s => %[2]s.AsReadOnly();`, typeName, field, name)
}

func setMethod(entityName, typeName, name string) string {
	arg := lowerFirst(name)
	return fmt.Sprintf(`    public %[1]s Set%[3]s(%[2]s %[4]s)
    {
        %[3]s = %[4]s;
        return this;
    }`, entityName, typeName, name, arg)
}

func collectionMethods(entityName, typeName, name string) string {
	field := "_" + lowerFirst(name)
	arg := lowerFirst(typeName)
	return fmt.Sprintf(`    public %[1]s Add%[2]s(%[2]s %[4]s)
    {
        %[3]s.Add(%[4]s);
        return this;
    }

    public %[1]s Remove%[2]s(%[2]s %[4]s)
    {
        %[3]s.RemoveAll(x => x.Id == %[4]s.Id);
        return this;
    }`, entityName, typeName, field, arg)
}
