// Package phases orders the weaving work of one scaffolding invocation.
// The phase list is explicit: later phases assume the files touched by
// earlier phases are already consistent, so the order is part of the contract.
package phases

import (
	"github.com/example/loom/internal/core/effects"
	"github.com/example/loom/internal/core/layout"
	"github.com/example/loom/internal/core/weave"
	"github.com/example/loom/internal/models"
)

// Phase names one sequential stage of entity scaffolding.
type Phase string

const (
	Permissions   Phase = "permissions"
	Relationships Phase = "relationships"
	StringArrays  Phase = "string-arrays"
	ValueObjects  Phase = "value-objects"
)

// Order is the fixed sequence phases run in.
var Order = []Phase{Permissions, Relationships, StringArrays, ValueObjects}

// PlanInput contains pre-fetched data for plan generation.
// All values must be gathered by the caller - no I/O in the planner.
type PlanInput struct {
	Project  layout.Project
	Provider models.DbProvider
	Entities []models.Entity

	// ValueObjectSources holds rendered value object files keyed by name.
	ValueObjectSources map[string]string
}

// Step is one effect tagged with the phase that produced it.
type Step struct {
	Phase  Phase
	Effect effects.Effect
}

// Plan is the ordered work of one invocation.
type Plan struct {
	Steps []Step
}

// Effects flattens the plan into executable effects, in order.
func (p Plan) Effects() []effects.Effect {
	effs := make([]effects.Effect, 0, len(p.Steps))
	for _, s := range p.Steps {
		effs = append(effs, s.Effect)
	}
	return effs
}

// Count returns the number of steps planned for a phase.
func (p Plan) Count(phase Phase) int {
	n := 0
	for _, s := range p.Steps {
		if s.Phase == phase {
			n++
		}
	}
	return n
}

// GeneratePlan builds the full plan, phase by phase in Order.
// This is a pure function - all input data must be pre-fetched.
func GeneratePlan(input PlanInput) Plan {
	var plan Plan
	for _, phase := range Order {
		for _, eff := range planPhase(phase, input) {
			plan.Steps = append(plan.Steps, Step{Phase: phase, Effect: eff})
		}
	}
	return plan
}

func planPhase(phase Phase, input PlanInput) []effects.Effect {
	switch phase {
	case Permissions:
		return planPermissions(input)
	case Relationships:
		return planRelationships(input)
	case StringArrays:
		return planStringArrays(input)
	case ValueObjects:
		return planValueObjects(input)
	default:
		return nil
	}
}

func planPermissions(input PlanInput) []effects.Effect {
	var effs []effects.Effect
	for _, entity := range input.Entities {
		for _, feature := range entity.Features {
			if !feature.IsProtected {
				continue
			}
			if r, ok := weave.Permission(input.Project, feature.PermissionName); ok {
				effs = append(effs, weaveStep(Permissions, r))
			}
		}
	}
	return effs
}

func planRelationships(input PlanInput) []effects.Effect {
	var effs []effects.Effect
	for _, entity := range input.Entities {
		for _, prop := range entity.Properties {
			if !prop.HasRelationship() {
				continue
			}
			effs = append(effs,
				weaveStep(Relationships, weave.EntityProperty(input.Project, entity, prop)),
				weaveStep(Relationships, weave.EntityMethods(input.Project, entity, prop)),
			)
			if r, ok := weave.ParentRelationship(input.Project, entity, prop); ok {
				effs = append(effs, weaveStep(Relationships, r))
			}
			effs = append(effs, weaveStep(Relationships, weave.RelationshipConfig(input.Project, entity, prop)))
		}
	}
	return effs
}

func planStringArrays(input PlanInput) []effects.Effect {
	var effs []effects.Effect
	for _, entity := range input.Entities {
		for _, prop := range entity.Properties {
			if !prop.IsStringArray() {
				continue
			}
			effs = append(effs,
				weaveStep(StringArrays, weave.StringArrayMethods(input.Project, entity, prop)),
				weaveStep(StringArrays, weave.StringArrayConfig(input.Project, entity, prop, input.Provider)),
			)
		}
	}
	return effs
}

func planValueObjects(input PlanInput) []effects.Effect {
	var effs []effects.Effect
	for _, entity := range input.Entities {
		for _, prop := range entity.Properties {
			if prop.IsValueObject() {
				effs = append(effs, weaveStep(ValueObjects, weave.ValueObjectConfig(input.Project, entity, prop)))
			}
		}
	}

	for _, vo := range DistinctValueObjects(input.Entities) {
		src, ok := input.ValueObjectSources[vo.Name]
		if !ok {
			effs = append(effs, effects.LogEffect{
				Level:   "warning",
				Message: "No template output for value object " + vo.Name + "; it was not generated.",
			})
			continue
		}
		effs = append(effs, effects.FileEffect{
			Phase:     string(ValueObjects),
			Operation: "create_if_absent",
			Path:      input.Project.ValueObjectFile(vo.Name, vo.Plural),
			Content:   []byte(src),
			Mode:      0644,
		})
	}

	for _, entity := range input.Entities {
		for _, prop := range entity.Properties {
			if prop.IsValueObject() && !prop.IsTextBacked() {
				effs = append(effs, weaveStep(ValueObjects, weave.MappingAttributes(input.Project, entity, prop)))
			}
		}
	}
	return effs
}

// DistinctValueObjects lists every value object the entity set uses plus the
// base set, deduplicated by name. The first definition of a name wins.
func DistinctValueObjects(entities []models.Entity) []models.ValueObject {
	seen := make(map[string]bool)
	var out []models.ValueObject
	add := func(vo models.ValueObject) {
		if seen[vo.Name] {
			return
		}
		seen[vo.Name] = true
		out = append(out, vo)
	}

	for _, entity := range entities {
		for _, prop := range entity.Properties {
			if prop.IsValueObject() {
				add(*prop.ValueObject)
			}
		}
	}
	for _, vo := range models.BaseValueObjects() {
		add(vo)
	}
	return out
}

func weaveStep(phase Phase, r weave.Recipe) effects.Effect {
	return effects.WeaveEffect{Phase: string(phase), Recipe: r}
}
