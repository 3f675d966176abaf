package app

import (
	"context"
	"fmt"

	"github.com/example/loom/internal/core/layout"
	"github.com/example/loom/internal/core/phases"
	"github.com/example/loom/internal/models"
	"github.com/example/loom/internal/ports/primary"
)

// ValueObjectRenderer renders the initial source of a value object file.
type ValueObjectRenderer interface {
	RenderValueObject(project layout.Project, vo models.ValueObject) (string, error)
}

// ScaffoldEntities runs every scaffolding phase, in phases.Order, over the
// entity set. Base entity files must already exist.
func (s *WeaveServiceImpl) ScaffoldEntities(ctx context.Context, req primary.ScaffoldEntitiesRequest) (*primary.WeaveResponse, error) {
	project, err := projectFrom(req.Project)
	if err != nil {
		return nil, err
	}

	sources, err := s.renderValueObjects(project, req.Entities)
	if err != nil {
		return nil, err
	}

	plan := phases.GeneratePlan(phases.PlanInput{
		Project:            project,
		Provider:           models.ParseDbProvider(req.DbProvider),
		Entities:           req.Entities,
		ValueObjectSources: sources,
	})

	return s.run(ctx, plan.Effects())
}

// renderValueObjects pre-renders every value object the plan may create.
// Planning is pure, so templates are rendered here.
func (s *WeaveServiceImpl) renderValueObjects(project layout.Project, entities []models.Entity) (map[string]string, error) {
	sources := make(map[string]string)
	if s.renderer == nil {
		return sources, nil
	}

	for _, vo := range phases.DistinctValueObjects(entities) {
		src, err := s.renderer.RenderValueObject(project, vo)
		if err != nil {
			return nil, fmt.Errorf("failed to render value object %s: %w", vo.Name, err)
		}
		sources[vo.Name] = src
	}
	return sources, nil
}
