package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/example/loom/internal/core/effects"
	"github.com/example/loom/internal/core/layout"
	"github.com/example/loom/internal/core/weave"
	"github.com/example/loom/internal/ctxutil"
	"github.com/example/loom/internal/ports/primary"
)

// ErrInvalidProject is returned when a request does not locate a project.
var ErrInvalidProject = errors.New("project source directory and base name are required")

// WeaveServiceImpl implements the WeaveService interface.
type WeaveServiceImpl struct {
	executor EffectExecutor
	renderer ValueObjectRenderer
	newRunID func() string
}

// NewWeaveService creates a new WeaveService with injected dependencies.
func NewWeaveService(executor EffectExecutor, renderer ValueObjectRenderer) *WeaveServiceImpl {
	return &WeaveServiceImpl{
		executor: executor,
		renderer: renderer,
		newRunID: ctxutil.NewRunID,
	}
}

// AddPermission adds a permission constant. A blank name does nothing.
func (s *WeaveServiceImpl) AddPermission(ctx context.Context, req primary.AddPermissionRequest) (*primary.WeaveResponse, error) {
	project, err := projectFrom(req.Project)
	if err != nil {
		return nil, err
	}

	r, ok := weave.Permission(project, req.Name)
	if !ok {
		return &primary.WeaveResponse{}, nil
	}
	return s.run(ctx, []effects.Effect{effects.WeaveEffect{Recipe: r}})
}

// AddConsumerRegistration registers a consumer endpoint, adding its using
// directive in a second pass when the first pass did not find it.
func (s *WeaveServiceImpl) AddConsumerRegistration(ctx context.Context, req primary.RegistrationRequest) (*primary.WeaveResponse, error) {
	project, err := projectFrom(req.Project)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(req.EndpointRegistrationMethod) == "" {
		return nil, fmt.Errorf("endpoint registration method is required")
	}

	r := weave.ConsumerRegistration(project, req.EndpointRegistrationMethod)
	return s.run(ctx, []effects.Effect{effects.WeaveEffect{Recipe: r}})
}

// AddProducerRegistration registers a producer endpoint.
func (s *WeaveServiceImpl) AddProducerRegistration(ctx context.Context, req primary.RegistrationRequest) (*primary.WeaveResponse, error) {
	project, err := projectFrom(req.Project)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(req.EndpointRegistrationMethod) == "" {
		return nil, fmt.Errorf("endpoint registration method is required")
	}

	r := weave.ProducerRegistration(project, req.EndpointRegistrationMethod)
	return s.run(ctx, []effects.Effect{effects.WeaveEffect{Recipe: r}})
}

// RegisterBus registers the bus services with the web host and writes the
// broker settings into every launch profile.
func (s *WeaveServiceImpl) RegisterBus(ctx context.Context, req primary.RegisterBusRequest) (*primary.WeaveResponse, error) {
	project, err := projectFrom(req.Project)
	if err != nil {
		return nil, err
	}

	values := map[string]string{
		"RMQ_HOST":         req.Host,
		"RMQ_VIRTUAL_HOST": req.VirtualHost,
		"RMQ_USERNAME":     req.Username,
		"RMQ_PASSWORD":     req.Password,
	}

	effs := []effects.Effect{effects.WeaveEffect{Recipe: weave.MassTransitServices(project)}}
	for _, name := range weave.BrokerEnvVars {
		effs = append(effs, effects.WeaveEffect{Recipe: weave.LaunchSetting(project, name, values[name])})
	}
	return s.run(ctx, effs)
}

// run executes effs under a fresh run ID. The response is returned alongside
// a hard error so callers can show what was committed before it.
func (s *WeaveServiceImpl) run(ctx context.Context, effs []effects.Effect) (*primary.WeaveResponse, error) {
	runID := s.newRunID()
	ctx = ctxutil.WithRunID(ctx, runID)

	rep, err := s.executor.Execute(ctx, effs)
	resp := &primary.WeaveResponse{RunID: runID, Outcomes: rep.Outcomes}
	if err != nil {
		return resp, err
	}
	return resp, nil
}

func projectFrom(ref primary.ProjectRef) (layout.Project, error) {
	if strings.TrimSpace(ref.SrcDirectory) == "" || strings.TrimSpace(ref.ProjectBaseName) == "" {
		return layout.Project{}, ErrInvalidProject
	}
	return layout.Project{SrcDirectory: ref.SrcDirectory, ProjectBaseName: ref.ProjectBaseName}, nil
}

// Ensure WeaveServiceImpl implements the interface
var _ primary.WeaveService = (*WeaveServiceImpl)(nil)
