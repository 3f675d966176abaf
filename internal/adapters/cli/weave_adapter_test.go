package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/fatih/color"

	"github.com/example/loom/internal/ports/primary"
)

func init() {
	color.NoColor = true
}

// mockWeaveService implements primary.WeaveService for testing.
type mockWeaveService struct {
	addPermissionFn    func(ctx context.Context, req primary.AddPermissionRequest) (*primary.WeaveResponse, error)
	addConsumerFn      func(ctx context.Context, req primary.RegistrationRequest) (*primary.WeaveResponse, error)
	addProducerFn      func(ctx context.Context, req primary.RegistrationRequest) (*primary.WeaveResponse, error)
	registerBusFn      func(ctx context.Context, req primary.RegisterBusRequest) (*primary.WeaveResponse, error)
	scaffoldEntitiesFn func(ctx context.Context, req primary.ScaffoldEntitiesRequest) (*primary.WeaveResponse, error)
}

func (m *mockWeaveService) AddPermission(ctx context.Context, req primary.AddPermissionRequest) (*primary.WeaveResponse, error) {
	if m.addPermissionFn != nil {
		return m.addPermissionFn(ctx, req)
	}
	return &primary.WeaveResponse{}, nil
}

func (m *mockWeaveService) AddConsumerRegistration(ctx context.Context, req primary.RegistrationRequest) (*primary.WeaveResponse, error) {
	if m.addConsumerFn != nil {
		return m.addConsumerFn(ctx, req)
	}
	return &primary.WeaveResponse{}, nil
}

func (m *mockWeaveService) AddProducerRegistration(ctx context.Context, req primary.RegistrationRequest) (*primary.WeaveResponse, error) {
	if m.addProducerFn != nil {
		return m.addProducerFn(ctx, req)
	}
	return &primary.WeaveResponse{}, nil
}

func (m *mockWeaveService) RegisterBus(ctx context.Context, req primary.RegisterBusRequest) (*primary.WeaveResponse, error) {
	if m.registerBusFn != nil {
		return m.registerBusFn(ctx, req)
	}
	return &primary.WeaveResponse{}, nil
}

func (m *mockWeaveService) ScaffoldEntities(ctx context.Context, req primary.ScaffoldEntitiesRequest) (*primary.WeaveResponse, error) {
	if m.scaffoldEntitiesFn != nil {
		return m.scaffoldEntitiesFn(ctx, req)
	}
	return &primary.WeaveResponse{}, nil
}

var project = primary.ProjectRef{SrcDirectory: "/tmp/src", ProjectBaseName: "Demo"}

func TestWeaveAdapter_AddPermission(t *testing.T) {
	var got primary.AddPermissionRequest
	mock := &mockWeaveService{
		addPermissionFn: func(ctx context.Context, req primary.AddPermissionRequest) (*primary.WeaveResponse, error) {
			got = req
			return &primary.WeaveResponse{
				RunID: "run-1",
				Outcomes: []primary.FileOutcome{
					{Recipe: "permission", Path: "/tmp/src/Demo/Domain/Permissions.cs", Outcome: "modified"},
				},
			}, nil
		},
	}

	var buf bytes.Buffer
	adapter := NewWeaveAdapter(mock, &buf)

	resp, err := adapter.AddPermission(context.Background(), project, "CanReadRecipes")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Changed() != 1 {
		t.Errorf("Changed() = %d, want 1", resp.Changed())
	}
	if got.Name != "CanReadRecipes" {
		t.Errorf("Name = %q, want %q", got.Name, "CanReadRecipes")
	}

	output := buf.String()
	if !strings.Contains(output, "PHASE") {
		t.Errorf("expected table header, got: %s", output)
	}
	if !strings.Contains(output, "Permissions.cs") {
		t.Errorf("expected path in output, got: %s", output)
	}
	if !strings.Contains(output, "✓ 1 file(s) changed (run run-1)") {
		t.Errorf("expected summary line, got: %s", output)
	}
}

func TestWeaveAdapter_AddConsumer_PhaseDash(t *testing.T) {
	mock := &mockWeaveService{
		addConsumerFn: func(ctx context.Context, req primary.RegistrationRequest) (*primary.WeaveResponse, error) {
			if req.EndpointRegistrationMethod != "RecipeAddedEndpoint" {
				t.Errorf("method = %q, want %q", req.EndpointRegistrationMethod, "RecipeAddedEndpoint")
			}
			return &primary.WeaveResponse{
				RunID: "run-2",
				Outcomes: []primary.FileOutcome{
					{Recipe: "consumer-registration", Path: "MassTransitServiceExtension.cs", Outcome: "skipped_idempotent"},
				},
			}, nil
		},
	}

	var buf bytes.Buffer
	adapter := NewWeaveAdapter(mock, &buf)

	if _, err := adapter.AddConsumer(context.Background(), project, "RecipeAddedEndpoint"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	output := buf.String()
	if !strings.Contains(output, "-   ") {
		t.Errorf("expected dash for empty phase, got: %s", output)
	}
	if !strings.Contains(output, "skipped_idempotent") {
		t.Errorf("expected outcome in output, got: %s", output)
	}
	if !strings.Contains(output, "✓ 0 file(s) changed") {
		t.Errorf("expected zero changed, got: %s", output)
	}
}

func TestWeaveAdapter_Empty(t *testing.T) {
	var buf bytes.Buffer
	adapter := NewWeaveAdapter(&mockWeaveService{}, &buf)

	if _, err := adapter.ScaffoldEntities(context.Background(), primary.ScaffoldEntitiesRequest{Project: project}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(buf.String(), "Nothing to weave.") {
		t.Errorf("expected empty message, got: %s", buf.String())
	}
}

func TestWeaveAdapter_Error(t *testing.T) {
	mock := &mockWeaveService{
		addProducerFn: func(ctx context.Context, req primary.RegistrationRequest) (*primary.WeaveResponse, error) {
			return nil, errors.New("directory missing")
		},
	}

	var buf bytes.Buffer
	adapter := NewWeaveAdapter(mock, &buf)

	_, err := adapter.AddProducer(context.Background(), project, "RecipeProducerEndpoint")
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "failed to register producer") {
		t.Errorf("error = %q, want wrapped message", err.Error())
	}
	if buf.Len() != 0 {
		t.Errorf("expected no output on error, got: %s", buf.String())
	}
}

func TestWeaveAdapter_ErrorAfterPartialRun(t *testing.T) {
	mock := &mockWeaveService{
		scaffoldEntitiesFn: func(ctx context.Context, req primary.ScaffoldEntitiesRequest) (*primary.WeaveResponse, error) {
			return &primary.WeaveResponse{
				RunID: "run-3",
				Outcomes: []primary.FileOutcome{
					{Phase: "permissions", Recipe: "permission", Path: "Permissions.cs", Outcome: "modified"},
					{Phase: "relationships", Recipe: "entity-property", Path: "Author.cs", Outcome: "missing"},
				},
			}, errors.New("required file Author.cs is missing")
		},
	}

	var buf bytes.Buffer
	adapter := NewWeaveAdapter(mock, &buf)

	resp, err := adapter.ScaffoldEntities(context.Background(), primary.ScaffoldEntitiesRequest{Project: project})
	if err == nil {
		t.Fatal("expected error")
	}
	if resp == nil || len(resp.Outcomes) != 2 {
		t.Fatalf("expected partial response, got %+v", resp)
	}

	output := buf.String()
	if !strings.Contains(output, "Stopped after:") || !strings.Contains(output, "Permissions.cs") {
		t.Errorf("expected partial table, got: %s", output)
	}
	if !strings.Contains(output, "✓ 1 file(s) changed (run run-3)") {
		t.Errorf("expected summary of committed files, got: %s", output)
	}
}

func TestConsoleWriter(t *testing.T) {
	var buf bytes.Buffer
	console := NewConsoleWriter(&buf)

	console.Info("The `X` file could not be found.")
	console.Warning("Could not find marker")
	console.Success("Created Email.cs")

	want := "info The `X` file could not be found.\nwarn Could not find marker\n✓ Created Email.cs\n"
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
}
