// Package cli contains adapters that translate CLI operations into service calls.
package cli

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/fatih/color"

	"github.com/example/loom/internal/ports/primary"
)

// WeaveAdapter is a thin adapter that translates CLI operations to WeaveService calls.
// It depends only on the WeaveService interface, enabling easy testing with mocks.
type WeaveAdapter struct {
	service primary.WeaveService
	out     io.Writer
}

// NewWeaveAdapter creates a new WeaveAdapter with the given service.
func NewWeaveAdapter(service primary.WeaveService, out io.Writer) *WeaveAdapter {
	return &WeaveAdapter{
		service: service,
		out:     out,
	}
}

// AddPermission weaves a permission constant and prints the outcome.
func (a *WeaveAdapter) AddPermission(ctx context.Context, project primary.ProjectRef, name string) (*primary.WeaveResponse, error) {
	resp, err := a.service.AddPermission(ctx, primary.AddPermissionRequest{Project: project, Name: name})
	return a.finish(resp, err, "add permission")
}

// AddConsumer registers a consumer endpoint and prints the outcome.
func (a *WeaveAdapter) AddConsumer(ctx context.Context, project primary.ProjectRef, method string) (*primary.WeaveResponse, error) {
	resp, err := a.service.AddConsumerRegistration(ctx, primary.RegistrationRequest{Project: project, EndpointRegistrationMethod: method})
	return a.finish(resp, err, "register consumer")
}

// AddProducer registers a producer endpoint and prints the outcome.
func (a *WeaveAdapter) AddProducer(ctx context.Context, project primary.ProjectRef, method string) (*primary.WeaveResponse, error) {
	resp, err := a.service.AddProducerRegistration(ctx, primary.RegistrationRequest{Project: project, EndpointRegistrationMethod: method})
	return a.finish(resp, err, "register producer")
}

// RegisterBus wires the bus into the web host and prints the outcome.
func (a *WeaveAdapter) RegisterBus(ctx context.Context, req primary.RegisterBusRequest) (*primary.WeaveResponse, error) {
	resp, err := a.service.RegisterBus(ctx, req)
	return a.finish(resp, err, "register bus")
}

// ScaffoldEntities runs the scaffolding phases and prints the outcome.
func (a *WeaveAdapter) ScaffoldEntities(ctx context.Context, req primary.ScaffoldEntitiesRequest) (*primary.WeaveResponse, error) {
	resp, err := a.service.ScaffoldEntities(ctx, req)
	return a.finish(resp, err, "scaffold entities")
}

// finish prints the response. After a hard error only the files handled
// before it are printed, then the error is returned.
func (a *WeaveAdapter) finish(resp *primary.WeaveResponse, err error, action string) (*primary.WeaveResponse, error) {
	if err != nil {
		if resp != nil && len(resp.Outcomes) > 0 {
			fmt.Fprintln(a.out, "Stopped after:")
			a.print(resp)
		}
		return resp, fmt.Errorf("failed to %s: %w", action, err)
	}
	a.print(resp)
	return resp, nil
}

func (a *WeaveAdapter) print(resp *primary.WeaveResponse) {
	if len(resp.Outcomes) == 0 {
		fmt.Fprintln(a.out, "Nothing to weave.")
		return
	}

	w := tabwriter.NewWriter(a.out, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "PHASE\tRECIPE\tOUTCOME\tPATH")
	fmt.Fprintln(w, "-----\t------\t-------\t----")
	for _, o := range resp.Outcomes {
		phase := o.Phase
		if phase == "" {
			phase = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", phase, o.Recipe, outcomeLabel(o.Outcome), o.Path)
	}
	w.Flush()

	fmt.Fprintf(a.out, "\n✓ %d file(s) changed (run %s)\n", resp.Changed(), resp.RunID)
}

func outcomeLabel(outcome string) string {
	switch outcome {
	case "modified", "created":
		return color.New(color.FgGreen).Sprint(outcome)
	case "skipped_idempotent", "exists":
		return color.New(color.FgBlue).Sprint(outcome)
	default:
		return color.New(color.FgYellow).Sprint(outcome)
	}
}
