// Package primary defines the primary ports (driving adapters) for the application.
package primary

import (
	"context"

	"github.com/example/loom/internal/models"
)

// WeaveService defines the primary port for weaving into generated files.
type WeaveService interface {
	// AddPermission adds a permission constant to the permissions file.
	AddPermission(ctx context.Context, req AddPermissionRequest) (*WeaveResponse, error)

	// AddConsumerRegistration registers a consumer endpoint with the bus.
	AddConsumerRegistration(ctx context.Context, req RegistrationRequest) (*WeaveResponse, error)

	// AddProducerRegistration registers a producer endpoint with the bus.
	AddProducerRegistration(ctx context.Context, req RegistrationRequest) (*WeaveResponse, error)

	// RegisterBus wires bus services into the web host and its launch settings.
	RegisterBus(ctx context.Context, req RegisterBusRequest) (*WeaveResponse, error)

	// ScaffoldEntities runs every scaffolding phase over an entity set.
	ScaffoldEntities(ctx context.Context, req ScaffoldEntitiesRequest) (*WeaveResponse, error)
}

// ProjectRef locates the scaffolded project being woven into.
type ProjectRef struct {
	SrcDirectory    string
	ProjectBaseName string
}

// AddPermissionRequest contains parameters for adding a permission.
type AddPermissionRequest struct {
	Project ProjectRef
	Name    string
}

// RegistrationRequest contains parameters for a bus endpoint registration.
type RegistrationRequest struct {
	Project                    ProjectRef
	EndpointRegistrationMethod string
}

// RegisterBusRequest contains broker settings for bus registration.
type RegisterBusRequest struct {
	Project     ProjectRef
	Host        string
	VirtualHost string
	Username    string
	Password    string
}

// ScaffoldEntitiesRequest contains the entity set to weave.
type ScaffoldEntitiesRequest struct {
	Project    ProjectRef
	DbProvider string
	Entities   []models.Entity
}

// WeaveResponse summarizes what a run did.
type WeaveResponse struct {
	RunID    string
	Outcomes []FileOutcome
}

// FileOutcome is the result of one recipe or file effect.
type FileOutcome struct {
	Phase   string
	Recipe  string
	Path    string
	Outcome string
}

// Changed counts outcomes that wrote to disk.
func (r *WeaveResponse) Changed() int {
	n := 0
	for _, o := range r.Outcomes {
		if o.Outcome == "modified" || o.Outcome == "created" {
			n++
		}
	}
	return n
}
