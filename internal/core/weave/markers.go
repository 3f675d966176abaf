package weave

import "github.com/example/loom/internal/core/anchor"

// Sentinel markers generated files carry. These strings are a persisted
// contract with every project scaffolded so far: never change them.
const (
	PermissionsMarker    anchor.Marker = "Permissions marker"
	RelationshipMarker   anchor.Marker = "Relationship Marker --"
	PropertyMarker       anchor.Marker = "Property Marker --"
	EntityPropsMarker    anchor.Marker = "Add Props Marker --"
	EntityMethodsMarker  anchor.Marker = "Add Prop Methods Marker --"
	ConsumersMarker      anchor.Marker = "// Consumers -- Do Not Delete This Comment"
	ProducersMarker      anchor.Marker = "// Producers -- Do Not Delete This Comment"
	MassTransitUsing     anchor.Marker = "using MassTransit;"
	UsingDirective       anchor.Marker = "using "
	InfrastructureMarker anchor.Marker = "builder.Services.AddInfrastructure"
)
