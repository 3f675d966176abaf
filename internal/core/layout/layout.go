// Package layout resolves where generated files live in a scaffolded project
// and which namespaces they declare. Pure path arithmetic, no I/O.
package layout

import "path/filepath"

// Project identifies a scaffolded source tree.
type Project struct {
	SrcDirectory    string // e.g. /work/Demo/src
	ProjectBaseName string // e.g. Demo
}

// Root returns the project's own directory under the source tree.
func (p Project) Root() string {
	return filepath.Join(p.SrcDirectory, p.ProjectBaseName)
}

// PermissionsFile is the file holding permission constants.
func (p Project) PermissionsFile() string {
	return filepath.Join(p.Root(), "Domain", "Permissions.cs")
}

// EntityConfigurationFile is the database configuration for an entity.
func (p Project) EntityConfigurationFile(entity string) string {
	return filepath.Join(p.Root(), "Databases", "EntityConfigurations", entity+"Configuration.cs")
}

// EntityFile is the domain entity class.
func (p Project) EntityFile(entity, plural string) string {
	return filepath.Join(p.Root(), "Domain", plural, entity+".cs")
}

// EntityMapperFile is the mapper class for an entity.
func (p Project) EntityMapperFile(entity, plural string) string {
	return filepath.Join(p.Root(), "Domain", plural, "Mappings", entity+"Mapper.cs")
}

// ValueObjectFile is the class file of a value object.
func (p Project) ValueObjectFile(name, plural string) string {
	return filepath.Join(p.Root(), "Domain", plural, name+".cs")
}

// ValueObjectNamespace is the namespace a value object is declared in.
func (p Project) ValueObjectNamespace(plural string) string {
	return p.ProjectBaseName + ".Domain." + plural
}

// MassTransitExtensionFile is the bus service registration extension.
func (p Project) MassTransitExtensionFile() string {
	return filepath.Join(p.Root(), "Extensions", "Services", "MassTransitServiceExtension.cs")
}

// ConsumerRegistrationNamespace is where consumer registrations live.
func (p Project) ConsumerRegistrationNamespace() string {
	return p.ProjectBaseName + ".Extensions.Services.ConsumerRegistrations"
}

// ProducerRegistrationNamespace is where producer registrations live.
func (p Project) ProducerRegistrationNamespace() string {
	return p.ProjectBaseName + ".Extensions.Services.ProducerRegistrations"
}

// ProgramFile is the web host entry point.
func (p Project) ProgramFile() string {
	return filepath.Join(p.Root(), "Program.cs")
}

// LaunchSettingsFile is the web host launch profile file.
func (p Project) LaunchSettingsFile() string {
	return filepath.Join(p.Root(), "Properties", "launchSettings.json")
}
