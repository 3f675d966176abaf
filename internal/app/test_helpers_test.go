package app

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/example/loom/internal/adapters/filesystem"
	"github.com/example/loom/internal/core/effects"
	"github.com/example/loom/internal/core/layout"
	"github.com/example/loom/internal/models"
	"github.com/example/loom/internal/ports/secondary"
)

var testProject = layout.Project{SrcDirectory: filepath.Join("work", "src"), ProjectBaseName: "Demo"}

// Ensure mocks implement the interfaces
var (
	_ secondary.Console       = (*mockConsole)(nil)
	_ secondary.JournalWriter = (*mockJournal)(nil)
	_ EffectExecutor          = (*mockExecutor)(nil)
	_ ValueObjectRenderer     = (*stubRenderer)(nil)
)

// mockConsole records console messages for testing.
type mockConsole struct {
	infos    []string
	warnings []string
	success  []string
}

func (m *mockConsole) Info(message string)    { m.infos = append(m.infos, message) }
func (m *mockConsole) Warning(message string) { m.warnings = append(m.warnings, message) }
func (m *mockConsole) Success(message string) { m.success = append(m.success, message) }

// mockJournal records journal entries for testing.
type mockJournal struct {
	mu      sync.Mutex
	entries []secondary.JournalEntry
	err     error
}

func (m *mockJournal) Record(ctx context.Context, entry secondary.JournalEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.entries = append(m.entries, entry)
	return nil
}

// mockExecutor captures effects without running them.
type mockExecutor struct {
	effects []effects.Effect
	report  Report
	err     error
	ctx     context.Context
}

func (m *mockExecutor) Execute(ctx context.Context, effs []effects.Effect) (Report, error) {
	m.ctx = ctx
	m.effects = append(m.effects, effs...)
	return m.report, m.err
}

// stubRenderer renders a one-line class per value object.
type stubRenderer struct {
	err error
}

func (s *stubRenderer) RenderValueObject(project layout.Project, vo models.ValueObject) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return fmt.Sprintf("namespace %s;\n\npublic sealed class %s { }\n", project.ValueObjectNamespace(vo.Plural), vo.Name), nil
}

// newTestExecutor wires an executor over a fresh memory file system.
func newTestExecutor() (*DefaultEffectExecutor, *filesystem.MemoryFileSystem, *mockConsole, *mockJournal) {
	fs := filesystem.NewMemoryFileSystem()
	console := &mockConsole{}
	journal := &mockJournal{}
	return NewEffectExecutor(fs, console, journal, nil), fs, console, journal
}

const permissionsFile = `namespace Demo.Domain;

public static class Permissions
{
    // Permissions marker - do not delete this comment
}
`

const massTransitFile = `using MassTransit;
using Microsoft.Extensions.DependencyInjection;

public static class MassTransitServiceExtension
{
    public static void AddMassTransitServices(this IServiceCollection services)
    {
        services.AddMassTransit(mt =>
        {
            mt.UsingRabbitMq((context, cfg) =>
            {
                // Consumers -- Do Not Delete This Comment

                // Producers -- Do Not Delete This Comment
            });
        });
    }
}
`

const entityFile = `namespace Demo.Domain.%[2]s;

public class %[1]s : BaseEntity
{
    // Add Props Marker -- Deleting this comment will cause the add props utility to be incomplete

    // Add Prop Methods Marker -- Deleting this comment will cause the add props utility to be incomplete
}
`

const configurationFile = `using Demo.Domain;
using Microsoft.EntityFrameworkCore;

public sealed class %[1]sConfiguration : IEntityTypeConfiguration<%[1]s>
{
    public void Configure(EntityTypeBuilder<%[1]s> builder)
    {
        // Relationship Marker -- Deleting or modifying this comment could cause incomplete relationship scaffolding

        // Property Marker -- Deleting or modifying this comment could cause incomplete relationship scaffolding
    }
}
`

const mapperFile = `[Mapper]
public static partial class %[1]sMapper
{
    public static partial %[1]sDto To%[1]sDto(this %[1]s %[2]s);
    public static partial IQueryable<%[1]sDto> To%[1]sDtoQueryable(this IQueryable<%[1]s> queryable);
}
`

func seedEntity(fs *filesystem.MemoryFileSystem, name, plural string) {
	fs.Seed(testProject.EntityFile(name, plural), fmt.Sprintf(entityFile, name, plural))
}

func seedConfiguration(fs *filesystem.MemoryFileSystem, name string) {
	fs.Seed(testProject.EntityConfigurationFile(name), fmt.Sprintf(configurationFile, name))
}
