package weave

import (
	"fmt"

	"github.com/example/loom/internal/core/anchor"
	"github.com/example/loom/internal/core/layout"
	"github.com/example/loom/internal/core/patch"
)

// Broker environment variables written to launch settings when a bus is added.
var BrokerEnvVars = []string{"RMQ_HOST", "RMQ_VIRTUAL_HOST", "RMQ_USERNAME", "RMQ_PASSWORD"}

// MassTransitServices registers the bus services in the web host entry point.
func MassTransitServices(p layout.Project) Recipe {
	return Recipe{
		Name:        "mass-transit-services",
		Path:        p.ProgramFile(),
		Required:    true,
		DirRequired: true,
		Pass: patch.Pass{Specs: []patch.InsertionSpec{
			after(InfrastructureMarker, "        builder.Services.AddMassTransitServices(builder.Environment, builder.Configuration);"),
		}},
	}
}

// LaunchSetting sets an environment variable in every launch profile by
// replacing each line that names it. Profiles already holding the value are
// left alone.
func LaunchSetting(p layout.Project, name, value string) Recipe {
	text := fmt.Sprintf(`        "%s": "%s",`, name, value)

	return Recipe{
		Name:      "launch-setting",
		Path:      p.LaunchSettingsFile(),
		Required:  true,
		CreateDir: true,
		Pass: patch.Pass{Specs: []patch.InsertionSpec{{
			Matcher:    anchor.Marker(fmt.Sprintf(`"%s"`, name)),
			Text:       text,
			Position:   patch.Replace,
			Occurrence: patch.Every,
			Signature:  signatureOf(text),
			PerLine:    true,
		}}},
	}
}
