package weave

import (
	"fmt"

	"github.com/example/loom/internal/core/anchor"
	"github.com/example/loom/internal/core/layout"
	"github.com/example/loom/internal/core/patch"
)

// ConsumerRegistration registers a consumer endpoint with the bus. The first
// pass adds the registration call and probes for the registrations namespace;
// the follow-up adds the using directive only when that probe came back empty.
func ConsumerRegistration(p layout.Project, endpointRegistrationMethod string) Recipe {
	r := busRegistration(p, ConsumersMarker, p.ConsumerRegistrationNamespace(),
		fmt.Sprintf("                    cfg.%s(context);", endpointRegistrationMethod))
	r.Name = "consumer-registration"
	r.CreateDir = true
	r.FollowUp.Name = "consumer-registration-using"
	return r
}

// ProducerRegistration registers a producer endpoint with the bus. Unlike
// consumers, the extension directory must already exist.
func ProducerRegistration(p layout.Project, endpointRegistrationMethod string) Recipe {
	r := busRegistration(p, ProducersMarker, p.ProducerRegistrationNamespace(),
		fmt.Sprintf("                    cfg.%s();", endpointRegistrationMethod))
	r.Name = "producer-registration"
	r.DirRequired = true
	r.FollowUp.Name = "producer-registration-using"
	return r
}

func busRegistration(p layout.Project, marker anchor.Marker, namespace, call string) Recipe {
	path := p.MassTransitExtensionFile()
	using := fmt.Sprintf("using %s;", namespace)

	return Recipe{
		Path:     path,
		Required: true,
		Pass: patch.Pass{
			Specs:  []patch.InsertionSpec{after(marker, call)},
			Probes: []string{using},
		},
		FollowUp: &Recipe{
			Path:     path,
			Required: true,
			Pass: patch.Pass{Specs: []patch.InsertionSpec{
				after(MassTransitUsing, using),
			}},
		},
		FollowUpUnless: using,
	}
}
