package weave

import (
	"fmt"
	"strings"

	"github.com/example/loom/internal/core/layout"
	"github.com/example/loom/internal/core/patch"
)

// Permission builds the recipe adding a permission constant.
// A blank name yields no recipe.
func Permission(p layout.Project, name string) (Recipe, bool) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Recipe{}, false
	}

	return Recipe{
		Name:     "permission",
		Path:     p.PermissionsFile(),
		Required: true,
		Pass: patch.Pass{Specs: []patch.InsertionSpec{{
			Matcher:   PermissionsMarker,
			Text:      fmt.Sprintf("    public const string %s = nameof(%s);", name, name),
			Signature: fmt.Sprintf("const string %s =", name),
		}}},
	}, true
}
