// Package weave is the catalog of weaving recipes: which file to open, which
// markers to look for and what text to add. Recipes are pure data built from
// the project layout and the entity model; executing them is the app layer's job.
package weave

import (
	"fmt"
	"strings"

	"github.com/example/loom/internal/core/anchor"
	"github.com/example/loom/internal/core/patch"
)

// Level is the console severity of a notice.
type Level string

const (
	LevelInfo    Level = "info"
	LevelWarning Level = "warning"
)

// Notice is an operator-facing message attached to a recipe.
type Notice struct {
	Level   Level
	Message string
}

// Recipe is one named weaving pass bound to a target file.
type Recipe struct {
	Name string
	Path string

	// Required makes a missing target file a hard error.
	Required bool
	// CreateDir allows creating the target's parent directory.
	CreateDir bool
	// DirRequired makes a missing parent directory a hard error.
	DirRequired bool

	Pass patch.Pass

	// Notices are emitted before the pass runs.
	Notices []Notice
	// NotFound replaces the default message when no anchor matched.
	NotFound *Notice

	// FollowUp runs after this recipe unless FollowUpUnless was probed.
	FollowUp       *Recipe
	FollowUpUnless string
}

// NeedsFollowUp reports whether the follow-up recipe must run given the
// result of this recipe's scan.
func (r Recipe) NeedsFollowUp(res patch.Result) bool {
	if r.FollowUp == nil {
		return false
	}
	if r.FollowUpUnless == "" {
		return true
	}
	return !res.Found(r.FollowUpUnless)
}

// NotFoundNotice returns the message for a scan that matched no anchor.
func (r Recipe) NotFoundNotice() Notice {
	if r.NotFound != nil {
		return *r.NotFound
	}
	markers := make([]string, 0, len(r.Pass.Specs))
	for _, s := range r.Pass.Specs {
		if s.Matcher != nil {
			markers = append(markers, s.Matcher.String())
		}
	}
	return Notice{
		Level:   LevelWarning,
		Message: fmt.Sprintf("Could not find `%s` in `%s`; nothing was added.", strings.Join(markers, "`, `"), r.Path),
	}
}

// MissedMarkers lists the markers of specs that matched no anchor line.
func (r Recipe) MissedMarkers(res patch.Result) []string {
	var missed []string
	for i, s := range res.Specs {
		if s.Outcome != patch.ExtensionPointNotFound || i >= len(r.Pass.Specs) {
			continue
		}
		if m := r.Pass.Specs[i].Matcher; m != nil {
			missed = append(missed, m.String())
		}
	}
	return missed
}

// MissNotices returns a warning for every marker the pass could not find.
// A pass that found nothing gets the recipe's NotFoundNotice. A pass that
// applied some specs gets one warning per missed marker.
func (r Recipe) MissNotices(res patch.Result) []Notice {
	if res.Outcome == patch.ExtensionPointNotFound {
		return []Notice{r.NotFoundNotice()}
	}
	var notices []Notice
	for _, m := range r.MissedMarkers(res) {
		notices = append(notices, Notice{
			Level:   LevelWarning,
			Message: fmt.Sprintf("Could not find `%s` in `%s`; that part was not added.", m, r.Path),
		})
	}
	return notices
}

// Validate checks that every spec carries an idempotency signature.
func (r Recipe) Validate() error {
	for i, s := range r.Pass.Specs {
		if s.Signature == "" {
			return fmt.Errorf("recipe %s: spec %d has no idempotency signature", r.Name, i)
		}
		if s.Matcher == nil {
			return fmt.Errorf("recipe %s: spec %d has no marker", r.Name, i)
		}
	}
	if r.FollowUp != nil {
		return r.FollowUp.Validate()
	}
	return nil
}

// after builds an append-after, first-occurrence spec signed by its own text.
func after(m anchor.Matcher, text string) patch.InsertionSpec {
	return patch.InsertionSpec{
		Matcher:   m,
		Text:      text,
		Signature: signatureOf(text),
	}
}

// signatureOf is the first non-blank line of text, trimmed.
func signatureOf(text string) string {
	for _, line := range strings.Split(text, "\n") {
		if s := strings.TrimSpace(line); s != "" {
			return s
		}
	}
	return ""
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
