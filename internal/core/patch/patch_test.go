package patch

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/loom/internal/core/anchor"
	"github.com/example/loom/internal/core/document"
)

const permissionsFile = `namespace Demo.Domain;

public static class Permissions
{
    // Permissions marker - do not delete this comment
    public const string CanReadWidgets = nameof(CanReadWidgets);
}
`

func permissionSpec(name string) InsertionSpec {
	return InsertionSpec{
		Matcher:   anchor.Marker("Permissions marker"),
		Text:      "    public const string " + name + " = nameof(" + name + ");",
		Signature: "const string " + name + " =",
	}
}

func TestApply_InsertsAfterMarker(t *testing.T) {
	doc := document.Parse("Permissions.cs", []byte(permissionsFile))

	res := Apply(doc, permissionSpec("CanDoThing"))

	require.Equal(t, Modified, res.Outcome)
	want := strings.Replace(permissionsFile,
		"    // Permissions marker - do not delete this comment\n",
		"    // Permissions marker - do not delete this comment\n    public const string CanDoThing = nameof(CanDoThing);\n", 1)
	assert.Equal(t, want, res.Document.Text())
}

func TestApply_Idempotent(t *testing.T) {
	doc := document.Parse("Permissions.cs", []byte(permissionsFile))
	spec := permissionSpec("CanDoThing")

	once := Apply(doc, spec)
	require.True(t, once.Changed())

	twice := Apply(once.Document, spec)
	assert.Equal(t, SkippedIdempotent, twice.Outcome)
	assert.False(t, twice.Changed())
	assert.Equal(t, once.Document.Text(), twice.Document.Text())
}

func TestApply_SignatureAlreadyPresent(t *testing.T) {
	doc := document.Parse("Permissions.cs", []byte(permissionsFile))

	res := Apply(doc, permissionSpec("CanReadWidgets"))

	assert.Equal(t, SkippedIdempotent, res.Outcome)
	assert.Same(t, doc, res.Document)
}

func TestApply_ExtensionPointNotFound(t *testing.T) {
	content := "namespace Demo;\npublic class Custom {}\n"
	doc := document.Parse("Custom.cs", []byte(content))

	res := Apply(doc, permissionSpec("CanDoThing"))

	assert.Equal(t, ExtensionPointNotFound, res.Outcome)
	assert.False(t, res.Changed())
	assert.Equal(t, content, res.Document.Text())
}

func TestApply_OccurrenceAndPosition(t *testing.T) {
	content := "using A;\nusing B;\nclass X\n{\n    ToWidgetDto(\n    ToWidgetDtoQueryable(\n}\n"

	tests := []struct {
		name string
		spec InsertionSpec
		want []string
	}{
		{
			name: "first occurrence after",
			spec: InsertionSpec{Matcher: anchor.Marker("using "), Text: "using C;"},
			want: []string{"using A;", "using C;", "using B;", "class X", "{", "    ToWidgetDto(", "    ToWidgetDtoQueryable(", "}"},
		},
		{
			name: "every occurrence before",
			spec: InsertionSpec{
				Matcher:    anchor.AnyOf("ToWidgetDto(", "ToWidgetDtoQueryable("),
				Text:       "    [Attr]",
				Position:   Before,
				Occurrence: Every,
			},
			want: []string{"using A;", "using B;", "class X", "{", "    [Attr]", "    ToWidgetDto(", "    [Attr]", "    ToWidgetDtoQueryable(", "}"},
		},
		{
			name: "every occurrence after",
			spec: InsertionSpec{Matcher: anchor.Marker("using "), Text: "// seen", Occurrence: Every},
			want: []string{"using A;", "// seen", "using B;", "// seen", "class X", "{", "    ToWidgetDto(", "    ToWidgetDtoQueryable(", "}"},
		},
		{
			name: "replace",
			spec: InsertionSpec{Matcher: anchor.Marker("class X"), Text: "class Y", Position: Replace},
			want: []string{"using A;", "using B;", "class Y", "{", "    ToWidgetDto(", "    ToWidgetDtoQueryable(", "}"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := document.Parse("X.cs", []byte(content))
			res := Apply(doc, tt.spec)
			require.Equal(t, Modified, res.Outcome)
			if diff := cmp.Diff(tt.want, res.Document.Lines); diff != "" {
				t.Errorf("Lines mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestApply_PreservesOriginalOrder(t *testing.T) {
	content := "a\n// marker\nb\n// marker\nc\n\nd\n"
	doc := document.Parse("f.txt", []byte(content))

	for _, spec := range []InsertionSpec{
		{Matcher: anchor.Marker("marker"), Text: "x"},
		{Matcher: anchor.Marker("marker"), Text: "x\ny", Occurrence: Every},
		{Matcher: anchor.Marker("marker"), Text: "x", Position: Before, Occurrence: Every},
	} {
		res := Apply(doc, spec)
		if !isSubsequence(doc.Lines, res.Document.Lines) {
			t.Errorf("original lines are not a subsequence of output %q", res.Document.Lines)
		}
	}
}

func TestRun_TwoIndependentSpecsOneScan(t *testing.T) {
	content := "using System;\nusing Microsoft.EntityFrameworkCore;\n\npublic sealed class WidgetConfiguration\n{\n    // Property Marker -- Deleting or modifying this comment could cause incomplete value object scaffolding\n}\n"
	doc := document.Parse("WidgetConfiguration.cs", []byte(content))

	pass := Pass{Specs: []InsertionSpec{
		{Matcher: anchor.Marker("Property Marker --"), Text: "        builder.OwnsOne(x => x.Price);", Signature: "builder.OwnsOne(x => x.Price)"},
		{Matcher: anchor.Marker("using "), Text: "using Demo.Domain.MonetaryAmounts;", Signature: "using Demo.Domain.MonetaryAmounts;"},
	}}

	res := Run(doc, pass)

	require.Equal(t, Modified, res.Outcome)
	require.Len(t, res.Specs, 2)
	assert.Equal(t, 1, res.Specs[0].Insertions)
	assert.Equal(t, 1, res.Specs[1].Insertions)
	assert.Equal(t, "using Demo.Domain.MonetaryAmounts;", res.Document.Lines[1])
	assert.Equal(t, 1, strings.Count(res.Document.Text(), "using Demo.Domain.MonetaryAmounts;"))

	again := Run(res.Document, pass)
	assert.Equal(t, SkippedIdempotent, again.Outcome)
}

func TestRun_MixedOutcomes(t *testing.T) {
	doc := document.Parse("f.cs", []byte("using A;\nbody\n"))

	pass := Pass{Specs: []InsertionSpec{
		{Matcher: anchor.Marker("using "), Text: "using A;", Signature: "using A;"},
		{Matcher: anchor.Marker("missing marker"), Text: "x"},
	}}

	res := Run(doc, pass)

	assert.Equal(t, ExtensionPointNotFound, res.Outcome)
	assert.Equal(t, SkippedIdempotent, res.Specs[0].Outcome)
	assert.Equal(t, ExtensionPointNotFound, res.Specs[1].Outcome)
}

func TestRun_Probes(t *testing.T) {
	content := "using MassTransit;\n// Consumers -- Do Not Delete This Comment\n"
	doc := document.Parse("MassTransitServiceExtension.cs", []byte(content))

	pass := Pass{
		Specs:  []InsertionSpec{{Matcher: anchor.Marker("// Consumers -- Do Not Delete This Comment"), Text: "cfg.AddWidgetConsumer(context);"}},
		Probes: []string{"using Demo.Consumers;", "using MassTransit;"},
	}

	res := Run(doc, pass)

	assert.False(t, res.Found("using Demo.Consumers;"))
	assert.True(t, res.Found("using MassTransit;"))
}

func TestRun_CRLFInsertions(t *testing.T) {
	doc := document.Parse("f.cs", []byte("a\r\n// marker\r\nb\r\n"))

	res := Apply(doc, InsertionSpec{Matcher: anchor.Marker("// marker"), Text: "x"})

	assert.Equal(t, "a\r\n// marker\r\nx\r\nb\r\n", res.Document.Text())
}

func TestRun_CRLFWithoutFinalNewline(t *testing.T) {
	tests := []struct {
		name  string
		input string
		spec  InsertionSpec
		want  string
	}{
		{
			name:  "after the last line",
			input: "a\r\n// Permissions marker",
			spec:  InsertionSpec{Matcher: anchor.Marker("Permissions marker"), Text: "X"},
			want:  "a\r\n// Permissions marker\r\nX",
		},
		{
			name:  "replacing the last line",
			input: "a\r\n\"RMQ_HOST\": \"\"",
			spec:  InsertionSpec{Matcher: anchor.Marker(`"RMQ_HOST"`), Text: `"RMQ_HOST": "localhost",`, Position: Replace},
			want:  "a\r\n\"RMQ_HOST\": \"localhost\",",
		},
		{
			name:  "before the last line",
			input: "a\r\n// marker",
			spec:  InsertionSpec{Matcher: anchor.Marker("// marker"), Text: "X", Position: Before},
			want:  "a\r\nX\r\n// marker",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Apply(document.Parse("f.cs", []byte(tt.input)), tt.spec)

			require.Equal(t, Modified, res.Outcome)
			assert.Equal(t, tt.want, res.Document.Text())
		})
	}
}

func TestRun_PerLineSignature(t *testing.T) {
	input := "\"RMQ_HOST\": \"localhost\",\n\"RMQ_HOST\": \"stale\",\n"
	spec := InsertionSpec{
		Matcher:    anchor.Marker(`"RMQ_HOST"`),
		Text:       `"RMQ_HOST": "localhost",`,
		Position:   Replace,
		Occurrence: Every,
		Signature:  `"RMQ_HOST": "localhost",`,
		PerLine:    true,
	}

	res := Apply(document.Parse("launchSettings.json", []byte(input)), spec)

	require.Equal(t, Modified, res.Outcome)
	assert.Equal(t, SpecResult{Outcome: Modified, Insertions: 1, Signed: 1}, res.Specs[0])
	assert.Equal(t, "\"RMQ_HOST\": \"localhost\",\n\"RMQ_HOST\": \"localhost\",\n", res.Document.Text())

	again := Apply(res.Document, spec)
	assert.Equal(t, SkippedIdempotent, again.Outcome)
	assert.Equal(t, 2, again.Specs[0].Signed)
}

func TestOutcomeString(t *testing.T) {
	assert.Equal(t, "modified", Modified.String())
	assert.Equal(t, "skipped_idempotent", SkippedIdempotent.String())
	assert.Equal(t, "extension_point_not_found", ExtensionPointNotFound.String())
}

func isSubsequence(sub, full []string) bool {
	j := 0
	for _, line := range full {
		if j < len(sub) && sub[j] == line {
			j++
		}
	}
	return j == len(sub)
}
