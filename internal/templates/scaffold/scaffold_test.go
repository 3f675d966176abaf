package scaffold

import (
	"strings"
	"testing"
)

func TestGetValueObjectTemplate(t *testing.T) {
	for _, kind := range []string{"simple", "email", "percent", "monetaryamount"} {
		t.Run(kind, func(t *testing.T) {
			content, err := GetValueObjectTemplate(kind)
			if err != nil {
				t.Fatalf("GetValueObjectTemplate(%q) error = %v", kind, err)
			}
			if !strings.HasPrefix(content, "namespace {{.Namespace}};") {
				t.Errorf("template %q should open with the namespace, got %q", kind, content[:40])
			}
		})
	}
}

func TestGetValueObjectTemplate_Unknown(t *testing.T) {
	if _, err := GetValueObjectTemplate("address"); err == nil {
		t.Error("expected error for unknown template")
	}
}
