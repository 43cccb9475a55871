package features

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestResolve_Defaults(t *testing.T) {
	set := Resolve(nil)
	want := Set{Assistant: true, Markdown: true, StrictCommit: false}
	if diff := cmp.Diff(want, set); diff != "" {
		t.Fatalf("defaults mismatch (-want +got):\n%s", diff)
	}
}

func TestResolve_OverridesKnownOnly(t *testing.T) {
	set := Resolve(map[string]bool{StrictCommit: true, Assistant: false, "time_travel": true})
	if !set.Enabled(StrictCommit) || set.Enabled(Assistant) {
		t.Fatalf("overrides not applied: %#v", set)
	}
	if _, ok := set["time_travel"]; ok {
		t.Fatalf("unknown key kept")
	}
	if diff := cmp.Diff([]string{Markdown, StrictCommit}, set.On()); diff != "" {
		t.Fatalf("enabled keys mismatch (-want +got):\n%s", diff)
	}
}

func TestIsKnownAndDefaults(t *testing.T) {
	if !IsKnown(StrictCommit) || IsKnown("nope") {
		t.Fatalf("unexpected IsKnown result")
	}
	if !DefaultEnabled(Assistant) || DefaultEnabled(StrictCommit) || DefaultEnabled("nope") {
		t.Fatalf("unexpected defaults")
	}
}
