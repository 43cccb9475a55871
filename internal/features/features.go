package features

import "sort"

// Stage is the lifecycle bucket of a feature flag.
type Stage string

const (
	StageStable       Stage = "stable"
	StageBeta         Stage = "beta"
	StageExperimental Stage = "experimental"
)

const (
	Assistant    = "assistant"
	Markdown     = "markdown"
	StrictCommit = "strict_commit"
)

// Spec describes a feature flag exposed by the CLI.
type Spec struct {
	Key            string
	Stage          Stage
	DefaultEnabled bool
	Summary        string
}

var Specs = []Spec{
	{Key: Assistant, Stage: StageStable, DefaultEnabled: true, Summary: "AI assistant panel"},
	{Key: Markdown, Stage: StageStable, DefaultEnabled: true, Summary: "render chapter and assistant text as markdown"},
	{Key: StrictCommit, Stage: StageExperimental, DefaultEnabled: false, Summary: "require a message after git commit -m"},
}

var known = func() map[string]Spec {
	m := make(map[string]Spec, len(Specs))
	for _, spec := range Specs {
		m[spec.Key] = spec
	}
	return m
}()

// IsKnown reports whether the feature key is recognized.
func IsKnown(key string) bool {
	_, ok := known[key]
	return ok
}

// DefaultEnabled reports the default value for the given feature key.
func DefaultEnabled(key string) bool {
	if spec, ok := known[key]; ok {
		return spec.DefaultEnabled
	}
	return false
}

// Set is the resolved on/off state of every known feature.
type Set map[string]bool

// Resolve layers overrides on top of the defaults. Unknown keys are dropped.
func Resolve(overrides map[string]bool) Set {
	set := make(Set, len(Specs))
	for _, spec := range Specs {
		set[spec.Key] = spec.DefaultEnabled
	}
	for key, on := range overrides {
		if IsKnown(key) {
			set[key] = on
		}
	}
	return set
}

func (s Set) Enabled(key string) bool {
	if on, ok := s[key]; ok {
		return on
	}
	return DefaultEnabled(key)
}

// On returns the enabled feature keys, sorted.
func (s Set) On() []string {
	var keys []string
	for k, on := range s {
		if on {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}
