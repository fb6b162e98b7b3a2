package omnisettings

import "strings"

// StageKey is the derived key injected after every other source has run. It
// always reflects the resolved stage, regardless of what any loader wrote.
const StageKey = "actualStageName"

// Settings is the frozen result of one resolution run: an immutable
// string-to-string mapping plus the stage it was resolved for. It is safe
// for unsynchronized concurrent reads and is never re-resolved; a process
// restart is the only way to obtain different values.
type Settings struct {
	stage  string
	values map[string]string
}

// newSettings freezes the working map. The map is copied so no loader can
// retain a reference that would let it mutate published state.
func newSettings(stage string, working map[string]string) *Settings {
	frozen := make(map[string]string, len(working)+1)
	for key, value := range working {
		frozen[key] = value
	}
	frozen[StageKey] = stage

	return &Settings{
		stage:  stage,
		values: frozen,
	}
}

// Stage returns the stage the settings were resolved for. It is always equal
// to the value stored under StageKey.
func (s *Settings) Stage() string {
	return s.stage
}

// Len returns the number of entries in the frozen mapping, including the
// derived StageKey entry.
func (s *Settings) Len() int {
	return len(s.values)
}

// Lookup returns the raw string value for key and whether the key is present.
func (s *Settings) Lookup(key string) (string, bool) {
	value, ok := s.values[key]
	return value, ok
}

// All returns a copy of the complete frozen mapping.
func (s *Settings) All() map[string]string {
	return s.Prefixed("")
}

// Prefixed returns a copy of the entries whose key starts with prefix. Keys
// are kept verbatim, not stripped of the prefix. An empty prefix returns the
// whole mapping. The result is always non-nil and mutating it has no effect
// on the frozen state.
func (s *Settings) Prefixed(prefix string) map[string]string {
	out := make(map[string]string)
	for key, value := range s.values {
		if strings.HasPrefix(key, prefix) {
			out[key] = value
		}
	}
	return out
}
