package omnisettings

import (
	"errors"
	"fmt"
)

var (
	// ErrBootstrap indicates the bootstrap resource exists but could not be
	// read or parsed. Resolution cannot proceed without it.
	ErrBootstrap = errors.New("invalid bootstrap resource")

	// ErrStageUnresolved indicates that neither the stage switch nor the
	// bootstrap's defaultStage names an active stage.
	ErrStageUnresolved = errors.New("no stage configured")

	// ErrOverrideUnreadable indicates the settings switch named an external
	// settings file that could not be read or parsed.
	ErrOverrideUnreadable = errors.New("cannot load external settings file")

	// ErrUnset indicates a numeric access against a key that is absent and
	// has no default. "Not configured" is permissive for string and list
	// reads, but there is no number to hand back.
	ErrUnset = errors.New("setting is not set and has no default")
)

// ParseError reports a typed access whose underlying string value could not
// be coerced to the requested kind. It is returned at access time, never
// during resolution, and leaves the frozen mapping untouched.
type ParseError struct {
	Key   string
	Value string
	Kind  Kind
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("setting %q: cannot derive %s from %q: %v", e.Key, e.Kind, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
