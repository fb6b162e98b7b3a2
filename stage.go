package omnisettings

import (
	"fmt"
	"strings"
)

// EnvLookup reports the value of one environment switch, in the shape of
// os.LookupEnv. Injecting it keeps stage resolution testable without
// touching the process environment.
type EnvLookup func(name string) (string, bool)

// envName converts a switch name such as "omni.stage" into the environment
// variable carrying it: dots become underscores, the result is uppercased.
func envName(switchName string) string {
	return strings.ToUpper(strings.ReplaceAll(switchName, ".", "_"))
}

// resolveStage determines the active stage: the environment switch when set
// and non-empty, otherwise the bootstrap's default. Having neither is a
// fatal configuration error, not a degraded mode.
func resolveStage(lookup EnvLookup, switchName, defaultStage string) (string, error) {
	if stage, ok := lookup(envName(switchName)); ok && stage != "" {
		return stage, nil
	}

	if defaultStage != "" {
		return defaultStage, nil
	}

	return "", fmt.Errorf("%w: set %s or configure defaultStage in %s",
		ErrStageUnresolved, envName(switchName), BootstrapPath)
}
