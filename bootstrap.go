package omnisettings

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/BurntSushi/toml"
)

// BootstrapPath is the fixed location of the bootstrap resource inside the
// resolver's file system.
const BootstrapPath = "omni-settings.toml"

const (
	defaultStageSwitch    = "omni.stage"
	defaultSettingsSwitch = "omni.settings"
	defaultBundleName     = "application-settings.toml"
)

// bootstrap holds the settings that control resolution itself. Its keys are
// consumed by the resolver and never reach the frozen mapping.
type bootstrap struct {
	StageSwitch    string `toml:"stageSystemPropertyName"`
	SettingsSwitch string `toml:"settingsSystemPropertyName"`
	DefaultStage   string `toml:"defaultStage"`
	BundleName     string `toml:"fileName"`
}

func defaultBootstrap() bootstrap {
	return bootstrap{
		StageSwitch:    defaultStageSwitch,
		SettingsSwitch: defaultSettingsSwitch,
		BundleName:     defaultBundleName,
	}
}

// loadBootstrap reads the bootstrap resource from fsys. A missing resource
// leaves the built-in defaults in place; a resource that exists but cannot
// be read or parsed is fatal.
func loadBootstrap(fsys fs.FS) (bootstrap, error) {
	bs := defaultBootstrap()

	data, err := fs.ReadFile(fsys, BootstrapPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return bs, nil
		}
		return bs, fmt.Errorf("%w: reading %s: %w", ErrBootstrap, BootstrapPath, err)
	}

	if err := toml.Unmarshal(data, &bs); err != nil {
		return bs, fmt.Errorf("%w: parsing %s: %w", ErrBootstrap, BootstrapPath, err)
	}

	// Keys omitted from the resource keep their defaults.
	if bs.StageSwitch == "" {
		bs.StageSwitch = defaultStageSwitch
	}
	if bs.SettingsSwitch == "" {
		bs.SettingsSwitch = defaultSettingsSwitch
	}
	if bs.BundleName == "" {
		bs.BundleName = defaultBundleName
	}

	return bs, nil
}
