package omnisettings

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/BurntSushi/toml"
)

// loadBundle merges the active stage's table of the settings bundle into the
// working map. The bundle is one TOML document with a top-level table per
// stage; nested tables flatten to dot-joined keys, so
//
//	[dev.db]
//	host = "localhost"
//
// contributes "db.host" when the active stage is dev. A missing bundle
// contributes nothing (an application may rely solely on loaders or the
// override file); a malformed one aborts resolution.
func loadBundle(fsys fs.FS, name, stage string, working map[string]string) error {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("reading settings bundle %s: %w", name, err)
	}

	doc := make(map[string]any)
	if err := toml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("parsing settings bundle %s: %w", name, err)
	}

	section, ok := doc[stage].(map[string]any)
	if !ok {
		// No table for the active stage; other stages' tables are ignored.
		return nil
	}

	for key, value := range flattenMap(section, "") {
		working[key] = stringify(value)
	}

	return nil
}
