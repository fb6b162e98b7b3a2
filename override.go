package omnisettings

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// loadOverride merges the entries of the external settings file at path over
// the working map. The settings switch naming an unreachable or unparsable
// file is fatal; absence of the switch itself is handled by the caller, who
// simply skips this step.
func loadOverride(path string, working map[string]string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrOverrideUnreadable, path, err)
	}

	format := detectFileFormat(path)
	if format == "" {
		format = detectFormatFromContent(data)
	}

	doc := make(map[string]any)
	switch format {
	case "toml":
		if err := toml.Unmarshal(data, &doc); err != nil {
			return fmt.Errorf("%w: %s: %w", ErrOverrideUnreadable, path, err)
		}
	case "json":
		decoder := json.NewDecoder(bytes.NewReader(data))
		decoder.UseNumber() // Preserve number literals
		if err := decoder.Decode(&doc); err != nil {
			return fmt.Errorf("%w: %s: %w", ErrOverrideUnreadable, path, err)
		}
	case "yaml":
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return fmt.Errorf("%w: %s: %w", ErrOverrideUnreadable, path, err)
		}
	default:
		return fmt.Errorf("%w: %s: unable to determine file format", ErrOverrideUnreadable, path)
	}

	for key, value := range flattenMap(doc, "") {
		working[key] = stringify(value)
	}

	return nil
}

// detectFileFormat maps a file extension to a parser name, or "" when the
// extension is ambiguous and content detection should decide.
func detectFileFormat(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml", ".tml":
		return "toml"
	case ".json":
		return "json"
	case ".yaml", ".yml":
		return "yaml"
	default:
		return ""
	}
}

// detectFormatFromContent attempts detection by parsing, strictest first.
func detectFormatFromContent(data []byte) string {
	var jsonTest any
	if err := json.Unmarshal(data, &jsonTest); err == nil {
		return "json"
	}

	tomlTest := make(map[string]any)
	if err := toml.Unmarshal(data, &tomlTest); err == nil {
		return "toml"
	}

	yamlTest := make(map[string]any)
	if err := yaml.Unmarshal(data, &yamlTest); err == nil {
		return "yaml"
	}

	return ""
}
