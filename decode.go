package omnisettings

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-viper/mapstructure/v2"
)

// Decode populates target from the entries under prefix. Unlike Prefixed,
// keys are stripped of the prefix and remaining dots become nesting, so with
// prefix "db." the entry "db.pool.size" decodes into a Pool.Size field.
// Fields are matched by `settings` struct tags, falling back to field names.
// String values convert weakly into the target's types, with time.Duration
// and comma-separated slices handled by decode hooks.
func (s *Settings) Decode(prefix string, target any) error {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return fmt.Errorf("decode target must be a non-nil pointer, got %T", target)
	}

	nested := make(map[string]any)
	for key, value := range s.values {
		if !strings.HasPrefix(key, prefix) {
			continue
		}
		setNestedValue(nested, strings.TrimPrefix(key, prefix), value)
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		TagName:          "settings",
		WeaklyTypedInput: true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(DefaultSeparator),
		),
	})
	if err != nil {
		return fmt.Errorf("failed to create settings decoder: %w", err)
	}

	if err := decoder.Decode(nested); err != nil {
		return fmt.Errorf("failed to decode settings under %q: %w", prefix, err)
	}

	return nil
}
