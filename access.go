package omnisettings

import (
	"fmt"
	"strconv"
	"strings"
)

// DefaultSeparator splits list-typed settings when a Request does not name
// its own separator.
const DefaultSeparator = ","

// Request identifies one typed lookup against the frozen mapping: the key a
// consumer is asking for, plus the qualifiers shaping the answer. How a
// consumer's declared identifier becomes Key is the host framework's concern.
type Request struct {
	// Key is the entry to resolve.
	Key string

	// Kind is the shape to derive.
	Kind Kind

	// Default stands in when Key is absent. An empty Default means "no
	// default": string reads then resolve to "", numeric reads fail.
	Default string

	// Separator splits list kinds. Empty means DefaultSeparator.
	Separator string

	// Prefix filters the mapping for KindMap requests.
	Prefix string
}

// Resolve derives a typed value for req. It is a pure function of the frozen
// mapping and the request: numeric kinds return *ParseError when the
// underlying string is unset or malformed, every other kind treats absence
// as a normal, empty state.
func (s *Settings) Resolve(req Request) (Value, error) {
	switch req.Kind {
	case KindString:
		return Value{kind: KindString, str: s.stringFor(req)}, nil

	case KindInt:
		raw, err := s.numericFor(req)
		if err != nil {
			return Value{}, err
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			return Value{}, &ParseError{Key: req.Key, Value: raw, Kind: KindInt, Err: err}
		}
		return Value{kind: KindInt, num: int64(n)}, nil

	case KindInt64:
		raw, err := s.numericFor(req)
		if err != nil {
			return Value{}, err
		}
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return Value{}, &ParseError{Key: req.Key, Value: raw, Kind: KindInt64, Err: err}
		}
		return Value{kind: KindInt64, num: n}, nil

	case KindBool:
		// Deliberately permissive: anything other than "true" (any case) is
		// false, including "yes" and "1". Malformed input never errors here.
		return Value{kind: KindBool, flag: strings.EqualFold(s.stringFor(req), "true")}, nil

	case KindStrings:
		return Value{kind: KindStrings, list: s.splitFor(req)}, nil

	case KindInt64s:
		parts := s.splitFor(req)
		nums := make([]int64, 0, len(parts))
		for _, part := range parts {
			n, err := strconv.ParseInt(part, 10, 64)
			if err != nil {
				return Value{}, &ParseError{Key: req.Key, Value: part, Kind: KindInt64s, Err: err}
			}
			nums = append(nums, n)
		}
		return Value{kind: KindInt64s, nums: nums}, nil

	case KindMap:
		return Value{kind: KindMap, sub: s.Prefixed(req.Prefix)}, nil

	default:
		return Value{}, fmt.Errorf("unsupported request kind %d", req.Kind)
	}
}

// stringFor resolves the raw string for a request, applying its default.
func (s *Settings) stringFor(req Request) string {
	if value, ok := s.values[req.Key]; ok {
		return value
	}
	return req.Default
}

// numericFor resolves the raw string for a numeric request. An empty result
// means there is nothing to parse, which is an access error rather than a
// silent zero.
func (s *Settings) numericFor(req Request) (string, error) {
	raw := s.stringFor(req)
	if raw == "" {
		return "", &ParseError{Key: req.Key, Kind: req.Kind, Err: ErrUnset}
	}
	return raw, nil
}

// splitFor resolves a list request. Absent or empty values yield an empty,
// non-nil slice; otherwise the string is split on the separator with the
// whitespace around each element trimmed, preserving order.
func (s *Settings) splitFor(req Request) []string {
	raw := s.stringFor(req)
	if raw == "" {
		return []string{}
	}

	sep := req.Separator
	if sep == "" {
		sep = DefaultSeparator
	}

	parts := strings.Split(raw, sep)
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

// String returns the value for key, or "" when it is absent.
func (s *Settings) String(key string) string {
	value, _ := s.Resolve(Request{Key: key, Kind: KindString})
	return value.Str()
}

// StringDefault returns the value for key, or def when it is absent.
func (s *Settings) StringDefault(key, def string) string {
	value, _ := s.Resolve(Request{Key: key, Kind: KindString, Default: def})
	return value.Str()
}

// Int parses the value for key as a base-10 int.
func (s *Settings) Int(key string) (int, error) {
	value, err := s.Resolve(Request{Key: key, Kind: KindInt})
	if err != nil {
		return 0, err
	}
	return value.Int(), nil
}

// Int64 parses the value for key as a base-10 int64.
func (s *Settings) Int64(key string) (int64, error) {
	value, err := s.Resolve(Request{Key: key, Kind: KindInt64})
	if err != nil {
		return 0, err
	}
	return value.Int64(), nil
}

// Bool reports whether the value for key equals "true", case-insensitively.
func (s *Settings) Bool(key string) bool {
	value, _ := s.Resolve(Request{Key: key, Kind: KindBool})
	return value.Bool()
}

// Strings splits the value for key on DefaultSeparator.
func (s *Settings) Strings(key string) []string {
	value, _ := s.Resolve(Request{Key: key, Kind: KindStrings})
	return value.Strings()
}

// StringsSep splits the value for key on sep.
func (s *Settings) StringsSep(key, sep string) []string {
	value, _ := s.Resolve(Request{Key: key, Kind: KindStrings, Separator: sep})
	return value.Strings()
}

// Int64s splits the value for key on DefaultSeparator and parses each
// element as a base-10 int64.
func (s *Settings) Int64s(key string) ([]int64, error) {
	value, err := s.Resolve(Request{Key: key, Kind: KindInt64s})
	if err != nil {
		return nil, err
	}
	return value.Int64s(), nil
}
