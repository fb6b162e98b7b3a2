package omnisettings

// Kind selects the shape a Resolve call derives from the underlying string.
type Kind int

const (
	KindString Kind = iota
	KindInt
	KindInt64
	KindBool
	KindStrings
	KindInt64s
	KindMap
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInt:
		return "int"
	case KindInt64:
		return "int64"
	case KindBool:
		return "bool"
	case KindStrings:
		return "[]string"
	case KindInt64s:
		return "[]int64"
	case KindMap:
		return "map"
	default:
		return "unknown"
	}
}

// Value is the tagged result of a single Resolve call. Exactly one shape is
// populated, indicated by Kind; the accessor for any other shape returns the
// zero value of its type.
type Value struct {
	kind Kind
	str  string
	num  int64
	flag bool
	list []string
	nums []int64
	sub  map[string]string
}

// Kind reports which shape this value carries.
func (v Value) Kind() Kind {
	return v.kind
}

// Str returns the string shape.
func (v Value) Str() string {
	return v.str
}

// Int returns the int shape. The stored number is produced by an int-width
// parse, so the conversion cannot truncate.
func (v Value) Int() int {
	return int(v.num)
}

// Int64 returns the int64 shape.
func (v Value) Int64() int64 {
	return v.num
}

// Bool returns the bool shape.
func (v Value) Bool() bool {
	return v.flag
}

// Strings returns the list-of-string shape. The slice is owned by the caller.
func (v Value) Strings() []string {
	return v.list
}

// Int64s returns the list-of-int64 shape. The slice is owned by the caller.
func (v Value) Int64s() []int64 {
	return v.nums
}

// Map returns the prefix sub-map shape. The map is owned by the caller.
func (v Value) Map() map[string]string {
	return v.sub
}
