package conftypes

// Kind identifies the dynamic type of a configuration value. The set
// mirrors the JSON type system, with null kept distinct from object.
type Kind string

const (
	KindString  Kind = "string"
	KindNumber  Kind = "number"
	KindBoolean Kind = "boolean"
	KindArray   Kind = "array"
	KindObject  Kind = "object"
	KindNull    Kind = "null"
)

// Classify reports the Kind of a decoded configuration value. Arrays and
// objects are distinguished from each other, and nil is always KindNull.
func Classify(v any) Kind {
	switch v.(type) {
	case nil:
		return KindNull
	case string:
		return KindString
	case bool:
		return KindBoolean
	case float64, float32, int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64:
		return KindNumber
	case []any:
		return KindArray
	case map[string]any:
		return KindObject
	}
	// Anything outside the decoded-JSON universe is treated as an object.
	return KindObject
}
