package profile

import (
	"fmt"
	"strconv"
)

// Kind identifies the variant held by a Value
type Kind int

const (
	KindNull Kind = iota
	KindString
	KindInt
	KindFloat
	KindBool
	KindList
	KindMap
	KindEncrypted
)

var kindNames = map[Kind]string{
	KindNull:      "null",
	KindString:    "string",
	KindInt:       "int",
	KindFloat:     "float",
	KindBool:      "bool",
	KindList:      "list",
	KindMap:       "map",
	KindEncrypted: "encrypted",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Entry is one key of a map value. Maps keep document order.
type Entry struct {
	Key   string
	Value Value
}

// Value is a node of a decoded profile. Only the field matching Kind is set;
// encrypted leaves keep their base64 blob in Str.
type Value struct {
	Kind  Kind
	Str   string
	Int   int64
	Float float64
	Bool  bool
	List  []Value
	Map   []Entry
}

// Null is the value of an absent or empty profile
var Null = Value{Kind: KindNull}

func String(s string) Value     { return Value{Kind: KindString, Str: s} }
func Int(i int64) Value         { return Value{Kind: KindInt, Int: i} }
func Float(f float64) Value     { return Value{Kind: KindFloat, Float: f} }
func Bool(b bool) Value         { return Value{Kind: KindBool, Bool: b} }
func List(items ...Value) Value { return Value{Kind: KindList, List: items} }
func Map(entries ...Entry) Value {
	return Value{Kind: KindMap, Map: entries}
}
func Encrypted(blob string) Value { return Value{Kind: KindEncrypted, Str: blob} }

// IsNull reports whether v is the null value
func (v Value) IsNull() bool {
	return v.Kind == KindNull
}

// Get returns the entry named key of a map value
func (v Value) Get(key string) (Value, bool) {
	if v.Kind != KindMap {
		return Null, false
	}
	for _, e := range v.Map {
		if e.Key == key {
			return e.Value, true
		}
	}
	return Null, false
}

// ContainsEncrypted reports whether any leaf of v is encrypted
func (v Value) ContainsEncrypted() bool {
	switch v.Kind {
	case KindEncrypted:
		return true
	case KindList:
		for _, item := range v.List {
			if item.ContainsEncrypted() {
				return true
			}
		}
	case KindMap:
		for _, e := range v.Map {
			if e.Value.ContainsEncrypted() {
				return true
			}
		}
	}
	return false
}

// Interface converts v to plain Go values for template execution. Maps
// become map[string]interface{}, lists []interface{}, null nil.
func (v Value) Interface() interface{} {
	switch v.Kind {
	case KindString:
		return v.Str
	case KindInt:
		return v.Int
	case KindFloat:
		return v.Float
	case KindBool:
		return v.Bool
	case KindList:
		out := make([]interface{}, len(v.List))
		for i, item := range v.List {
			out[i] = item.Interface()
		}
		return out
	case KindMap:
		out := make(map[string]interface{}, len(v.Map))
		for _, e := range v.Map {
			out[e.Key] = e.Value.Interface()
		}
		return out
	case KindEncrypted:
		return map[string]interface{}{encryptedKey: v.Str}
	}
	return nil
}

func (v Value) String() string {
	switch v.Kind {
	case KindEncrypted:
		return encryptedKey + ": <redacted>"
	case KindNull:
		return "null"
	}
	return fmt.Sprint(v.Interface())
}
