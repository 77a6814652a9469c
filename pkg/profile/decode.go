package profile

import (
	"io"

	"github.com/dotrs/dotrs/pkg/cipher"
	"github.com/dotrs/dotrs/pkg/errors"
	"gopkg.in/yaml.v3"
)

const encryptedKey = cipher.EncryptedMarker

// scalarDecoders are tried in order; the first that accepts a node wins
var scalarDecoders = []func(*yaml.Node) (Value, bool){
	decodeString,
	decodeInt,
	decodeFloat,
	decodeBool,
	decodeNull,
}

// Decode parses a YAML document into a Value tree. Encrypted leaves are kept
// as is; an empty document decodes to Null.
func Decode(r io.Reader) (Value, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if err == io.EOF {
			return Null, nil
		}
		return Null, errors.Wrap(err, errors.ErrProfileDecode, "failed decoding yaml")
	}
	return decodeNode(&doc)
}

func decodeNode(n *yaml.Node) (Value, error) {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return Null, nil
		}
		return decodeNode(n.Content[0])
	case yaml.AliasNode:
		return decodeNode(n.Alias)
	case yaml.ScalarNode:
		for _, try := range scalarDecoders {
			if v, ok := try(n); ok {
				return v, nil
			}
		}
		return Null, errors.Newf(errors.ErrProfileDecode,
			"line %d: unsupported value %q (tag %s)", n.Line, n.Value, n.ShortTag())
	case yaml.SequenceNode:
		items := make([]Value, 0, len(n.Content))
		for _, c := range n.Content {
			v, err := decodeNode(c)
			if err != nil {
				return Null, err
			}
			items = append(items, v)
		}
		return List(items...), nil
	case yaml.MappingNode:
		if v, ok := decodeEncrypted(n); ok {
			return v, nil
		}
		return decodeMap(n)
	}
	return Null, nil
}

// decodeEncrypted accepts a mapping with exactly the reserved key and a
// string value. It runs before decodeMap, otherwise every encrypted leaf
// would decode as an ordinary map.
func decodeEncrypted(n *yaml.Node) (Value, bool) {
	if len(n.Content) != 2 {
		return Null, false
	}
	key, val := n.Content[0], n.Content[1]
	if key.Kind != yaml.ScalarNode || key.Value != encryptedKey {
		return Null, false
	}
	if val.Kind != yaml.ScalarNode || val.ShortTag() != "!!str" {
		return Null, false
	}
	return Encrypted(val.Value), true
}

func decodeMap(n *yaml.Node) (Value, error) {
	entries := make([]Entry, 0, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		key, val := n.Content[i], n.Content[i+1]
		if key.Kind != yaml.ScalarNode {
			return Null, errors.Newf(errors.ErrProfileDecode,
				"line %d: map keys must be scalars", key.Line)
		}
		v, err := decodeNode(val)
		if err != nil {
			return Null, err
		}
		entries = append(entries, Entry{Key: key.Value, Value: v})
	}
	return Map(entries...), nil
}

func decodeString(n *yaml.Node) (Value, bool) {
	switch n.ShortTag() {
	case "!!str", "!!timestamp", "!!binary":
		return String(n.Value), true
	}
	return Null, false
}

func decodeInt(n *yaml.Node) (Value, bool) {
	if n.ShortTag() != "!!int" {
		return Null, false
	}
	var i int64
	if err := n.Decode(&i); err != nil {
		return Null, false
	}
	return Int(i), true
}

func decodeFloat(n *yaml.Node) (Value, bool) {
	switch n.ShortTag() {
	case "!!float", "!!int":
	default:
		return Null, false
	}
	var f float64
	if err := n.Decode(&f); err != nil {
		return Null, false
	}
	return Float(f), true
}

func decodeBool(n *yaml.Node) (Value, bool) {
	if n.ShortTag() != "!!bool" {
		return Null, false
	}
	var b bool
	if err := n.Decode(&b); err != nil {
		return Null, false
	}
	return Bool(b), true
}

func decodeNull(n *yaml.Node) (Value, bool) {
	if n.ShortTag() != "!!null" {
		return Null, false
	}
	return Null, true
}
