package asdf

import (
	"strconv"

	"github.com/stsci-edu/go-asdf/node"
)

// DispatchScalar maps a scalar's raw bytes and declared tag to a typed
// node.Node, falling back to the untagged disambiguator when the tag
// itself doesn't pin down a type.
func DispatchScalar(bytes []byte, tag Tag) (*node.Node, error) {
	switch tag.Kind {
	case StrTagKind:
		return node.New(node.String(bytes)), nil
	case IntTagKind:
		i, ok := tryParseInt(bytes)
		if !ok {
			return nil, InvalidScalar{ExpectedType: "Int", Bytes: bytes}
		}
		return node.New(i), nil
	case FloatTagKind:
		f, ok := tryParseFloat(bytes)
		if !ok {
			return nil, InvalidScalar{ExpectedType: "Float", Bytes: bytes}
		}
		return node.New(f), nil
	case BoolTagKind:
		b, ok := tryParseBool(bytes)
		if !ok {
			return nil, InvalidScalar{ExpectedType: "Bool", Bytes: bytes}
		}
		return node.New(b), nil
	case NullTagKind:
		return node.New(node.Null{}), nil
	case UriTagKind:
		n, err := dispatchUntagged(bytes)
		if err != nil {
			return nil, err
		}
		n.Tag = node.Canonicalize(tag.URI)
		return n, nil
	case NoTagKind:
		return dispatchUntagged(bytes)
	default:
		return nil, InvalidScalarTag{Tag: tag, Bytes: bytes}
	}
}

// dispatchUntagged tries ordered alternatives and keeps the first that
// succeeds. Order matters: "1" must resolve to Integer(1), not String("1").
func dispatchUntagged(bytes []byte) (*node.Node, error) {
	if i, ok := tryParseInt(bytes); ok {
		return node.New(i), nil
	}
	if f, ok := tryParseFloat(bytes); ok {
		return node.New(f), nil
	}
	if b, ok := tryParseBool(bytes); ok {
		return node.New(b), nil
	}
	return node.New(node.String(bytes)), nil
}

func tryParseInt(bytes []byte) (node.Integer, bool) {
	i, err := strconv.ParseInt(string(bytes), 10, 64)
	if err != nil {
		return 0, false
	}
	return node.Integer(i), true
}

func tryParseFloat(bytes []byte) (node.Number, bool) {
	f, err := strconv.ParseFloat(string(bytes), 64)
	if err != nil {
		return 0, false
	}
	return node.Number(f), true
}

func tryParseBool(bytes []byte) (node.Bool, bool) {
	switch string(bytes) {
	case "true":
		return node.Bool(true), true
	case "false":
		return node.Bool(false), true
	default:
		return false, false
	}
}
