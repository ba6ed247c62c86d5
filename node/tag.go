package node

import "strings"

// stsciTagPrefix is the URI prefix canonical ASDF schema tags are stripped
// of, the same prefix-stripping treatment YAML's core schema applies to
// its own "tag:yaml.org,2002:" namespace, applied here to ASDF's registry
// instead.
const stsciTagPrefix = "tag:stsci.edu:asdf/"

// ndarrayTagPrefix is the (unversioned) prefix the mapping resolver checks
// against; only the prefix is checked, not the trailing version suffix, so
// "core/ndarray-99.9.9" still matches.
const ndarrayTagPrefix = "core/ndarray"

// SchemaTag identifies the semantic type of a Node. The zero value is the
// absent tag, which compares equal to itself and is the identity element
// under Merge.
type SchemaTag string

// NoTag is the absent schema tag.
const NoTag SchemaTag = ""

// Canonicalize strips the "tag:stsci.edu:asdf/" prefix from a fully
// qualified URI, leaving any other URI or short name untouched. Applying
// Canonicalize twice is a no-op.
func Canonicalize(tag string) SchemaTag {
	if strings.HasPrefix(tag, stsciTagPrefix) {
		return SchemaTag(strings.TrimPrefix(tag, stsciTagPrefix))
	}
	return SchemaTag(tag)
}

// URI expands a canonical tag back to its fully qualified stsci.edu form,
// the inverse of Canonicalize for tags that came from that registry. Tags
// that are already full URIs, or empty, are returned unchanged.
func (t SchemaTag) URI() string {
	if t == "" || strings.Contains(string(t), ":") {
		return string(t)
	}
	return stsciTagPrefix + string(t)
}

// IsNDArray reports whether the tag identifies an ASDF ndarray node, using
// a prefix-only match that ignores any trailing schema version.
func (t SchemaTag) IsNDArray() bool {
	return strings.HasPrefix(string(t), ndarrayTagPrefix)
}

// Merge returns the tag to use when combining two tag sources, with the
// absent tag as identity element: an explicit tag always wins over NoTag.
func (t SchemaTag) Merge(other SchemaTag) SchemaTag {
	if t != NoTag {
		return t
	}
	return other
}

// NDArrayTag is the canonical tag attached to ASDF ndarray mappings on
// encode.
const NDArrayTag SchemaTag = "core/ndarray-1.0.0"
