// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// ErrorTag is the tag name that qualifies a comment block as an error definition.
const ErrorTag = "error"

// ErrorRecord is one error definition in a Scheme.
type ErrorRecord struct {
	// Name is the first token of the @error tag, e.g. "E_NOT_FOUND".
	Name string `json:"name" yaml:"name"`

	Description string `json:"description" yaml:"description"`

	// Tags is the full tag sequence of the source block, @error included.
	Tags []Tag `json:"tags" yaml:"tags"`

	SourceFile string `json:"sourceFile" yaml:"sourceFile"`
	SourceLine int    `json:"sourceLine" yaml:"sourceLine"`
}

// Scheme is the renderer-agnostic document handed to converters.
type Scheme struct {
	Name        string        `json:"name" yaml:"name"`
	Description string        `json:"description" yaml:"description"`
	Version     string        `json:"version" yaml:"version"`
	Errors      []ErrorRecord `json:"errors" yaml:"errors"`
}

// TagsNamed returns the record's tags whose name equals name.
func (r ErrorRecord) TagsNamed(name string) []Tag {
	var out []Tag
	for _, t := range r.Tags {
		if t.Name == name {
			out = append(out, t)
		}
	}
	return out
}
