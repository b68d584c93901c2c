package nprintf

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Features selects which groups of format syntax a [Printer] accepts.
// Syntax of a disabled group is copied to the output as literal text.
type Features struct {
	// FieldWidth enables widths and the '-' and '0' flags.
	FieldWidth bool `yaml:"field_width" json:"field_width"`
	// Precision enables '.precision'.
	Precision bool `yaml:"precision" json:"precision"`
	// Float enables %f and %F.
	Float bool `yaml:"float" json:"float"`
	// Large enables the ll, j, z and t length modifiers.
	Large bool `yaml:"large" json:"large"`
	// Writeback enables %n.
	Writeback bool `yaml:"writeback" json:"writeback"`
	// Binary enables %b.
	Binary bool `yaml:"binary" json:"binary"`
}

// AllFeatures enables every group.
var AllFeatures = Features{
	FieldWidth: true,
	Precision:  true,
	Float:      true,
	Large:      true,
	Writeback:  true,
	Binary:     true,
}

// LoadFeatures reads a YAML feature set from r. Keys left out keep their
// value from [AllFeatures]; an empty document yields AllFeatures.
//
//	field_width: true
//	float: false
//	writeback: false
func LoadFeatures(r io.Reader) (Features, error) {
	f := AllFeatures
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return AllFeatures, nil
		}
		return Features{}, fmt.Errorf("%w: %w", ErrInvalidFeatures, err)
	}
	return f, nil
}
