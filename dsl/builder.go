// Package dsl provides a fluent builder for format descriptors, for schema
// authors defining a format in source rather than loading one.
package dsl

import (
	"github.com/reoring/genoskema"
)

type formatBuilder struct {
	cfg    genoskema.Config
	fields map[string]genoskema.FieldInfo
	order  []string
	spec   genoskema.Specialization
	reg    *genoskema.Registry
}

type fieldStep struct {
	b    *formatBuilder
	name string
}

// Format creates a new builder for a named format with the documented
// defaults (extensions ["txt"], metadata never).
func Format(name string) *formatBuilder {
	return &formatBuilder{
		cfg:    genoskema.Config{Name: name},
		fields: map[string]genoskema.FieldInfo{},
	}
}

// Extensions sets the recognized file extensions.
func (b *formatBuilder) Extensions(exts ...string) *formatBuilder {
	b.cfg.Extensions = exts
	return b
}

// Delimiter sets the literal field separator.
func (b *formatBuilder) Delimiter(d string) *formatBuilder {
	b.cfg.Delimiter = d
	return b
}

// DelimiterRegex sets a regex field separator, taking precedence over the
// literal delimiter at scan time.
func (b *formatBuilder) DelimiterRegex(re string) *formatBuilder {
	b.cfg.DelimiterRegex = re
	return b
}

// EmptyColumn sets the token representing "no value".
func (b *formatBuilder) EmptyColumn(tok string) *formatBuilder {
	b.cfg.EmptyColumn = tok
	return b
}

// Multitrack marks the format as supporting track lines.
func (b *formatBuilder) Multitrack() *formatBuilder {
	b.cfg.CanMultitrack = true
	return b
}

// Metadata sets the metadata tri-state.
func (b *formatBuilder) Metadata(mode genoskema.MetadataMode) *formatBuilder {
	b.cfg.Metadata = mode
	return b
}

// MetadataInfo describes one metadata key. The description is opaque to the
// core.
func (b *formatBuilder) MetadataInfo(key, description string) *formatBuilder {
	if b.cfg.MetadataInfo == nil {
		b.cfg.MetadataInfo = map[string]string{}
	}
	b.cfg.MetadataInfo[key] = description
	return b
}

// Field registers a field with its validator kind and appends it to the field
// order. Chain Accessor/Match/Range to refine the entry.
func (b *formatBuilder) Field(name string, kind genoskema.Kind) *fieldStep {
	if _, seen := b.fields[name]; !seen {
		b.order = append(b.order, name)
	}
	b.fields[name] = genoskema.FieldInfo{Kind: kind}
	return &fieldStep{b: b, name: name}
}

// Accessor sets the accessor name for the current field and returns the
// builder.
func (f *fieldStep) Accessor(name string) *formatBuilder {
	fi := f.b.fields[f.name]
	fi.Accessor = name
	f.b.fields[f.name] = fi
	return f.b
}

// Match sets a literal match parameter for the current field.
func (f *fieldStep) Match(v any) *formatBuilder {
	fi := f.b.fields[f.name]
	fi.Match = v
	f.b.fields[f.name] = fi
	return f.b
}

// Range sets an inclusive [min,max] match parameter for the current field.
func (f *fieldStep) Range(min, max float64) *formatBuilder {
	fi := f.b.fields[f.name]
	fi.Match = [2]float64{min, max}
	f.b.fields[f.name] = fi
	return f.b
}

// Field lets field steps chain directly into the next field.
func (f *fieldStep) Field(name string, kind genoskema.Kind) *fieldStep {
	return f.b.Field(name, kind)
}

// Specialize attaches a format specialization to the built descriptor.
func (b *formatBuilder) Specialize(s genoskema.Specialization) *formatBuilder {
	b.spec = s
	return b
}

// Registry replaces the validator registry of the built descriptor, for
// formats carrying bespoke kinds.
func (b *formatBuilder) Registry(r *genoskema.Registry) *formatBuilder {
	b.reg = r
	return b
}

// Build assembles the descriptor. A builder with no fields fails with
// *genoskema.ConfigError, mirroring SetFieldInfo/SetFieldOrder.
func (b *formatBuilder) Build() (*genoskema.Descriptor, error) {
	d := genoskema.NewDescriptor(b.cfg)
	if b.reg != nil {
		d.SetRegistry(b.reg)
	}
	if err := d.SetFieldInfo(b.fields); err != nil {
		return nil, err
	}
	if err := d.SetFieldOrder(b.order); err != nil {
		return nil, err
	}
	if b.spec != nil {
		d.SetSpecialization(b.spec)
	}
	return d, nil
}

// MustBuild is Build for hard-coded schemas; a malformed definition is a
// programming error and panics.
func (b *formatBuilder) MustBuild() *genoskema.Descriptor {
	d, err := b.Build()
	if err != nil {
		panic(err)
	}
	return d
}

// Build for fieldStep closes the current field and assembles the descriptor.
func (f *fieldStep) Build() (*genoskema.Descriptor, error) { return f.b.Build() }

// MustBuild closes the current field and assembles the descriptor, panicking
// on a malformed definition.
func (f *fieldStep) MustBuild() *genoskema.Descriptor { return f.b.MustBuild() }
