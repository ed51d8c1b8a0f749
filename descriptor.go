package genoskema

// MetadataMode is the tri-state describing whether a format carries metadata
// lines: never, mandatory, or optional.
type MetadataMode int

const (
	MetadataNever    MetadataMode = 0
	MetadataRequired MetadataMode = 1
	MetadataOptional MetadataMode = -1
)

// FieldInfo is the per-field schema entry: the validator kind, the accessor
// name exposed by records (field name when empty), and an optional match
// parameter (a literal, or a [2]float64 range for KindRange).
type FieldInfo struct {
	Kind     Kind
	Accessor string
	Match    any
}

// IsZero reports whether the entry is the empty descriptor returned for
// unknown fields.
func (fi FieldInfo) IsZero() bool {
	return fi.Kind == "" && fi.Accessor == "" && fi.Match == nil
}

// Field descriptor attribute keys accepted by Descriptor.FieldValue.
const (
	FieldKeyKind     = "kind"
	FieldKeyAccessor = "accessor"
	FieldKeyMatch    = "match"
)

// Config carries the declarative metadata of a format. Zero values take the
// documented defaults: Extensions ["txt"], Metadata never, no delimiter.
type Config struct {
	Name           string
	Extensions     []string
	Delimiter      string
	DelimiterRegex string
	EmptyColumn    string
	CanMultitrack  bool
	Metadata       MetadataMode
	MetadataInfo   map[string]string
}

// Descriptor holds one format's declarative schema: format-level metadata,
// the field table, and the authoritative field order. A Descriptor is built
// once at format-registration time and is read-only afterwards; the only
// mutation paths are SetFieldInfo and SetFieldOrder, which run during setup.
type Descriptor struct {
	cfg        Config
	fieldInfo  map[string]FieldInfo
	fieldOrder []string
	registry   *Registry
	spec       Specialization
}

// NewDescriptor constructs a descriptor from cfg with defaults applied and
// the built-in validator catalog attached.
func NewDescriptor(cfg Config) *Descriptor {
	if len(cfg.Extensions) == 0 {
		cfg.Extensions = []string{"txt"}
	}
	if cfg.MetadataInfo == nil {
		cfg.MetadataInfo = map[string]string{}
	}
	return &Descriptor{cfg: cfg, registry: NewRegistry()}
}

func (d *Descriptor) Name() string                 { return d.cfg.Name }
func (d *Descriptor) Extensions() []string         { return d.cfg.Extensions }
func (d *Descriptor) Delimiter() string            { return d.cfg.Delimiter }
func (d *Descriptor) DelimiterRegex() string       { return d.cfg.DelimiterRegex }
func (d *Descriptor) EmptyColumn() string          { return d.cfg.EmptyColumn }
func (d *Descriptor) CanMultitrack() bool          { return d.cfg.CanMultitrack }
func (d *Descriptor) Metadata() MetadataMode       { return d.cfg.Metadata }
func (d *Descriptor) MetadataInfo(key string) (string, bool) {
	v, ok := d.cfg.MetadataInfo[key]
	return v, ok
}

// Registry returns the validator registry in use. Never nil.
func (d *Descriptor) Registry() *Registry { return d.registry }

// SetRegistry replaces the validator registry, for specializations that carry
// bespoke kinds. Nil is ignored.
func (d *Descriptor) SetRegistry(r *Registry) {
	if r != nil {
		d.registry = r
	}
}

// FieldInfo returns the schema entry for a field, or the zero entry when the
// field is unknown. It never fails; an absent entry is a silent miss.
func (d *Descriptor) FieldInfo(name string) FieldInfo {
	return d.fieldInfo[name]
}

// FieldValue returns one attribute of a field's schema entry by key. The
// second result is false when the field or the key is unknown, or when the
// attribute is unset.
func (d *Descriptor) FieldValue(name, key string) (any, bool) {
	fi, ok := d.fieldInfo[name]
	if !ok {
		return nil, false
	}
	switch key {
	case FieldKeyKind:
		if fi.Kind == "" {
			return nil, false
		}
		return fi.Kind, true
	case FieldKeyAccessor:
		if fi.Accessor == "" {
			return nil, false
		}
		return fi.Accessor, true
	case FieldKeyMatch:
		if fi.Match == nil {
			return nil, false
		}
		return fi.Match, true
	}
	return nil, false
}

// Fields returns the authoritative column order. When a specialization is
// attached its fixed order strictly overrides the descriptor's own; the two
// are never merged.
func (d *Descriptor) Fields() []string {
	if d.spec != nil {
		return d.spec.Fields()
	}
	return d.fieldOrder
}

// Accessors returns one accessor name per entry of the active field order:
// the field's declared accessor, or the field name itself when none is
// declared.
func (d *Descriptor) Accessors() []string {
	fields := d.Fields()
	out := make([]string, len(fields))
	for i, name := range fields {
		if acc := d.fieldInfo[name].Accessor; acc != "" {
			out[i] = acc
		} else {
			out[i] = name
		}
	}
	return out
}

// SetFieldInfo replaces the field table. An empty or nil table, or an entry
// keyed by an empty name, is a setup error: the call fails with *ConfigError
// and the prior table is left untouched.
func (d *Descriptor) SetFieldInfo(table map[string]FieldInfo) error {
	if len(table) == 0 {
		return configErrf(d.cfg.Name, "set_field_info: empty field table")
	}
	cp := make(map[string]FieldInfo, len(table))
	for name, fi := range table {
		if name == "" {
			return configErrf(d.cfg.Name, "set_field_info: empty field name")
		}
		cp[name] = fi
	}
	d.fieldInfo = cp
	return nil
}

// SetFieldOrder replaces the field order. An empty sequence or an empty entry
// fails with *ConfigError, leaving the prior order untouched. Entries absent
// from the field table are allowed; they resolve to the zero FieldInfo.
func (d *Descriptor) SetFieldOrder(order []string) error {
	if len(order) == 0 {
		return configErrf(d.cfg.Name, "set_field_order: empty field order")
	}
	cp := make([]string, len(order))
	for i, name := range order {
		if name == "" {
			return configErrf(d.cfg.Name, "set_field_order: empty field name at %d", i)
		}
		cp[i] = name
	}
	d.fieldOrder = cp
	return nil
}

// ValidateAs resolves kind to a predicate and applies it to value. It fails
// closed: an empty value with a kind that requires content, an unknown kind,
// or a missing required match parameter all yield false, never an error.
func (d *Descriptor) ValidateAs(kind Kind, value string, match any) bool {
	return d.registry.Validate(kind, value, match)
}

// ValidateField validates a raw value against the field's schema entry. A
// value equal to the format's empty-column token is vacuously valid, as is a
// field with no schema entry.
func (d *Descriptor) ValidateField(name, value string) bool {
	fi, ok := d.fieldInfo[name]
	if !ok || fi.Kind == "" {
		return true
	}
	if value == d.cfg.EmptyColumn {
		return true
	}
	return d.registry.Validate(fi.Kind, value, fi.Match)
}

// Specialization is the capability by which a concrete format narrows the
// generic schema: a fixed column order that strictly overrides the
// descriptor's own, plus optional per-field value conversions consumed by the
// record layer.
type Specialization interface {
	// Fields returns the format's fixed column order.
	Fields() []string
	// Conversion returns the value transform for a field, if the field has
	// one. Most fields have none.
	Conversion(field string) (Conversion, bool)
}

// Conversion translates one field between its stored internal form and the
// format's external token set.
type Conversion interface {
	// Read maps a stored internal value to the external token; values outside
	// the mapped domain pass through unchanged.
	Read(stored string) string
	// Write maps an incoming value to the stored form. For strand this is the
	// identity: the record layer stores what it is given.
	Write(value string) string
}

// SetSpecialization attaches a specialization. Intended to run once at format
// setup.
func (d *Descriptor) SetSpecialization(s Specialization) { d.spec = s }

// Specialization returns the attached specialization, if any.
func (d *Descriptor) Specialization() (Specialization, bool) {
	return d.spec, d.spec != nil
}

// Conversion returns the active specialization's transform for a field.
func (d *Descriptor) Conversion(field string) (Conversion, bool) {
	if d.spec == nil {
		return nil, false
	}
	return d.spec.Conversion(field)
}
