// Package record exposes one parsed row of a tabular genomic file through the
// accessors its format descriptor declares. A Record owns per-row state only;
// the descriptor it wraps is shared and read-only.
package record

import (
	"context"

	json "github.com/goccy/go-json"

	"github.com/reoring/genoskema"
	"github.com/reoring/genoskema/i18n"
)

// Record wraps a descriptor plus the raw string values of one row, keyed by
// field name. Reads go through the specialization's conversion when the field
// declares one; writes store the value as given.
type Record struct {
	desc   *genoskema.Descriptor
	values map[string]string
	// byAccessor maps accessor name -> field name for Get/Set.
	byAccessor map[string]string
}

// New returns an empty record for a descriptor.
func New(d *genoskema.Descriptor) *Record {
	fields := d.Fields()
	accs := d.Accessors()
	r := &Record{
		desc:       d,
		values:     make(map[string]string, len(fields)),
		byAccessor: make(map[string]string, len(fields)),
	}
	for i, name := range fields {
		r.byAccessor[accs[i]] = name
	}
	return r
}

// FromRow maps an ordered raw row onto the descriptor's active field order.
// Arity is the caller's responsibility: a short row leaves trailing fields at
// the format's empty-column token, a long row's surplus is ignored.
func FromRow(d *genoskema.Descriptor, row []string) *Record {
	r := New(d)
	fields := d.Fields()
	for i, name := range fields {
		if i < len(row) {
			r.values[name] = row[i]
		} else {
			r.values[name] = d.EmptyColumn()
		}
	}
	return r
}

// Descriptor returns the format descriptor the record was built with.
func (r *Record) Descriptor() *genoskema.Descriptor { return r.desc }

// Get reads a value by accessor name, applying the specialization's read
// transform when the underlying field declares one. Unknown accessors yield
// the empty string.
func (r *Record) Get(accessor string) string {
	field, ok := r.byAccessor[accessor]
	if !ok {
		return ""
	}
	v := r.values[field]
	if conv, ok := r.desc.Conversion(field); ok {
		return conv.Read(v)
	}
	return v
}

// Raw reads a stored value by field name with no conversion applied.
func (r *Record) Raw(field string) string { return r.values[field] }

// Set stores a value by accessor name, unvalidated and unconverted. Unknown
// accessors are ignored.
func (r *Record) Set(accessor, value string) {
	field, ok := r.byAccessor[accessor]
	if !ok {
		return
	}
	if conv, ok := r.desc.Conversion(field); ok {
		value = conv.Write(value)
	}
	r.values[field] = value
}

// Row renders the record back into its ordered raw form.
func (r *Record) Row() []string {
	fields := r.desc.Fields()
	out := make([]string, len(fields))
	for i, name := range fields {
		out[i] = r.values[name]
	}
	return out
}

// Validate checks every field of the active order against its schema entry
// and collects all failures; it never stops at the first. Values equal to the
// format's empty-column token are vacuously valid. The result is data - a nil
// slice means the record conforms.
func (r *Record) Validate(ctx context.Context) genoskema.Issues {
	var iss genoskema.Issues
	for _, name := range r.desc.Fields() {
		select {
		case <-ctx.Done():
			return iss
		default:
		}
		v := r.values[name]
		if r.desc.ValidateField(name, v) {
			continue
		}
		fi := r.desc.FieldInfo(name)
		iss = genoskema.AppendIssues(iss, genoskema.Issue{
			Field:   name,
			Code:    genoskema.CodeInvalidValue,
			Message: i18n.T(genoskema.CodeInvalidValue, map[string]string{"kind": string(fi.Kind)}),
			Value:   v,
			Kind:    fi.Kind,
		})
	}
	return iss
}

// MarshalJSON renders the record as an accessor→value object, with read
// conversions applied.
func (r *Record) MarshalJSON() ([]byte, error) {
	accs := r.desc.Accessors()
	obj := make(map[string]string, len(accs))
	for _, a := range accs {
		obj[a] = r.Get(a)
	}
	return json.Marshal(obj)
}
