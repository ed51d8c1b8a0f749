// Package formats holds the concrete format descriptors built on the generic
// genoskema machinery. Each format is constructed once, at registration time;
// descriptors are read-only after that.
package formats

import (
	"sort"
	"strings"

	"github.com/reoring/genoskema"
)

var builtin = map[string]func() *genoskema.Descriptor{
	"gtf":  NewGTF,
	"gff3": NewGFF3,
	"bed":  NewBED,
}

// Lookup returns a fresh descriptor for a format name. The second result is
// false for unknown names.
func Lookup(name string) (*genoskema.Descriptor, bool) {
	ctor, ok := builtin[strings.ToLower(name)]
	if !ok {
		return nil, false
	}
	return ctor(), true
}

// ByExtension returns the descriptor whose extension list contains ext
// (without the leading dot). First match in name order wins.
func ByExtension(ext string) (*genoskema.Descriptor, bool) {
	ext = strings.TrimPrefix(strings.ToLower(ext), ".")
	for _, name := range Names() {
		d := builtin[name]()
		for _, e := range d.Extensions() {
			if e == ext {
				return d, true
			}
		}
	}
	return nil, false
}

// Names returns the registered format names, sorted.
func Names() []string {
	out := make([]string, 0, len(builtin))
	for n := range builtin {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// mustFields installs a field table and order, panicking on a malformed
// definition. Format registration is setup code; a bad hard-coded schema is a
// programming error and must stop startup.
func mustFields(d *genoskema.Descriptor, table map[string]genoskema.FieldInfo, order []string) {
	if err := d.SetFieldInfo(table); err != nil {
		panic(err)
	}
	if err := d.SetFieldOrder(order); err != nil {
		panic(err)
	}
}
