// Package schemafile loads a format descriptor from a declarative YAML
// definition. Hard-coding field tables in source remains the primary path;
// this exists for schema authors who want a custom format without a rebuild.
package schemafile

import (
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/reoring/genoskema"
)

// document mirrors the on-disk shape of a format definition.
type document struct {
	Name           string            `yaml:"name"`
	Extensions     []string          `yaml:"extensions"`
	Delimiter      string            `yaml:"delimiter"`
	DelimiterRegex string            `yaml:"delimiter_regex"`
	EmptyColumn    string            `yaml:"empty_column"`
	CanMultitrack  bool              `yaml:"can_multitrack"`
	Metadata       int               `yaml:"can_metadata"` // 0 never, 1 mandatory, -1 optional
	MetadataInfo   map[string]string `yaml:"metadata_info"`
	Fields         []fieldDoc        `yaml:"fields"`
}

type fieldDoc struct {
	Name     string   `yaml:"name"`
	Kind     string   `yaml:"kind"`
	Accessor string   `yaml:"accessor"`
	Match    string   `yaml:"match"`
	Min      *float64 `yaml:"min"`
	Max      *float64 `yaml:"max"`
}

// Load reads one YAML format definition and builds its descriptor. Malformed
// documents fail with *genoskema.ConfigError, same taxonomy as the
// programmatic Set* path; YAML syntax errors pass through as decode errors.
func Load(r io.Reader) (*genoskema.Descriptor, error) {
	var doc document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, err
	}
	return build(doc)
}

// LoadFile is Load over a file path.
func LoadFile(path string) (*genoskema.Descriptor, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Load(f)
}

func build(doc document) (*genoskema.Descriptor, error) {
	if doc.Name == "" {
		return nil, &genoskema.ConfigError{Reason: "schemafile: missing format name"}
	}
	switch doc.Metadata {
	case 0, 1, -1:
	default:
		return nil, &genoskema.ConfigError{Format: doc.Name, Reason: "schemafile: can_metadata must be 0, 1 or -1"}
	}
	if len(doc.Fields) == 0 {
		return nil, &genoskema.ConfigError{Format: doc.Name, Reason: "schemafile: no fields"}
	}

	d := genoskema.NewDescriptor(genoskema.Config{
		Name:           doc.Name,
		Extensions:     doc.Extensions,
		Delimiter:      doc.Delimiter,
		DelimiterRegex: doc.DelimiterRegex,
		EmptyColumn:    doc.EmptyColumn,
		CanMultitrack:  doc.CanMultitrack,
		Metadata:       genoskema.MetadataMode(doc.Metadata),
		MetadataInfo:   doc.MetadataInfo,
	})

	table := make(map[string]genoskema.FieldInfo, len(doc.Fields))
	order := make([]string, 0, len(doc.Fields))
	for _, fd := range doc.Fields {
		if fd.Name == "" {
			return nil, &genoskema.ConfigError{Format: doc.Name, Reason: "schemafile: field with no name"}
		}
		if fd.Kind == "" {
			return nil, &genoskema.ConfigError{Format: doc.Name, Reason: "schemafile: field " + fd.Name + " has no kind"}
		}
		fi := genoskema.FieldInfo{Kind: genoskema.Kind(fd.Kind), Accessor: fd.Accessor}
		switch {
		case fd.Min != nil && fd.Max != nil:
			fi.Match = [2]float64{*fd.Min, *fd.Max}
		case fd.Min != nil || fd.Max != nil:
			return nil, &genoskema.ConfigError{Format: doc.Name, Reason: "schemafile: field " + fd.Name + " has a half-open range"}
		case fd.Match != "":
			fi.Match = fd.Match
		}
		table[fd.Name] = fi
		order = append(order, fd.Name)
	}
	if err := d.SetFieldInfo(table); err != nil {
		return nil, err
	}
	if err := d.SetFieldOrder(order); err != nil {
		return nil, err
	}
	return d, nil
}
