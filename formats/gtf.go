package formats

import (
	"github.com/reoring/genoskema"
)

// gtfFields is GTF's fixed 9-column layout. The specialization returns it
// regardless of what the base descriptor was configured with.
var gtfFields = []string{
	"seqname", "source", "type", "start", "end",
	"score", "strand", "phase", "attributes",
}

// gtfSpecialization narrows the generic schema to GTF: a fixed column order
// plus the numeric-code↔symbol strand conversion. GTF stores strand
// internally as 1/-1 while the file uses "+"/"-"; the conversion's identity
// fallback lets a record hold either form.
type gtfSpecialization struct {
	strand genoskema.StrandConversion
}

func newGTFSpecialization() gtfSpecialization {
	return gtfSpecialization{
		strand: genoskema.NewStrandConversion(map[string]string{
			"1":  "+",
			"-1": "-",
		}),
	}
}

func (s gtfSpecialization) Fields() []string { return gtfFields }

func (s gtfSpecialization) Conversion(field string) (genoskema.Conversion, bool) {
	if field == "strand" {
		return s.strand, true
	}
	return nil, false
}

// StrandConversion exposes the mapping table for read-only inspection by the
// record layer and emitters.
func (s gtfSpecialization) StrandConversion() genoskema.StrandConversion { return s.strand }

// NewGTF builds the GTF descriptor: tab-delimited, "." for empty columns,
// optional "#" metadata lines, and the strand held as an internal numeric
// code validated as strand_integer.
func NewGTF() *genoskema.Descriptor {
	d := genoskema.NewDescriptor(genoskema.Config{
		Name:        "gtf",
		Extensions:  []string{"gtf"},
		Delimiter:   "\t",
		EmptyColumn: ".",
		Metadata:    genoskema.MetadataOptional,
		MetadataInfo: map[string]string{
			"description": "free-text description of the annotation set",
			"provider":    "annotation source, e.g. GENCODE",
			"format":      "declared format name and version",
			"date":        "assembly or release date",
		},
	})
	mustFields(d, map[string]genoskema.FieldInfo{
		"seqname":    {Kind: genoskema.KindString, Accessor: "chrom"},
		"source":     {Kind: genoskema.KindString},
		"type":       {Kind: genoskema.KindString, Accessor: "feature"},
		"start":      {Kind: genoskema.KindInteger},
		"end":        {Kind: genoskema.KindInteger},
		"score":      {Kind: genoskema.KindFloat},
		"strand":     {Kind: genoskema.KindStrandInteger},
		"phase":      {Kind: genoskema.KindPhase},
		"attributes": {Kind: genoskema.KindString},
	}, gtfFields)
	d.SetSpecialization(newGTFSpecialization())
	return d
}
