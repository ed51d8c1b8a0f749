package formats

import (
	"github.com/reoring/genoskema"
)

// NewGFF3 builds the GFF3 descriptor. GFF3 uses the textual strand
// convention natively (one of + - . ?), so no conversion is attached; the
// generic machinery serves it without a specialization.
func NewGFF3() *genoskema.Descriptor {
	d := genoskema.NewDescriptor(genoskema.Config{
		Name:        "gff3",
		Extensions:  []string{"gff3", "gff"},
		Delimiter:   "\t",
		EmptyColumn: ".",
		// The ##gff-version pragma is mandatory on line one.
		Metadata: genoskema.MetadataRequired,
		MetadataInfo: map[string]string{
			"gff-version":     "format version pragma, must be the first line",
			"sequence-region": "seqid start end bounds for a landmark",
			"species":         "NCBI taxonomy link for the annotated species",
		},
	})
	mustFields(d, map[string]genoskema.FieldInfo{
		"seqid":      {Kind: genoskema.KindString, Accessor: "chrom"},
		"source":     {Kind: genoskema.KindString},
		"type":       {Kind: genoskema.KindString, Accessor: "feature"},
		"start":      {Kind: genoskema.KindInteger},
		"end":        {Kind: genoskema.KindInteger},
		"score":      {Kind: genoskema.KindFloat},
		"strand":     {Kind: genoskema.KindStrandPlusMinus},
		"phase":      {Kind: genoskema.KindPhase},
		"attributes": {Kind: genoskema.KindString},
	}, []string{
		"seqid", "source", "type", "start", "end",
		"score", "strand", "phase", "attributes",
	})
	return d
}
