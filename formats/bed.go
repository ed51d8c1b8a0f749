package formats

import (
	"github.com/reoring/genoskema"
)

// NewBED builds the BED descriptor: the full 12-column layout, browser-track
// capable, with the score clamped to its documented 0..1000 range and
// itemRgb accepting any colour form.
func NewBED() *genoskema.Descriptor {
	d := genoskema.NewDescriptor(genoskema.Config{
		Name:          "bed",
		Extensions:    []string{"bed"},
		Delimiter:     "\t",
		EmptyColumn:   ".",
		CanMultitrack: true,
		Metadata:      genoskema.MetadataOptional,
		MetadataInfo: map[string]string{
			"track":   "track definition line preceding a block of records",
			"browser": "browser display directives",
		},
	})
	mustFields(d, map[string]genoskema.FieldInfo{
		"chrom":       {Kind: genoskema.KindString},
		"chromStart":  {Kind: genoskema.KindInteger, Accessor: "start"},
		"chromEnd":    {Kind: genoskema.KindInteger, Accessor: "end"},
		"name":        {Kind: genoskema.KindString},
		"score":       {Kind: genoskema.KindRange, Match: [2]float64{0, 1000}},
		"strand":      {Kind: genoskema.KindStrandPlusMinus},
		"thickStart":  {Kind: genoskema.KindInteger},
		"thickEnd":    {Kind: genoskema.KindInteger},
		"itemRgb":     {Kind: genoskema.KindColour},
		"blockCount":  {Kind: genoskema.KindInteger},
		"blockSizes":  {Kind: genoskema.KindCommaSeparated},
		"blockStarts": {Kind: genoskema.KindCommaSeparated},
	}, []string{
		"chrom", "chromStart", "chromEnd", "name", "score", "strand",
		"thickStart", "thickEnd", "itemRgb", "blockCount", "blockSizes", "blockStarts",
	})
	return d
}
