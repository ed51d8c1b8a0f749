package schemafile_test

import (
	"errors"
	"strings"
	"testing"

	genoskema "github.com/reoring/genoskema"
	"github.com/reoring/genoskema/schemafile"
)

const sampleDoc = `
name: scores
extensions: [scores, txt]
delimiter: "\t"
empty_column: "."
can_metadata: -1
fields:
  - name: chrom
    kind: string
    accessor: seqname
  - name: score
    kind: range
    min: 0
    max: 1000
  - name: feature
    kind: case_insensitive
    match: exon
`

func TestLoad_BuildsDescriptor(t *testing.T) {
	d, err := schemafile.Load(strings.NewReader(sampleDoc))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if d.Name() != "scores" || d.Metadata() != genoskema.MetadataOptional {
		t.Fatalf("metadata wrong: %q %v", d.Name(), d.Metadata())
	}
	accs := d.Accessors()
	if len(accs) != 3 || accs[0] != "seqname" || accs[1] != "score" {
		t.Fatalf("Accessors() = %v", accs)
	}
	if !d.ValidateField("score", "500") {
		t.Fatalf("score 500 should validate")
	}
	if d.ValidateField("score", "2000") {
		t.Fatalf("score 2000 must fail its range")
	}
	if !d.ValidateField("feature", "EXON") {
		t.Fatalf("case_insensitive match must fold case")
	}
}

func TestLoad_RejectsMalformedDocuments(t *testing.T) {
	cases := []struct {
		name string
		doc  string
	}{
		{"no name", "fields:\n  - name: a\n    kind: string\n"},
		{"no fields", "name: x\n"},
		{"field without kind", "name: x\nfields:\n  - name: a\n"},
		{"field without name", "name: x\nfields:\n  - kind: string\n"},
		{"half-open range", "name: x\nfields:\n  - name: a\n    kind: range\n    min: 0\n"},
		{"bad metadata mode", "name: x\ncan_metadata: 2\nfields:\n  - name: a\n    kind: string\n"},
	}
	for _, tc := range cases {
		_, err := schemafile.Load(strings.NewReader(tc.doc))
		var cfgErr *genoskema.ConfigError
		if err == nil || !errors.As(err, &cfgErr) {
			t.Errorf("%s: expected ConfigError, got %v", tc.name, err)
		}
	}
}

func TestLoad_YAMLSyntaxErrorPassesThrough(t *testing.T) {
	_, err := schemafile.Load(strings.NewReader(":\n\t- bad"))
	if err == nil {
		t.Fatalf("expected a decode error")
	}
	var cfgErr *genoskema.ConfigError
	if errors.As(err, &cfgErr) {
		t.Fatalf("syntax errors are not config errors: %v", err)
	}
}
