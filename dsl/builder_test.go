package dsl_test

import (
	"errors"
	"testing"

	genoskema "github.com/reoring/genoskema"
	"github.com/reoring/genoskema/dsl"
)

func TestBuilder_BuildsDescriptor(t *testing.T) {
	d, err := dsl.Format("toy").
		Extensions("toy").
		Delimiter("\t").
		EmptyColumn(".").
		Metadata(genoskema.MetadataOptional).
		MetadataInfo("description", "free text").
		Field("chrom", genoskema.KindString).Accessor("seqname").
		Field("pos", genoskema.KindInteger).
		Field("score", genoskema.KindRange).Range(0, 1000).
		Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if d.Name() != "toy" || d.Delimiter() != "\t" {
		t.Fatalf("config lost: %q %q", d.Name(), d.Delimiter())
	}
	accs := d.Accessors()
	if len(accs) != 3 || accs[0] != "seqname" || accs[1] != "pos" {
		t.Fatalf("Accessors() = %v", accs)
	}
	if !d.ValidateField("score", "250") || d.ValidateField("score", "1500") {
		t.Fatalf("range match not wired")
	}
	if desc, ok := d.MetadataInfo("description"); !ok || desc != "free text" {
		t.Fatalf("metadata info lost")
	}
}

func TestBuilder_EmptyFieldSetFails(t *testing.T) {
	_, err := dsl.Format("empty").Build()
	var cfgErr *genoskema.ConfigError
	if err == nil || !errors.As(err, &cfgErr) {
		t.Fatalf("expected ConfigError, got %v", err)
	}
}

func TestBuilder_RedefiningFieldKeepsOrder(t *testing.T) {
	d, err := dsl.Format("re").
		Field("a", genoskema.KindString).
		Field("b", genoskema.KindString).
		Field("a", genoskema.KindInteger).
		Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	fields := d.Fields()
	if len(fields) != 2 || fields[0] != "a" || fields[1] != "b" {
		t.Fatalf("Fields() = %v", fields)
	}
	if d.FieldInfo("a").Kind != genoskema.KindInteger {
		t.Fatalf("redefinition should win: %v", d.FieldInfo("a"))
	}
}

func TestBuilder_CustomRegistry(t *testing.T) {
	reg := genoskema.NewRegistry()
	reg.Register("always_no", func(string, any) bool { return false })
	d, err := dsl.Format("custom").
		Registry(reg).
		Field("x", "always_no").
		Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if d.ValidateField("x", "anything") {
		t.Fatalf("custom kind should dispatch through the supplied registry")
	}
}
