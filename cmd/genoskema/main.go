package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	json "github.com/goccy/go-json"

	"github.com/reoring/genoskema"
	"github.com/reoring/genoskema/formats"
	"github.com/reoring/genoskema/i18n"
	"github.com/reoring/genoskema/reader"
	"github.com/reoring/genoskema/record"
	"github.com/reoring/genoskema/schemafile"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	switch os.Args[1] {
	case "validate":
		validateCmd(os.Args[2:])
	case "formats":
		formatsCmd(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: genoskema <validate|formats> [flags]")
	fmt.Fprintln(os.Stderr, "  validate -format gtf [-schema file.yaml] [-json] [-lang en|ja] <file|->")
	fmt.Fprintln(os.Stderr, "  formats")
}

// recordIssues pairs a 1-based record index (data rows only, metadata and
// track lines excluded) with the validation issues of that record.
type recordIssues struct {
	Record int              `json:"record"`
	Issues genoskema.Issues `json:"issues"`
}

func validateCmd(args []string) {
	fs := flag.NewFlagSet("validate", flag.ExitOnError)
	formatName := fs.String("format", "", "format name (gtf, gff3, bed); inferred from the extension when empty")
	schema := fs.String("schema", "", "YAML format definition overriding -format")
	asJSON := fs.Bool("json", false, "emit issues as JSON")
	lang := fs.String("lang", "en", "message language (en/ja)")
	_ = fs.Parse(args)
	if fs.NArg() != 1 {
		usage()
		os.Exit(2)
	}
	path := fs.Arg(0)
	i18n.SetLanguage(*lang)

	desc, err := resolveDescriptor(*formatName, *schema, path)
	if err != nil {
		fmt.Fprintln(os.Stderr, "genoskema:", err)
		os.Exit(2)
	}

	in := os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			fmt.Fprintln(os.Stderr, "genoskema:", err)
			os.Exit(2)
		}
		defer f.Close()
		in = f
	}

	var report []recordIssues
	n := 0
	err = reader.Stream(context.Background(), in, desc, func(row []string) error {
		n++
		rec := record.FromRow(desc, row)
		if iss := rec.Validate(context.Background()); len(iss) > 0 {
			report = append(report, recordIssues{Record: n, Issues: iss})
		}
		return nil
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "genoskema:", err)
		os.Exit(2)
	}

	if *asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			fmt.Fprintln(os.Stderr, "genoskema:", err)
			os.Exit(2)
		}
	} else {
		for _, ri := range report {
			for _, is := range ri.Issues {
				fmt.Printf("record %d: %s: %s (%q)\n", ri.Record, is.Field, is.Message, is.Value)
			}
		}
	}
	if len(report) > 0 {
		os.Exit(1)
	}
}

// resolveDescriptor picks the active descriptor: an explicit YAML schema
// wins, then an explicit format name, then the file extension.
func resolveDescriptor(name, schema, path string) (*genoskema.Descriptor, error) {
	if schema != "" {
		return schemafile.LoadFile(schema)
	}
	if name != "" {
		d, ok := formats.Lookup(name)
		if !ok {
			return nil, fmt.Errorf("unknown format %q (known: %s)", name, strings.Join(formats.Names(), ", "))
		}
		return d, nil
	}
	if ext := filepath.Ext(path); ext != "" {
		if d, ok := formats.ByExtension(ext); ok {
			return d, nil
		}
	}
	return nil, fmt.Errorf("cannot infer format for %q; pass -format or -schema", path)
}

func formatsCmd(args []string) {
	fs := flag.NewFlagSet("formats", flag.ExitOnError)
	_ = fs.Parse(args)
	for _, name := range formats.Names() {
		d, _ := formats.Lookup(name)
		fmt.Printf("%-6s extensions=%s fields=%d multitrack=%v\n",
			name, strings.Join(d.Extensions(), ","), len(d.Fields()), d.CanMultitrack())
	}
}
