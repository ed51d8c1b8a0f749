package genoskema

// Package genoskema provides:
//
// - Declarative descriptors for line-oriented tabular genomic formats (GTF, GFF3, BED)
// - A closed-but-extensible catalog of field validators dispatched by kind (Registry/ValidateAs)
// - A stable validation model via Issues (field, code, message) that is data, never a panic
// - Specializations that let a concrete format override column order and remap
//   representation-dependent values (strand codes) without touching the shared machinery
//
// Design policy:
// - Keep descriptor and validator APIs in the root package; concrete formats live under formats/.
// - Place the fluent builder under dsl/, record access under record/, tokenizing under reader/,
//   and the CLI under cmd/genoskema.
// - Setup errors (malformed field tables) are hard *ConfigError failures; per-value
//   validation outcomes are booleans and Issues so callers can collect them.
//
// Typical usage:
//
//	d := formats.NewGTF()
//	rec := record.FromRow(d, row)
//	if iss := rec.Validate(ctx); len(iss) > 0 { ... }
//
//	ok := d.ValidateAs(genoskema.KindRange, "500", [2]float64{0, 1000})
