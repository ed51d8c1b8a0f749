package genoskema

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/reoring/genoskema/colour"
)

// Kind names a validation rule from the catalog. Dispatch is by lookup table,
// so a specialization can register additional kinds without touching the
// shared set.
type Kind string

const (
	KindBoolean         Kind = "boolean"
	KindString          Kind = "string"
	KindInteger         Kind = "integer"
	KindFloat           Kind = "floating_point"
	KindRange           Kind = "range"
	KindCommaSeparated  Kind = "comma_separated"
	KindCaseInsensitive Kind = "case_insensitive"
	KindStrandInteger   Kind = "strand_integer"
	KindStrandPlusMinus Kind = "strand_plusminus"
	KindPhase           Kind = "phase"
	KindRGBString       Kind = "rgb_string"
	KindColour          Kind = "colour"
	KindSequence        Kind = "sequence"
	KindDNASequence     Kind = "dna_sequence"
)

// Predicate decides whether a single raw string value conforms to a kind.
// Predicates are pure and total: any string input yields a boolean, never a
// panic. A missing match parameter where one is required yields false.
type Predicate func(value string, match any) bool

var (
	integerRe   = regexp.MustCompile(`^[+-]?[0-9]+$`)
	floatRe     = regexp.MustCompile(`^[+-]?[0-9]+(\.[0-9]+)?$`)
	commaSepRe  = regexp.MustCompile(`^\w+(,\w+)*,?$`)
	rgbTripleRe = regexp.MustCompile(`^[0-9]{1,3},[0-9]{1,3},[0-9]{1,3}$`)
	hexColourRe = regexp.MustCompile(`^#?([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)
	proteinRe   = regexp.MustCompile(`^[ACDEFGHIKLMNPQRSTUVWYacdefghiklmnpqrstuvwy]+$`)
	dnaRe       = regexp.MustCompile(`^[ACGTNacgtn]+$`)
)

// Registry maps kinds to predicates. The zero value is unusable; construct
// via NewRegistry (built-in catalog) and extend with Register. A Registry is
// built once at format-registration time and read-only afterwards.
type Registry struct {
	preds map[Kind]Predicate
	// resolveColour is the external colour-name fallback consulted only by
	// the colour kind. Nil means name resolution always fails.
	resolveColour func(name string) bool
}

// NewRegistry returns a Registry holding the built-in validator catalog with
// colour names resolved via the colour package.
func NewRegistry() *Registry {
	r := &Registry{
		preds: make(map[Kind]Predicate, 16),
		resolveColour: func(name string) bool {
			_, ok := colour.Lookup(name)
			return ok
		},
	}
	r.preds[KindBoolean] = validBoolean
	r.preds[KindString] = validString
	r.preds[KindInteger] = validInteger
	r.preds[KindFloat] = validFloat
	r.preds[KindRange] = validRange
	r.preds[KindCommaSeparated] = validCommaSeparated
	r.preds[KindCaseInsensitive] = validCaseInsensitive
	r.preds[KindStrandInteger] = validStrandInteger
	r.preds[KindStrandPlusMinus] = validStrandPlusMinus
	r.preds[KindPhase] = validPhase
	r.preds[KindRGBString] = validRGBString
	r.preds[KindColour] = r.validColour
	r.preds[KindSequence] = validSequence
	r.preds[KindDNASequence] = validDNASequence
	return r
}

// Register adds or replaces the predicate for a kind. Intended to run during
// format setup, before the registry is shared.
func (r *Registry) Register(k Kind, p Predicate) {
	if k == "" || p == nil {
		return
	}
	r.preds[k] = p
}

// SetColourLookup replaces the colour-name fallback. A nil lookup disables
// name resolution without disabling the numeric and hex colour forms.
func (r *Registry) SetColourLookup(fn func(name string) bool) {
	r.resolveColour = fn
	r.preds[KindColour] = r.validColour
}

// Validate resolves kind to a predicate and applies it. An unknown kind or an
// empty kind fails closed: the result is false, never an error.
func (r *Registry) Validate(k Kind, value string, match any) bool {
	if k == "" {
		return false
	}
	p, ok := r.preds[k]
	if !ok {
		return false
	}
	return p(value, match)
}

// Kinds returns the registered kind names, for diagnostics.
func (r *Registry) Kinds() []Kind {
	out := make([]Kind, 0, len(r.preds))
	for k := range r.preds {
		out = append(out, k)
	}
	return out
}

func validBoolean(v string, _ any) bool {
	return v == "0" || v == "1"
}

// validString accepts any printable non-empty value, or requires equality with
// the match literal when one is supplied.
func validString(v string, match any) bool {
	if m, ok := matchString(match); ok {
		return v == m
	}
	if v == "" {
		return false
	}
	for _, r := range v {
		if !unicode.IsPrint(r) {
			return false
		}
	}
	return true
}

func validInteger(v string, _ any) bool {
	return integerRe.MatchString(v)
}

func validFloat(v string, _ any) bool {
	return floatRe.MatchString(v)
}

// validRange requires a [min,max] match parameter; without one nothing
// validates ("any range" is not assumed).
func validRange(v string, match any) bool {
	min, max, ok := matchRange(match)
	if !ok {
		return false
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return false
	}
	return f >= min && f <= max
}

func validCommaSeparated(v string, _ any) bool {
	return commaSepRe.MatchString(v)
}

func validCaseInsensitive(v string, match any) bool {
	m, ok := matchString(match)
	if !ok {
		return false
	}
	return strings.EqualFold(v, m)
}

func validStrandInteger(v string, _ any) bool {
	return v == "0" || v == "1" || v == "-1"
}

func validStrandPlusMinus(v string, _ any) bool {
	return v == "+" || v == "-" || v == "?" || v == "."
}

func validPhase(v string, _ any) bool {
	return v == "0" || v == "1" || v == "2"
}

func validRGBString(v string, _ any) bool {
	return v == "0" || rgbTripleRe.MatchString(v)
}

// validColour accepts "0", an rgb triple, a 3/6-digit hex code with optional
// leading '#', or a name the external lookup resolves.
func (r *Registry) validColour(v string, _ any) bool {
	if validRGBString(v, nil) {
		return true
	}
	if hexColourRe.MatchString(v) {
		return true
	}
	if r.resolveColour == nil {
		return false
	}
	return r.resolveColour(v)
}

func validSequence(v string, _ any) bool {
	return proteinRe.MatchString(v)
}

func validDNASequence(v string, _ any) bool {
	return dnaRe.MatchString(v)
}

// matchString extracts a literal match parameter.
func matchString(match any) (string, bool) {
	switch m := match.(type) {
	case string:
		return m, true
	default:
		return "", false
	}
}

// matchRange extracts a [min,max] match parameter. Accepts the canonical
// [2]float64 plus the slice shapes a YAML or literal definition produces.
func matchRange(match any) (min, max float64, ok bool) {
	switch m := match.(type) {
	case [2]float64:
		return m[0], m[1], true
	case []float64:
		if len(m) == 2 {
			return m[0], m[1], true
		}
	case [2]int:
		return float64(m[0]), float64(m[1]), true
	case []int:
		if len(m) == 2 {
			return float64(m[0]), float64(m[1]), true
		}
	}
	return 0, 0, false
}
