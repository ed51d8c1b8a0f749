package genoskema

// StrandConversion is the bidirectional mapping between an internal numeric
// strand code and a format's external textual token. It is built once at
// format-registration time and held as an explicit immutable field on the
// specialization; there is no package-level table.
type StrandConversion struct {
	toSymbol map[string]string
	toCode   map[string]string
}

// NewStrandConversion builds a conversion from code→symbol pairs. The reverse
// direction is derived.
func NewStrandConversion(pairs map[string]string) StrandConversion {
	c := StrandConversion{
		toSymbol: make(map[string]string, len(pairs)),
		toCode:   make(map[string]string, len(pairs)),
	}
	for code, sym := range pairs {
		c.toSymbol[code] = sym
		c.toCode[sym] = code
	}
	return c
}

// Read maps a stored internal code to its external token. A value outside the
// mapped domain passes through unchanged, which makes Read idempotent on
// already-external values.
func (c StrandConversion) Read(stored string) string {
	if sym, ok := c.toSymbol[stored]; ok {
		return sym
	}
	return stored
}

// Write stores the value as given, whether internal code or external token.
// Validation happens at the record layer, not here.
func (c StrandConversion) Write(value string) string { return value }

// Symbol returns the external token for an internal code.
func (c StrandConversion) Symbol(code string) (string, bool) {
	s, ok := c.toSymbol[code]
	return s, ok
}

// Code returns the internal code for an external token.
func (c StrandConversion) Code(symbol string) (string, bool) {
	s, ok := c.toCode[symbol]
	return s, ok
}

// Table returns a copy of the code→symbol mapping for read-only inspection.
func (c StrandConversion) Table() map[string]string {
	out := make(map[string]string, len(c.toSymbol))
	for k, v := range c.toSymbol {
		out[k] = v
	}
	return out
}
