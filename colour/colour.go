// Package colour provides the colour-name lookup consulted by the colour
// validator's fallback path. Lookup is a pure function over a fixed table of
// names commonly seen in browser-track files.
package colour

import (
	"strconv"
	"strings"
)

// RGB is a resolved colour triple.
type RGB struct {
	R, G, B uint8
}

// String renders the triple in the comma-separated form track lines use.
func (c RGB) String() string {
	return strconv.Itoa(int(c.R)) + "," + strconv.Itoa(int(c.G)) + "," + strconv.Itoa(int(c.B))
}

var names = map[string]RGB{
	"black":   {0, 0, 0},
	"white":   {255, 255, 255},
	"red":     {255, 0, 0},
	"green":   {0, 128, 0},
	"lime":    {0, 255, 0},
	"blue":    {0, 0, 255},
	"yellow":  {255, 255, 0},
	"cyan":    {0, 255, 255},
	"magenta": {255, 0, 255},
	"orange":  {255, 165, 0},
	"purple":  {128, 0, 128},
	"brown":   {165, 42, 42},
	"pink":    {255, 192, 203},
	"gray":    {128, 128, 128},
	"grey":    {128, 128, 128},
	"silver":  {192, 192, 192},
	"maroon":  {128, 0, 0},
	"olive":   {128, 128, 0},
	"navy":    {0, 0, 128},
	"teal":    {0, 128, 128},
	"gold":    {255, 215, 0},
	"ivory":   {255, 255, 240},
}

// Lookup resolves a colour name, case-insensitively. The second result is
// false when the name is unknown.
func Lookup(name string) (RGB, bool) {
	c, ok := names[strings.ToLower(strings.TrimSpace(name))]
	return c, ok
}

// Names returns the known colour names. The slice is a copy.
func Names() []string {
	out := make([]string, 0, len(names))
	for n := range names {
		out = append(out, n)
	}
	return out
}
