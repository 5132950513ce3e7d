package chart

import (
	"strconv"
	"strings"

	"jyotish/internal/varga"
)

// defaultVargas is the fallback set when a selector yields nothing
// usable.
var defaultVargas = []int{1, 9, 10}

// sanitizeSelector parses a requested-varga selector such as
// "D1,D9,D10". Tokens survive stray quoting, brackets, whitespace and
// case variants; both "D9" and bare "9" forms are accepted. Tokens that
// remain invalid after cleaning are dropped, and an empty survivor set
// falls back to the default {D1, D9, D10}.
func sanitizeSelector(raw string) []int {
	seen := make(map[int]bool)
	var out []int
	for _, token := range strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == ';' || r == ' '
	}) {
		token = strings.Trim(token, "'\"`[](){} \t")
		token = strings.ToUpper(token)
		token = strings.TrimPrefix(token, "D")
		n, err := strconv.Atoi(token)
		if err != nil || !varga.IsSupported(n) {
			continue
		}
		if !seen[n] {
			seen[n] = true
			out = append(out, n)
		}
	}
	if len(out) == 0 {
		out = append(out, defaultVargas...)
	}
	return out
}
