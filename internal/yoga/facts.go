package yoga

import (
	"fmt"

	"github.com/google/mangle/ast"

	"jyotish/internal/maitri"
	"jyotish/internal/zodiac"
)

// Input is the chart slice the detector consumes: sidereal positions
// for the nine grahas plus the rising sign.
type Input struct {
	Positions map[zodiac.Planet]zodiac.Position
	Ascendant zodiac.Sign
}

var planetSymbols = map[zodiac.Planet]string{
	zodiac.Sun: "/sun", zodiac.Moon: "/moon", zodiac.Mars: "/mars",
	zodiac.Mercury: "/mercury", zodiac.Jupiter: "/jupiter",
	zodiac.Venus: "/venus", zodiac.Saturn: "/saturn",
	zodiac.Rahu: "/rahu", zodiac.Ketu: "/ketu",
}

var dignitySymbols = map[maitri.Dignity]string{
	maitri.Debilitated:   "/debilitated",
	maitri.InEnemySign:   "/enemy",
	maitri.InNeutralSign: "/neutral",
	maitri.InFriendSign:  "/friend",
	maitri.Own:           "/own",
	maitri.Moolatrikona:  "/moolatrikona",
	maitri.Exalted:       "/exalted",
}

func planetFromSymbol(sym string) (zodiac.Planet, bool) {
	for p, s := range planetSymbols {
		if s == sym {
			return p, true
		}
	}
	return 0, false
}

func signSymbol(s zodiac.Sign) string {
	return "/" + lowerASCII(s.String())
}

func lowerASCII(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + 'a' - 'A'
		}
	}
	return string(b)
}

// chartAtoms renders one chart as ground facts for the catalog.
func (e *Engine) chartAtoms(in *Input) ([]ast.Atom, error) {
	if len(in.Positions) == 0 {
		return nil, fmt.Errorf("yoga: no positions supplied")
	}

	var atoms []ast.Atom
	add := func(pred string, args ...ast.BaseTerm) error {
		sym, ok := e.preds[pred]
		if !ok {
			return fmt.Errorf("yoga: predicate %s not in catalog", pred)
		}
		atoms = append(atoms, ast.Atom{Predicate: sym, Args: args})
		return nil
	}
	name := func(s string) (ast.Constant, error) { return ast.Name(s) }

	for p, pos := range in.Positions {
		sym, ok := planetSymbols[p]
		if !ok {
			continue // outer bodies carry no yoga facts
		}
		psym, err := name(sym)
		if err != nil {
			return nil, err
		}
		ssym, err := name(signSymbol(pos.Sign))
		if err != nil {
			return nil, err
		}
		house := in.Ascendant.DistanceTo(pos.Sign)
		if err := add("planet_house", psym, ast.Number(int64(house))); err != nil {
			return nil, err
		}
		if err := add("planet_sign", psym, ssym); err != nil {
			return nil, err
		}
		dsym, err := name(dignitySymbols[maitri.Resolve(p, pos)])
		if err != nil {
			return nil, err
		}
		if err := add("dignity", psym, dsym); err != nil {
			return nil, err
		}
	}

	for h := 1; h <= 12; h++ {
		lord := in.Ascendant.Add(h - 1).Lord()
		lsym, err := name(planetSymbols[lord])
		if err != nil {
			return nil, err
		}
		if err := add("house_lord", ast.Number(int64(h)), lsym); err != nil {
			return nil, err
		}
	}

	for a, apos := range in.Positions {
		sa, ok := planetSymbols[a]
		if !ok {
			continue
		}
		asym, err := name(sa)
		if err != nil {
			return nil, err
		}
		for b, bpos := range in.Positions {
			sb, ok := planetSymbols[b]
			if a == b || !ok {
				continue
			}
			bsym, err := name(sb)
			if err != nil {
				return nil, err
			}
			d := apos.Sign.DistanceTo(bpos.Sign)
			if err := add("dist", asym, bsym, ast.Number(int64(d))); err != nil {
				return nil, err
			}
		}
	}

	if err := add("flank_count", ast.Number(int64(flankCount(in)))); err != nil {
		return nil, err
	}
	return atoms, nil
}

// flankCount counts bodies in the signs either side of the Moon. Only
// the five classical non-luminaries relieve Kemadruma; the Sun, the
// nodes and any outer bodies do not.
func flankCount(in *Input) int {
	moon, ok := in.Positions[zodiac.Moon]
	if !ok {
		return 0
	}
	prev, next := moon.Sign.Add(11), moon.Sign.Add(1)
	n := 0
	for _, p := range []zodiac.Planet{
		zodiac.Mars, zodiac.Mercury, zodiac.Jupiter, zodiac.Venus, zodiac.Saturn,
	} {
		pos, ok := in.Positions[p]
		if !ok {
			continue
		}
		if pos.Sign == prev || pos.Sign == next {
			n++
		}
	}
	return n
}
