// Package yoga detects classical planetary combinations with a Datalog
// rule catalog evaluated by Google Mangle. Chart positions are asserted
// as ground facts, the catalog derives yoga/2 conclusions, and the
// engine reads them back as ordered matches.
package yoga

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/google/mangle/analysis"
	"github.com/google/mangle/ast"
	_ "github.com/google/mangle/builtin"
	mengine "github.com/google/mangle/engine"
	"github.com/google/mangle/factstore"
	"github.com/google/mangle/parse"
	"go.uber.org/zap"

	"jyotish/internal/zodiac"

	_ "embed"
)

//go:embed catalog.mg
var catalog string

// catalogOrder fixes the reporting order of matches. Rules not listed
// here sort after the known set, alphabetically.
var catalogOrder = []string{
	"gajakesari", "budhaditya", "chandra_mangala", "guru_chandala",
	"shakata", "kemadruma",
	"ruchaka", "bhadra", "hamsa", "malavya", "sasa",
	"raja", "dhana", "vipareeta",
}

// Match is one detected yoga with the bodies that satisfied its rule.
type Match struct {
	Name    string          `json:"name"`
	Planets []zodiac.Planet `json:"planets"`
}

// Engine holds the compiled catalog. Detection runs against a fresh
// fact store per call, so a single Engine is safe for concurrent use.
type Engine struct {
	program *analysis.ProgramInfo
	preds   map[string]ast.PredicateSym
	log     *zap.Logger
}

// NewEngine compiles the embedded catalog.
func NewEngine(log *zap.Logger) (*Engine, error) {
	if log == nil {
		log = zap.NewNop()
	}
	unit, err := parse.Unit(bytes.NewReader([]byte(catalog)))
	if err != nil {
		return nil, fmt.Errorf("parse yoga catalog: %w", err)
	}
	program, err := analysis.AnalyzeOneUnit(unit, nil)
	if err != nil {
		return nil, fmt.Errorf("analyze yoga catalog: %w", err)
	}
	preds := make(map[string]ast.PredicateSym, len(program.Decls))
	for sym := range program.Decls {
		preds[sym.Symbol] = sym
	}
	for _, name := range []string{"planet_house", "planet_sign", "house_lord", "dignity", "dist", "flank_count", "yoga"} {
		if _, ok := preds[name]; !ok {
			return nil, fmt.Errorf("yoga catalog is missing predicate %s", name)
		}
	}
	return &Engine{program: program, preds: preds, log: log}, nil
}

// Detect evaluates the catalog against one chart.
func (e *Engine) Detect(in *Input) ([]Match, error) {
	store := factstore.NewSimpleInMemoryStore()
	atoms, err := e.chartAtoms(in)
	if err != nil {
		return nil, err
	}
	for _, a := range atoms {
		store.Add(a)
	}

	if _, err := mengine.EvalProgramWithStats(e.program, store); err != nil {
		return nil, fmt.Errorf("evaluate yoga catalog: %w", err)
	}
	e.log.Debug("yoga catalog evaluated", zap.Int("facts", len(atoms)))

	return e.collect(store)
}

// collect reads yoga/2 rows and groups them into ordered, duplicate-free
// matches.
func (e *Engine) collect(store factstore.FactStore) ([]Match, error) {
	byName := make(map[string]map[zodiac.Planet]bool)
	err := store.GetFacts(ast.NewQuery(e.preds["yoga"]), func(atom ast.Atom) error {
		if len(atom.Args) != 2 {
			return fmt.Errorf("yoga fact has arity %d", len(atom.Args))
		}
		name, ok := atom.Args[0].(ast.Constant)
		if !ok {
			return fmt.Errorf("yoga name is not a constant: %v", atom.Args[0])
		}
		body, ok := atom.Args[1].(ast.Constant)
		if !ok {
			return fmt.Errorf("yoga body is not a constant: %v", atom.Args[1])
		}
		p, ok := planetFromSymbol(body.Symbol)
		if !ok {
			return fmt.Errorf("unknown planet symbol %s", body.Symbol)
		}
		key := trimSlash(name.Symbol)
		if byName[key] == nil {
			byName[key] = make(map[zodiac.Planet]bool)
		}
		byName[key][p] = true
		return nil
	})
	if err != nil {
		return nil, err
	}

	matches := make([]Match, 0, len(byName))
	for name, set := range byName {
		m := Match{Name: name}
		for _, p := range zodiac.Grahas() {
			if set[p] {
				m.Planets = append(m.Planets, p)
			}
		}
		matches = append(matches, m)
	}
	sort.Slice(matches, func(i, j int) bool {
		a, b := catalogRank(matches[i].Name), catalogRank(matches[j].Name)
		if a != b {
			return a < b
		}
		return matches[i].Name < matches[j].Name
	})
	return matches, nil
}

func catalogRank(name string) int {
	for i, n := range catalogOrder {
		if n == name {
			return i
		}
	}
	return len(catalogOrder)
}

func trimSlash(s string) string {
	if len(s) > 0 && s[0] == '/' {
		return s[1:]
	}
	return s
}
