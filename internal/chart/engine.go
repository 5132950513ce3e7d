package chart

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"jyotish/internal/bala"
	"jyotish/internal/config"
	"jyotish/internal/dasha"
	"jyotish/internal/ephemeris"
	"jyotish/internal/kp"
	"jyotish/internal/maitri"
	"jyotish/internal/panchang"
	"jyotish/internal/varga"
	"jyotish/internal/yoga"
	"jyotish/internal/zodiac"
)

// Section names accepted in Options.Sections.
const (
	SectionDivisional = "divisional"
	SectionDashas     = "dashas"
	SectionBalas      = "balas"
	SectionMaitri     = "maitri"
	SectionKarakas    = "karakas"
	SectionTransits   = "transits"
	SectionYogas      = "yogas"
	SectionPanchang   = "panchang"
)

// Options selects what ComputeChart assembles.
type Options struct {
	// Vargas is the raw divisional-chart selector ("D1,D9"). Empty uses
	// the configured default set.
	Vargas string

	// Sections limits the computed sections; empty means all.
	Sections []string

	// TransitAt supplies the instant for the transits section. When nil
	// the section is omitted even if requested.
	TransitAt *ephemeris.BirthMoment
}

func (o Options) wants(section string) bool {
	if len(o.Sections) == 0 {
		return true
	}
	for _, s := range o.Sections {
		if s == section {
			return true
		}
	}
	return false
}

// Engine computes derived charts through a single ephemeris adapter.
// It is stateless between requests and safe for concurrent use.
type Engine struct {
	adapter ephemeris.Adapter
	cfg     *config.Config
	log     *zap.Logger
	yogas   *yoga.Engine
}

// New builds an Engine. A nil logger is replaced with a no-op one.
func New(adapter ephemeris.Adapter, cfg *config.Config, log *zap.Logger) (*Engine, error) {
	if adapter == nil {
		return nil, fmt.Errorf("chart: nil ephemeris adapter")
	}
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if log == nil {
		log = zap.NewNop()
	}
	ye, err := yoga.NewEngine(log.Named("yoga"))
	if err != nil {
		return nil, err
	}
	return &Engine{adapter: adapter, cfg: cfg, log: log, yogas: ye}, nil
}

// adapterErr wraps a provider failure unless it already carries the
// ephemeris error taxonomy.
func adapterErr(op string, err error) error {
	var eerr *ephemeris.Error
	if errors.As(err, &eerr) {
		return err
	}
	return &ephemeris.Error{Op: op, Reason: "adapter failure", Err: err}
}

// base is the D1 context every section reads from.
type base struct {
	snap      *ephemeris.Snapshot
	times     ephemeris.SunTimes
	positions map[zodiac.Planet]zodiac.Position
	signOf    map[zodiac.Planet]zodiac.Sign
	ascendant zodiac.Position
}

// prepare runs the single adapter acquisition and builds the D1 state.
func (e *Engine) prepare(ctx context.Context, m ephemeris.BirthMoment) (*base, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}

	snap, err := e.adapter.Snapshot(ctx, m)
	if err != nil {
		return nil, adapterErr("snapshot", err)
	}
	if err := snap.Normalize(); err != nil {
		return nil, err
	}
	times, err := e.adapter.SunTimes(ctx, m)
	if err != nil {
		return nil, adapterErr("sun_times", err)
	}

	b := &base{
		snap:      snap,
		times:     times,
		positions: make(map[zodiac.Planet]zodiac.Position, len(snap.Bodies)),
		signOf:    make(map[zodiac.Planet]zodiac.Sign, len(snap.Bodies)),
	}
	for p, body := range snap.Bodies {
		pos := zodiac.Resolve(body.Longitude)
		b.positions[p] = pos
		b.signOf[p] = pos.Sign
	}
	b.ascendant = ascendant(snap.SiderealTime, m.Latitude, snap.Ayanamsa)
	return b, nil
}

// ComputeChart derives the full profile for one birth moment. The
// result is a pure function of the moment and the adapter's snapshot;
// any failure is terminal and no partial result is returned.
func (e *Engine) ComputeChart(ctx context.Context, m ephemeris.BirthMoment, opts Options) (*Result, error) {
	start := time.Now()
	b, err := e.prepare(ctx, m)
	if err != nil {
		return nil, err
	}

	selector := opts.Vargas
	var vargas []int
	if selector == "" {
		vargas = append(vargas, e.cfg.Chart.DefaultVargas...)
	} else {
		vargas = sanitizeSelector(selector)
	}

	res := &Result{
		RequestID: uuid.NewString(),
		Moment:    m,
		Ayanamsa:  b.snap.Ayanamsa,
	}

	g, gctx := errgroup.WithContext(ctx)

	if opts.wants(SectionDivisional) {
		g.Go(func() error {
			charts, err := e.buildCharts(b, vargas)
			if err != nil {
				return err
			}
			res.Charts = charts
			return nil
		})
	}
	if opts.wants(SectionDashas) {
		g.Go(func() error {
			res.Dashas = dasha.BuildToDepth(m.UTC(),
				b.positions[zodiac.Moon].Longitude, e.cfg.Dasha.Depth)
			return nil
		})
	}
	if opts.wants(SectionBalas) {
		g.Go(func() error {
			res.Balas = e.buildBalas(m, b)
			return nil
		})
	}
	if opts.wants(SectionMaitri) {
		g.Go(func() error {
			res.Maitri, res.States = buildMaitri(b)
			return nil
		})
	}
	if opts.wants(SectionKarakas) {
		g.Go(func() error {
			res.Karakas = computeKarakas(b.positions)
			return nil
		})
	}
	if opts.wants(SectionYogas) {
		g.Go(func() error {
			matches, err := e.yogas.Detect(&yoga.Input{
				Positions: b.positions,
				Ascendant: b.ascendant.Sign,
			})
			if err != nil {
				return err
			}
			res.Yogas = matches
			return nil
		})
	}
	if opts.wants(SectionPanchang) {
		g.Go(func() error {
			p := panchang.At(
				b.positions[zodiac.Sun].Longitude,
				b.positions[zodiac.Moon].Longitude,
				vedicWeekday(m, b.times),
			)
			res.Panchang = &p
			return nil
		})
	}
	if opts.wants(SectionTransits) && opts.TransitAt != nil {
		at := *opts.TransitAt
		g.Go(func() error {
			transits, err := e.transits(gctx, b, at)
			if err != nil {
				return err
			}
			res.Transits = transits
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	e.log.Debug("chart computed",
		zap.String("request_id", res.RequestID),
		zap.Ints("vargas", vargas),
		zap.Duration("elapsed", time.Since(start)))
	return res, nil
}

// buildCharts derives each requested harmonic from the D1 positions.
func (e *Engine) buildCharts(b *base, vargas []int) (map[string]*DivisionalChart, error) {
	charts := make(map[string]*DivisionalChart, len(vargas))
	for _, n := range vargas {
		c, err := buildChart(n, b)
		if err != nil {
			return nil, err
		}
		charts[fmt.Sprintf("D%d", n)] = c
	}
	return charts, nil
}

func buildChart(n int, b *base) (*DivisionalChart, error) {
	asc, err := varga.Map(n, b.ascendant)
	if err != nil {
		return nil, err
	}

	c := &DivisionalChart{
		Varga:     n,
		Name:      varga.Name(n),
		Ascendant: placement(asc, asc.Sign, false),
		Planets:   make(map[string]*Placement, len(b.positions)),
	}
	for i := 0; i < 12; i++ {
		cusp := zodiac.Resolve(zodiac.Normalize(asc.Longitude + float64(i)*zodiac.SignSpan))
		c.Cusps[i] = placement(cusp, asc.Sign, false)
	}
	for p, pos := range b.positions {
		derived, err := varga.Map(n, pos)
		if err != nil {
			return nil, err
		}
		pl := placement(derived, asc.Sign, b.snap.Bodies[p].Retrograde)
		c.Planets[p.String()] = &pl
	}
	return c, nil
}

func placement(pos zodiac.Position, ascSign zodiac.Sign, retro bool) Placement {
	return Placement{
		Position:   pos,
		House:      ascSign.DistanceTo(pos.Sign),
		Retrograde: retro,
		KP:         kp.Resolve(pos.Longitude),
	}
}

func (e *Engine) buildBalas(m ephemeris.BirthMoment, b *base) *Balas {
	in := &bala.Input{
		Positions: b.positions,
		Speeds:    make(map[zodiac.Planet]float64, len(b.snap.Bodies)),
		Retro:     make(map[zodiac.Planet]bool, len(b.snap.Bodies)),
		Ascendant: b.ascendant,
		Birth:     m.UTC(),
		Sunrise:   b.times.Sunrise,
		Sunset:    b.times.Sunset,
	}
	for p, body := range b.snap.Bodies {
		in.Speeds[p] = body.Speed
		in.Retro[p] = body.Retrograde
	}

	shadbala := bala.ComputeShadbala(in)
	out := &Balas{
		Shadbala:     make(map[string]*bala.Score, len(shadbala)),
		BhavaBala:    bala.ComputeBhavaBala(in, shadbala),
		Ashtakavarga: bala.ComputeAshtakavarga(b.signOf, b.ascendant.Sign),
	}
	for p, s := range shadbala {
		out.Shadbala[p.String()] = s
	}
	return out
}

func buildMaitri(b *base) (map[string]map[string]Relationship, map[string]PlanetState) {
	grahas := zodiac.Grahas()
	rel := make(map[string]map[string]Relationship, len(grahas))
	states := make(map[string]PlanetState, len(grahas))

	for _, a := range grahas {
		row := make(map[string]Relationship, len(grahas)-1)
		for _, o := range grahas {
			if a == o {
				continue
			}
			row[o.String()] = Relationship{
				Natural:  maitri.Natural(a, o),
				Temporal: maitri.Temporal(b.signOf[a], b.signOf[o]),
				Compound: maitri.Compound(a, o, b.signOf),
			}
		}
		rel[a.String()] = row

		pos := b.positions[a]
		d := maitri.Resolve(a, pos)
		states[a.String()] = PlanetState{
			Dignity:   d,
			Baaladi:   maitri.Baaladi(pos),
			Jagradadi: maitri.Jagradadi(d),
			Deeptadi:  maitri.Deeptadi(d),
		}
	}
	return rel, states
}

// transits situates the positions at another instant against the natal
// ascendant and Moon.
func (e *Engine) transits(ctx context.Context, natal *base, at ephemeris.BirthMoment) (map[string]*TransitPlacement, error) {
	tb, err := e.prepare(ctx, at)
	if err != nil {
		return nil, err
	}

	moonSign := natal.signOf[zodiac.Moon]
	out := make(map[string]*TransitPlacement, len(tb.positions))
	for p, pos := range tb.positions {
		out[p.String()] = &TransitPlacement{
			Position:      pos,
			Retrograde:    tb.snap.Bodies[p].Retrograde,
			HouseFromAsc:  natal.ascendant.Sign.DistanceTo(pos.Sign),
			HouseFromMoon: moonSign.DistanceTo(pos.Sign),
		}
	}
	return out, nil
}

// CurrentDasha resolves the running Mahadasha, Antardasha and
// Pratyantardasha at the query instant.
func (e *Engine) CurrentDasha(ctx context.Context, m ephemeris.BirthMoment, instant time.Time) (dasha.Path, error) {
	b, err := e.prepare(ctx, m)
	if err != nil {
		return dasha.Path{}, err
	}
	tree := dasha.Build(m.UTC(), b.positions[zodiac.Moon].Longitude)
	return tree.Current(instant)
}

// vedicWeekday returns the weekday with the day running sunrise to
// sunrise, so a birth before sunrise belongs to the previous vara.
func vedicWeekday(m ephemeris.BirthMoment, times ephemeris.SunTimes) time.Weekday {
	wd := m.Weekday()
	if !times.Sunrise.IsZero() && m.UTC().Before(times.Sunrise) {
		wd = (wd + 6) % 7
	}
	return wd
}
