// Package battle resolves request names through a data provider and runs the engine.
package battle

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"pokecalc-service/internal/damage"
	"pokecalc-service/internal/domain/pokemon"
	"pokecalc-service/internal/logging"
	"pokecalc-service/internal/matchup"
	"pokecalc-service/internal/metrics"
	"pokecalc-service/internal/providers"
	"pokecalc-service/internal/simulate"
	"pokecalc-service/internal/typechart"
)

const (
	kindDamage    = "damage"
	kindMatchup   = "matchup"
	kindRecommend = "recommend"
	kindSimulate  = "simulate"
)

// Options tunes lookups and request defaults. Zero values use package defaults.
type Options struct {
	LookupTimeout  time.Duration
	DefaultLevel   int
	RecommendSize  int
	RecommendLimit int
}

// Service coordinates provider lookups with the damage, matchup and simulation engines.
type Service struct {
	provider  providers.DataProvider
	simulator *simulate.Simulator
	recorder  *metrics.Recorder
	logger    *slog.Logger
	opts      Options
}

// NewService constructs a Service. A nil simulator uses the embedded moveset table.
func NewService(provider providers.DataProvider, simulator *simulate.Simulator, recorder *metrics.Recorder, logger *slog.Logger, opts Options) (*Service, error) {
	if simulator == nil {
		moves, err := simulate.DefaultMoveset()
		if err != nil {
			return nil, err
		}
		simulator = simulate.New(moves)
	}
	if opts.DefaultLevel <= 0 || opts.DefaultLevel > maxLevel {
		opts.DefaultLevel = pokemon.DefaultLevel
	}
	return &Service{
		provider:  provider,
		simulator: simulator,
		recorder:  recorder,
		logger:    logger,
		opts:      opts,
	}, nil
}

// Species resolves one species record.
func (s *Service) Species(ctx context.Context, name string) (pokemon.Species, error) {
	out, err := providers.FetchAll(ctx, s.provider, []string{name}, s.opts.LookupTimeout)
	if err != nil {
		return pokemon.Species{}, err
	}
	return out[0], nil
}

// EffectivenessResult is the multiplier for one attacking type against one or two defending types.
type EffectivenessResult struct {
	Attack     pokemon.Type   `json:"attack"`
	Defend     []pokemon.Type `json:"defend"`
	Multiplier float64        `json:"multiplier"`
}

// Effectiveness looks up the type chart.
func (s *Service) Effectiveness(attack string, defend []string) (EffectivenessResult, error) {
	if len(defend) == 0 || len(defend) > 2 {
		return EffectivenessResult{}, fmt.Errorf("%w: need one or two defending types, got %d", ErrInvalidRequest, len(defend))
	}
	at, err := pokemon.ParseType(attack)
	if err != nil {
		return EffectivenessResult{}, err
	}
	dt, err := pokemon.ParseTypes(defend)
	if err != nil {
		return EffectivenessResult{}, err
	}
	return EffectivenessResult{Attack: at, Defend: dt, Multiplier: typechart.Against(at, dt)}, nil
}

// Damage resolves both species and the move, then runs the damage engine.
// Any failed lookup aborts the calculation.
func (s *Service) Damage(ctx context.Context, req DamageRequest) (res damage.Result, err error) {
	defer s.observe(ctx, kindDamage, time.Now(), &err)

	var (
		species []pokemon.Species
		move    pokemon.Move
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		species, err = providers.FetchAll(gctx, s.provider, []string{req.Attacker.Species, req.Defender.Species}, s.opts.LookupTimeout)
		return err
	})
	g.Go(func() error {
		var err error
		move, err = s.move(gctx, req.Move)
		return err
	})
	if err := g.Wait(); err != nil {
		return damage.Result{}, err
	}

	attacker, err := req.Attacker.combatant(species[0], s.opts.DefaultLevel)
	if err != nil {
		return damage.Result{}, fmt.Errorf("attacker: %w", err)
	}
	defender, err := req.Defender.combatant(species[1], s.opts.DefaultLevel)
	if err != nil {
		return damage.Result{}, fmt.Errorf("defender: %w", err)
	}
	return damage.Calculate(attacker, defender, move)
}

func (s *Service) move(ctx context.Context, in MoveInput) (pokemon.Move, error) {
	if in.inline() {
		return in.toMove()
	}
	if in.Name == "" {
		return pokemon.Move{}, fmt.Errorf("%w: move name or type is required", ErrInvalidRequest)
	}
	if s.provider == nil {
		return pokemon.Move{}, providers.ErrProviderUnavailable
	}
	if s.opts.LookupTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.opts.LookupTimeout)
		defer cancel()
	}
	mv, err := s.provider.FetchMove(ctx, in.Name)
	if err != nil {
		return pokemon.Move{}, fmt.Errorf("move %q: %w", in.Name, providers.WrapUnavailable(err))
	}
	return mv, nil
}

// Matchup scores both rosters by type. Names that fail to resolve are
// flagged missing instead of failing the request.
func (s *Service) Matchup(ctx context.Context, req RosterRequest) (a matchup.Analysis, err error) {
	defer s.observe(ctx, kindMatchup, time.Now(), &err)

	mine, enemy, err := s.rosters(ctx, req)
	if err != nil {
		return matchup.Analysis{}, err
	}
	return matchup.Analyze(mine, enemy), nil
}

// Recommend ranks sub-teams of the caller's roster against the opponents.
func (s *Service) Recommend(ctx context.Context, req RosterRequest) (r matchup.Recommendation, err error) {
	defer s.observe(ctx, kindRecommend, time.Now(), &err)

	if len(req.Enemy) == 0 {
		return matchup.Recommendation{}, pokemon.ErrEmptyOpponentRoster
	}
	mine, enemy, err := s.rosters(ctx, req)
	if err != nil {
		return matchup.Recommendation{}, err
	}
	opts := matchup.Options{Size: req.Size, Limit: req.Limit}
	if opts.Size <= 0 {
		opts.Size = s.opts.RecommendSize
	}
	if opts.Limit <= 0 {
		opts.Limit = s.opts.RecommendLimit
	}
	return matchup.Recommend(mine, enemy, opts)
}

// Simulate resolves both species and runs a head-to-head judgment.
func (s *Service) Simulate(ctx context.Context, req SimulateRequest) (r simulate.Result, err error) {
	defer s.observe(ctx, kindSimulate, time.Now(), &err)

	species, err := providers.FetchAll(ctx, s.provider, []string{req.First.Species, req.Second.Species}, s.opts.LookupTimeout)
	if err != nil {
		return simulate.Result{}, err
	}
	first, err := req.First.combatant(species[0], s.opts.DefaultLevel)
	if err != nil {
		return simulate.Result{}, fmt.Errorf("first: %w", err)
	}
	second, err := req.Second.combatant(species[1], s.opts.DefaultLevel)
	if err != nil {
		return simulate.Result{}, fmt.Errorf("second: %w", err)
	}
	return s.simulator.Simulate(first, second)
}

func (s *Service) rosters(ctx context.Context, req RosterRequest) (mine, enemy []matchup.Member, err error) {
	if len(req.Mine) > matchup.MaxRoster || len(req.Enemy) > matchup.MaxRoster {
		return nil, nil, fmt.Errorf("%w: %d and %d members, at most %d each", pokemon.ErrRosterTooLarge, len(req.Mine), len(req.Enemy), matchup.MaxRoster)
	}
	names := append(append([]string(nil), req.Mine...), req.Enemy...)
	resolved := providers.ResolveRoster(ctx, s.provider, names, s.opts.LookupTimeout)
	members := s.members(ctx, resolved)
	return members[:len(req.Mine)], members[len(req.Mine):], nil
}

func (s *Service) members(ctx context.Context, resolved []providers.Resolution) []matchup.Member {
	logger := logging.FromContext(ctx, s.logger)
	out := make([]matchup.Member, len(resolved))
	for i, r := range resolved {
		if r.Err != nil {
			logging.Warn(logger, "roster member unavailable", slog.String(logging.FieldSpecies, r.Name), slog.Any("error", r.Err))
			out[i] = matchup.Member{Name: r.Name, Missing: true}
			continue
		}
		out[i] = matchup.Member{Name: r.Species.Name, Types: r.Species.Types}
	}
	return out
}

func (s *Service) observe(ctx context.Context, kind string, start time.Time, errp *error) {
	elapsed := time.Since(start)
	s.recorder.RecordCalculation(kind, elapsed, *errp)
	logging.Debug(logging.FromContext(ctx, s.logger), "calculation finished",
		slog.String(logging.FieldKind, kind),
		slog.Int64(logging.FieldDurationMS, elapsed.Milliseconds()),
		slog.Bool("ok", *errp == nil),
	)
}
