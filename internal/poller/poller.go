package poller

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/preston-bernstein/team-scores-service/internal/app/championship"
	appgames "github.com/preston-bernstein/team-scores-service/internal/app/games"
	"github.com/preston-bernstein/team-scores-service/internal/domain/cards"
	"github.com/preston-bernstein/team-scores-service/internal/domain/scoreboard"
	"github.com/preston-bernstein/team-scores-service/internal/domain/teams"
	"github.com/preston-bernstein/team-scores-service/internal/logging"
	"github.com/preston-bernstein/team-scores-service/internal/metrics"
	"github.com/preston-bernstein/team-scores-service/internal/providers"
	"github.com/preston-bernstein/team-scores-service/internal/view"
)

const defaultInterval = 60 * time.Second

// ErrNoEndpoint is reported for a team whose league has no configured endpoint.
var ErrNoEndpoint = errors.New("no endpoint configured for league")

// Config fixes what the poller refreshes. It is read once at construction.
type Config struct {
	Leagues  []teams.LeagueEndpoint
	Teams    []teams.FollowedTeam
	Resolver *championship.Resolver
	Interval time.Duration
}

// Poller refreshes every followed team's card on an interval.
type Poller struct {
	provider providers.ScoreboardProvider
	renderer view.Renderer
	resolver *championship.Resolver
	teams    []teams.FollowedTeam
	fetchSet []teams.LeagueEndpoint
	logger   *slog.Logger
	metrics  *metrics.Recorder
	interval time.Duration
	now      func() time.Time
	newID    func() string

	ticker   *time.Ticker
	done     chan struct{}
	stopOnce sync.Once
	startMu  sync.Mutex
	started  bool

	statusMu sync.RWMutex
	status   Status
}

// Status describes the recent health of the poller loop.
type Status struct {
	ConsecutiveFailures int
	LastError           string
	LastAttempt         time.Time
	LastSuccess         time.Time
}

// IsReady reports whether the poller has had a recent success and is not failing repeatedly.
func (s Status) IsReady() bool {
	if s.LastSuccess.IsZero() {
		return false
	}
	return s.ConsecutiveFailures < 3
}

type fetchResult struct {
	doc scoreboard.Document
	err error
}

// New constructs a Poller with sane defaults.
func New(provider providers.ScoreboardProvider, renderer view.Renderer, cfg Config, logger *slog.Logger, recorder *metrics.Recorder) *Poller {
	interval := cfg.Interval
	if interval <= 0 {
		interval = defaultInterval
	}
	p := &Poller{
		provider: provider,
		renderer: renderer,
		resolver: cfg.Resolver,
		teams:    append([]teams.FollowedTeam(nil), cfg.Teams...),
		logger:   logger,
		metrics:  recorder,
		interval: interval,
		now:      time.Now,
		newID:    uuid.NewString,
		done:     make(chan struct{}),
	}
	p.fetchSet = p.leaguesToFetch(cfg.Leagues)
	return p
}

// ViewKeys lists every view the poller renders, in display order.
func (p *Poller) ViewKeys() []string {
	keys := make([]string, 0, len(p.teams)+1)
	for _, team := range p.teams {
		keys = append(keys, team.ViewKey)
	}
	if p.championshipEnabled() {
		keys = append(keys, cards.ChampionshipViewKey)
	}
	return keys
}

// Start begins polling until the context is cancelled or Stop is called.
// Cycles run back to back on one goroutine; ticks that fire during a cycle are dropped.
func (p *Poller) Start(ctx context.Context) {
	p.startMu.Lock()
	if p.started {
		p.startMu.Unlock()
		return
	}
	p.started = true
	p.ticker = time.NewTicker(p.interval)
	p.startMu.Unlock()

	go func() {
		logging.Info(p.logger, "poller started", slog.Int64(logging.FieldDurationMS, p.interval.Milliseconds()))
		// Initial refresh so cards are populated on boot.
		_ = p.RunCycle(ctx)

		for {
			select {
			case <-ctx.Done():
				p.stopTicker()
				logging.Info(p.logger, "poller stopped")
				return
			case <-p.done:
				p.stopTicker()
				logging.Info(p.logger, "poller stopped")
				return
			case <-p.ticker.C:
				_ = p.RunCycle(ctx)
			}
		}
	}()
}

// Stop halts the polling loop.
func (p *Poller) Stop(ctx context.Context) error {
	_ = ctx
	p.stopOnce.Do(func() {
		close(p.done)
		p.stopTicker()
	})
	return nil
}

// RunCycle performs one refresh: every view goes to loading, each needed
// league is fetched once, then every view is re-rendered. A failed league
// only marks its own dependents as errors. The returned error joins the
// failed fetches and is nil when all succeeded.
func (p *Poller) RunCycle(ctx context.Context) error {
	start := p.now()
	p.recordAttempt(start)

	logger := p.logger
	if logger != nil {
		logger = logger.With(slog.String(logging.FieldCycleID, p.newID()))
	}
	ctx = logging.WithLogger(ctx, logger)

	for _, key := range p.ViewKeys() {
		p.renderer.ShowLoading(ctx, key)
	}

	results := p.fetchAll(ctx)

	rendered := 0
	for _, team := range p.teams {
		if p.renderTeam(ctx, team, results) {
			rendered++
		}
	}
	if p.championshipEnabled() {
		p.renderChampionship(ctx, results)
	}

	var errs []error
	for _, league := range p.fetchSet {
		if res := results[league.Key]; res.err != nil {
			errs = append(errs, res.err)
		}
	}
	err := errors.Join(errs...)

	duration := p.now().Sub(start)
	p.metrics.RecordPollerCycle(duration, err)
	if err != nil {
		logging.Error(logger, "refresh cycle had failed fetches", err,
			slog.Int("failed_leagues", len(errs)),
			slog.Int64(logging.FieldDurationMS, duration.Milliseconds()),
		)
		p.recordFailure(err, start)
		return err
	}
	p.recordSuccess(start)
	logging.Info(logger, "refresh cycle complete",
		logging.FieldCount, rendered,
		logging.FieldDurationMS, duration.Milliseconds(),
	)
	return nil
}

// fetchAll issues one concurrent fetch per league and waits for all of them.
func (p *Poller) fetchAll(ctx context.Context) map[string]fetchResult {
	out := make([]fetchResult, len(p.fetchSet))
	var wg sync.WaitGroup
	for i, league := range p.fetchSet {
		wg.Add(1)
		go func(i int, league teams.LeagueEndpoint) {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					out[i] = fetchResult{err: &providers.FetchError{League: league.Key, Err: fmt.Errorf("panic: %v", r)}}
				}
			}()
			doc, err := p.provider.FetchScoreboard(ctx, league)
			out[i] = fetchResult{doc: doc, err: err}
		}(i, league)
	}
	wg.Wait()

	results := make(map[string]fetchResult, len(out))
	for i, league := range p.fetchSet {
		results[league.Key] = out[i]
	}
	return results
}

// renderTeam shows one team's card and reports whether it rendered a summary.
// A panic while building or rendering degrades only this view.
func (p *Poller) renderTeam(ctx context.Context, team teams.FollowedTeam, results map[string]fetchResult) (ok bool) {
	logger := logging.FromContext(ctx, p.logger)
	defer func() {
		if r := recover(); r != nil {
			logging.Error(logger, "rendering team panicked", fmt.Errorf("%v", r), logging.FieldView, team.ViewKey)
			p.renderer.ShowError(ctx, team.ViewKey)
			ok = false
		}
	}()

	res, found := results[team.League]
	if !found {
		logging.Warn(logger, "team league not fetched", logging.FieldView, team.ViewKey, logging.FieldLeague, team.League, logging.FieldError, ErrNoEndpoint)
		p.renderer.ShowError(ctx, team.ViewKey)
		return false
	}
	if res.err != nil {
		p.renderer.ShowError(ctx, team.ViewKey)
		return false
	}

	match, located := appgames.Locate(res.doc, team.Abbreviation)
	if !located {
		p.renderer.ShowIdle(ctx, team.ViewKey)
		return false
	}
	summary := appgames.Build(match.Event, match.Competition, team.Sport)
	p.renderer.ShowSummary(ctx, team.ViewKey, summary)
	logging.Debug(logger, "team rendered",
		logging.FieldView, team.ViewKey,
		logging.FieldTeam, team.Abbreviation,
		logging.FieldState, string(summary.Status),
	)
	return true
}

// renderChampionship errors when any title league failed, since a title game
// may be hiding in the missing scoreboard.
func (p *Poller) renderChampionship(ctx context.Context, results map[string]fetchResult) {
	key := cards.ChampionshipViewKey
	defer func() {
		if r := recover(); r != nil {
			logging.Error(logging.FromContext(ctx, p.logger), "rendering championship panicked", fmt.Errorf("%v", r), logging.FieldView, key)
			p.renderer.ShowError(ctx, key)
		}
	}()

	docs := make(map[string]scoreboard.Document)
	for _, league := range p.resolver.Leagues() {
		res, found := results[league]
		if !found || res.err != nil {
			p.renderer.ShowError(ctx, key)
			return
		}
		docs[league] = res.doc
	}

	match, ok := p.resolver.Resolve(docs)
	if !ok {
		p.renderer.ShowIdle(ctx, key)
		return
	}
	name := match.Event.Name
	if name == "" {
		name = match.Event.ShortName
	}
	p.renderer.ShowChampionship(ctx, cards.Championship{
		League:    match.Rule.Label,
		Logo:      match.Rule.Logo,
		EventName: name,
	}, match.Summary)
}

func (p *Poller) championshipEnabled() bool {
	return len(p.resolver.Leagues()) > 0
}

// leaguesToFetch keeps configured endpoints that some team or title rule
// needs, in configuration order, each once.
func (p *Poller) leaguesToFetch(all []teams.LeagueEndpoint) []teams.LeagueEndpoint {
	needed := make(map[string]bool)
	for _, team := range p.teams {
		needed[team.League] = true
	}
	for _, league := range p.resolver.Leagues() {
		needed[league] = true
	}

	seen := make(map[string]bool)
	out := make([]teams.LeagueEndpoint, 0, len(needed))
	for _, league := range all {
		if !needed[league.Key] || seen[league.Key] {
			continue
		}
		seen[league.Key] = true
		out = append(out, league)
	}
	for key := range needed {
		if !seen[key] {
			logging.Warn(p.logger, "league has no endpoint", logging.FieldLeague, key)
		}
	}
	return out
}

func (p *Poller) stopTicker() {
	p.startMu.Lock()
	defer p.startMu.Unlock()
	if p.ticker != nil {
		p.ticker.Stop()
	}
}

func (p *Poller) recordAttempt(at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.LastAttempt = at
}

func (p *Poller) recordSuccess(at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.ConsecutiveFailures = 0
	p.status.LastError = ""
	p.status.LastSuccess = at
}

func (p *Poller) recordFailure(err error, at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.ConsecutiveFailures++
	if err != nil {
		p.status.LastError = err.Error()
	}
	p.status.LastAttempt = at
}

// Status returns a snapshot of the poller's recent health.
func (p *Poller) Status() Status {
	p.statusMu.RLock()
	defer p.statusMu.RUnlock()
	return p.status
}
