package service

import (
	"arena-tracker/internal/api"
	"arena-tracker/internal/config"
	"arena-tracker/internal/domain"
	"arena-tracker/internal/metrics"
	"arena-tracker/internal/stats"
	"context"
	"errors"
	"fmt"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

const (
	OutcomeOK       = "ok"
	OutcomeInvalid  = "invalid"
	OutcomeNotFound = "not_found"
	OutcomeError    = "error"
)

// ArenaService runs the full query: identity, match list, match details, aggregation.
type ArenaService struct {
	accounts *AccountService
	matches  *MatchService
	roster   *RosterService
	cfg      *config.Config
	metrics  *metrics.Metrics
	logger   zerolog.Logger
}

func NewArenaService(accounts *AccountService, matches *MatchService, roster *RosterService, cfg *config.Config, m *metrics.Metrics, logger zerolog.Logger) *ArenaService {
	return &ArenaService{
		accounts: accounts,
		matches:  matches,
		roster:   roster,
		cfg:      cfg,
		metrics:  m,
		logger:   logger,
	}
}

// BuildReport parses a raw "Name#Tag" Riot ID and builds its report. Malformed input fails
// before any upstream call.
func (s *ArenaService) BuildReport(ctx context.Context, riotID string) (*domain.ArenaReport, error) {
	identity, err := domain.ParseRiotID(riotID)
	if err != nil {
		s.metrics.ObserveQuery(OutcomeInvalid, 0)
		return nil, err
	}
	return s.BuildReportFor(ctx, identity)
}

func (s *ArenaService) BuildReportFor(ctx context.Context, identity domain.PlayerIdentity) (report *domain.ArenaReport, err error) {
	start := time.Now()
	defer func() {
		s.metrics.ObserveQuery(outcome(err), time.Since(start))
	}()

	if s.cfg.QueryTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.QueryTimeout)
		defer cancel()
	}

	ctx = api.WithLimiter(ctx, NewQueryLimiter(s.cfg))

	var (
		roster   []string
		puuid    string
		matchIDs []string
		records  []domain.MatchParticipantRecord
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		roster, err = s.roster.Champions(gCtx)
		return err
	})
	g.Go(func() error {
		var err error
		if puuid, err = s.accounts.ResolvePUUID(gCtx, identity); err != nil {
			return err
		}
		if matchIDs, err = s.matches.ListArenaMatchIDs(gCtx, puuid); err != nil {
			return err
		}
		records, err = s.matches.FetchParticipantRecords(gCtx, puuid, matchIDs)
		return err
	})

	if err := g.Wait(); err != nil {
		s.logger.Error().Err(err).Str("riot_id", identity.String()).Msg("arena stats query failed")
		return nil, fmt.Errorf("arena stats for %s: %w", identity, err)
	}

	id, err := gonanoid.New()
	if err != nil {
		return nil, fmt.Errorf("failed to generate report id: %w", err)
	}

	report = &domain.ArenaReport{
		ID:          id,
		Identity:    identity,
		Puuid:       puuid,
		MatchCount:  len(matchIDs),
		Records:     records,
		Champions:   stats.Aggregate(records, roster),
		Overall:     stats.Overall(records),
		Series:      stats.PlacementSeries(records),
		GeneratedAt: time.Now().UTC(),
	}

	s.logger.Info().
		Str("report_id", report.ID).
		Str("riot_id", identity.String()).
		Int("match_count", report.MatchCount).
		Int("records", len(records)).
		Dur("elapsed", time.Since(start)).
		Msg("arena report built")
	return report, nil
}

func outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeOK
	case errors.Is(err, domain.ErrMalformedRiotID):
		return OutcomeInvalid
	case errors.Is(err, domain.ErrAccountNotFound):
		return OutcomeNotFound
	default:
		return OutcomeError
	}
}
