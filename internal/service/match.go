package service

import (
	"arena-tracker/internal/api"
	"arena-tracker/internal/config"
	"arena-tracker/internal/constants"
	"arena-tracker/internal/domain"
	"arena-tracker/internal/metrics"
	"arena-tracker/internal/repository"
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

type MatchService struct {
	riot    *api.RiotClient
	repo    *repository.MatchParticipantRepository
	cfg     *config.Config
	metrics *metrics.Metrics
	logger  zerolog.Logger
}

func NewMatchService(riot *api.RiotClient, repo *repository.MatchParticipantRepository, cfg *config.Config, m *metrics.Metrics, logger zerolog.Logger) *MatchService {
	return &MatchService{riot: riot, repo: repo, cfg: cfg, metrics: m, logger: logger}
}

// ListArenaMatchIDs pages through the player's Arena history until an empty page.
func (s *MatchService) ListArenaMatchIDs(ctx context.Context, puuid string) ([]string, error) {
	ids := make([]string, 0)
	for start := 0; ; start += constants.MatchIDsPageSize {
		page, err := s.riot.GetMatchIDs(ctx, puuid, constants.ArenaQueueID, start, constants.MatchIDsPageSize)
		if err != nil {
			return nil, fmt.Errorf("failed to list arena matches at offset %d: %w", start, err)
		}
		if len(page) == 0 {
			break
		}
		s.logger.Debug().Str("puuid", puuid).Int("start", start).Int("page_size", len(page)).Msg("fetched match id page")
		ids = append(ids, page...)
	}

	s.logger.Info().Str("puuid", puuid).Int("match_count", len(ids)).Msg("arena matches listed")
	return ids, nil
}

// FetchParticipantRecords returns the player's record for every match they appear in,
// in the order of matchIDs.
func (s *MatchService) FetchParticipantRecords(ctx context.Context, puuid string, matchIDs []string) ([]domain.MatchParticipantRecord, error) {
	if _, ok := api.LimiterFrom(ctx); !ok {
		ctx = api.WithLimiter(ctx, NewQueryLimiter(s.cfg))
	}
	found := make([]*domain.MatchParticipantRecord, len(matchIDs))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(s.cfg.FetchConcurrency)

	for i, matchID := range matchIDs {
		i, matchID := i, matchID
		g.Go(func() error {
			participants, err := s.participants(gCtx, matchID)
			if err != nil {
				return err
			}
			for _, p := range participants {
				if p.Puuid == puuid {
					found[i] = &domain.MatchParticipantRecord{
						Champion:  p.ChampionName,
						Placement: p.Placement,
						MatchID:   matchID,
					}
					return nil
				}
			}
			s.metrics.ParticipantMissing()
			s.logger.Debug().Str("match_id", matchID).Str("puuid", puuid).Msg("player not in match, skipping")
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to fetch match details: %w", err)
	}

	records := make([]domain.MatchParticipantRecord, 0, len(matchIDs))
	for _, r := range found {
		if r != nil {
			records = append(records, *r)
		}
	}
	return records, nil
}

func (s *MatchService) participants(ctx context.Context, matchID string) ([]domain.MatchParticipant, error) {
	// a sibling fetch already failed
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	cached, err := s.repo.GetByMatchID(ctx, matchID)
	if err != nil {
		s.logger.Warn().Err(err).Str("match_id", matchID).Msg("failed to read match cache")
	} else if len(cached) > 0 {
		s.metrics.CacheHit()
		return cached, nil
	}

	match, err := s.riot.GetMatch(ctx, matchID)
	if err != nil {
		return nil, fmt.Errorf("match %s: %w", matchID, err)
	}

	participants := make([]domain.MatchParticipant, 0, len(match.Info.Participants))
	for _, p := range match.Info.Participants {
		participants = append(participants, domain.MatchParticipant{
			MatchID:      matchID,
			Puuid:        p.Puuid,
			ChampionName: p.ChampionName,
			Placement:    p.Placement,
		})
	}

	if err := s.repo.UpsertBatch(ctx, participants); err != nil {
		s.logger.Warn().Err(err).Str("match_id", matchID).Msg("failed to cache match participants")
		return participants, nil
	}
	if n, err := s.repo.CountMatches(ctx); err == nil {
		s.metrics.CachedMatches(n)
	}
	return participants, nil
}

// NewQueryLimiter builds the token bucket shared by every Riot call of one query.
func NewQueryLimiter(cfg *config.Config) *rate.Limiter {
	return rate.NewLimiter(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst)
}
