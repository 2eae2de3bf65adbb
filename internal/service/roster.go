package service

import (
	"arena-tracker/internal/api"
	"arena-tracker/internal/config"
	"arena-tracker/internal/constants"
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

type rosterEntry struct {
	champions []string
	fetchedAt time.Time
}

// RosterService serves the Data Dragon champion roster, cached per version.
type RosterService struct {
	riot   *api.RiotClient
	cfg    *config.Config
	logger zerolog.Logger
	now    func() time.Time

	mu       sync.Mutex
	latest   string
	latestAt time.Time
	versions map[string]rosterEntry
}

func NewRosterService(riot *api.RiotClient, cfg *config.Config, logger zerolog.Logger) *RosterService {
	return &RosterService{
		riot:     riot,
		cfg:      cfg,
		logger:   logger,
		now:      time.Now,
		versions: make(map[string]rosterEntry),
	}
}

// Champions returns the roster in Data Dragon document order.
func (s *RosterService) Champions(ctx context.Context) ([]string, error) {
	version, err := s.version(ctx)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	entry, ok := s.versions[version]
	s.mu.Unlock()
	if ok && s.now().Sub(entry.fetchedAt) < constants.StaticDataTTL {
		return slices.Clone(entry.champions), nil
	}

	champions, err := s.riot.GetChampionRoster(ctx, version)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch champion roster %s: %w", version, err)
	}

	s.mu.Lock()
	s.versions[version] = rosterEntry{champions: champions, fetchedAt: s.now()}
	s.mu.Unlock()

	s.logger.Info().Str("version", version).Int("champions", len(champions)).Msg("champion roster loaded")
	return slices.Clone(champions), nil
}

func (s *RosterService) version(ctx context.Context) (string, error) {
	if s.cfg.DataDragonVersion != "" {
		return s.cfg.DataDragonVersion, nil
	}

	s.mu.Lock()
	latest, latestAt := s.latest, s.latestAt
	s.mu.Unlock()
	if latest != "" && s.now().Sub(latestAt) < constants.StaticDataTTL {
		return latest, nil
	}

	versions, err := s.riot.GetDataDragonVersions(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to fetch data dragon versions: %w", err)
	}
	if len(versions) == 0 {
		return "", fmt.Errorf("data dragon returned no versions")
	}
	version := versions[0]

	s.mu.Lock()
	s.latest, s.latestAt = version, s.now()
	s.mu.Unlock()
	return version, nil
}
