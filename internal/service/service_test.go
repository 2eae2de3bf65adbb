package service

import (
	"arena-tracker/internal/api"
	"arena-tracker/internal/api/apitest"
	"arena-tracker/internal/config"
	"arena-tracker/internal/database"
	"arena-tracker/internal/metrics"
	"arena-tracker/internal/repository"
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"
	"time"
	"unicode"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

const testVersion = "14.24.1"

type fixture struct {
	up       *apitest.Upstream
	logs     *bytes.Buffer
	reg      *prometheus.Registry
	cfg      *config.Config
	accounts *AccountService
	matches  *MatchService
	roster   *RosterService
	arena    *ArenaService
}

func newFixture(t *testing.T, mutate ...func(*config.Config)) *fixture {
	t.Helper()
	cfg := &config.Config{
		RiotAPIKey:        "RGAPI-test",
		RiotRouting:       "asia",
		DataDragonVersion: testVersion,
		CacheDSN:          fmt.Sprintf("file:%s?mode=memory&cache=shared", dsnName(t)),
		FetchConcurrency:  4,
		RateLimitRPS:      1000,
		RateLimitBurst:    4,
		RetryMaxAttempts:  2,
		RetryBaseDelay:    time.Millisecond,
		RetryMaxDelay:     2 * time.Millisecond,
		QueryTimeout:      10 * time.Second,
	}
	for _, fn := range mutate {
		fn(cfg)
	}

	db, err := database.New(cfg, zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	up := apitest.New()
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)
	riot := api.NewRiotClientWithDoer(cfg, up, m, zerolog.Nop())

	logs := &bytes.Buffer{}
	f := &fixture{up: up, logs: logs, reg: reg, cfg: cfg}
	f.accounts = NewAccountService(riot, zerolog.Nop())
	f.matches = NewMatchService(riot, repository.NewMatchParticipantRepository(db, zerolog.Nop()), cfg, m, zerolog.New(zerolog.SyncWriter(logs)))
	f.roster = NewRosterService(riot, cfg, zerolog.Nop())
	f.arena = NewArenaService(f.accounts, f.matches, f.roster, cfg, m, zerolog.Nop())
	return f
}

func (f *fixture) account(gameName, tagLine, puuid string) {
	f.up.JSON(apitest.AccountPath(gameName, tagLine), 200, api.AccountDTO{Puuid: puuid, GameName: gameName, TagLine: tagLine})
}

func (f *fixture) matchIDs(puuid string, ids ...string) {
	f.up.Handle(apitest.MatchIDsPath(puuid), apitest.PagedMatchIDs(ids))
}

func (f *fixture) match(id string, participants ...apitest.Participant) {
	f.up.JSON(apitest.MatchPath(id), 200, apitest.Match(id, participants...))
}

func (f *fixture) championRoster(champions ...string) {
	f.up.JSON(apitest.ChampionRosterPath(testVersion), 200, apitest.Roster(testVersion, champions...))
}

// dsnName keeps every test on its own in-memory database.
func dsnName(t *testing.T) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return r
		}
		return '_'
	}, t.Name())
}

func ctx(t *testing.T) context.Context {
	t.Helper()
	c, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	t.Cleanup(cancel)
	return c
}
