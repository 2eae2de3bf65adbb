package service

import (
	"arena-tracker/internal/api/apitest"
	"arena-tracker/internal/config"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRosterService_PinnedVersion(t *testing.T) {
	f := newFixture(t)
	f.championRoster("Aatrox", "Ahri", "Zed", "Akali")

	got, err := f.roster.Champions(ctx(t))
	require.NoError(t, err)
	assert.Equal(t, []string{"Aatrox", "Ahri", "Zed", "Akali"}, got)
	assert.Zero(t, f.up.CountOf(apitest.VersionsPath))
}

func TestRosterService_LatestVersion(t *testing.T) {
	f := newFixture(t, func(c *config.Config) { c.DataDragonVersion = "" })
	f.up.JSON(apitest.VersionsPath, 200, []string{"15.1.1", "14.24.1"})
	f.up.JSON(apitest.ChampionRosterPath("15.1.1"), 200, apitest.Roster("15.1.1", "Ahri"))

	got, err := f.roster.Champions(ctx(t))
	require.NoError(t, err)
	assert.Equal(t, []string{"Ahri"}, got)
}

func TestRosterService_NoVersions(t *testing.T) {
	f := newFixture(t, func(c *config.Config) { c.DataDragonVersion = "" })
	f.up.JSON(apitest.VersionsPath, 200, []string{})

	_, err := f.roster.Champions(ctx(t))
	require.Error(t, err)
}

func TestRosterService_CachesUntilTTL(t *testing.T) {
	f := newFixture(t, func(c *config.Config) { c.DataDragonVersion = "" })
	f.up.JSON(apitest.VersionsPath, 200, []string{testVersion})
	f.championRoster("Aatrox", "Ahri")

	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	f.roster.now = func() time.Time { return now }

	first, err := f.roster.Champions(ctx(t))
	require.NoError(t, err)
	first[0] = "mutated"

	now = now.Add(time.Hour)
	second, err := f.roster.Champions(ctx(t))
	require.NoError(t, err)
	assert.Equal(t, []string{"Aatrox", "Ahri"}, second)
	assert.Equal(t, 1, f.up.CountOf(apitest.VersionsPath))
	assert.Equal(t, 1, f.up.CountOf(apitest.ChampionRosterPath(testVersion)))

	now = now.Add(25 * time.Hour)
	_, err = f.roster.Champions(ctx(t))
	require.NoError(t, err)
	assert.Equal(t, 2, f.up.CountOf(apitest.VersionsPath))
	assert.Equal(t, 2, f.up.CountOf(apitest.ChampionRosterPath(testVersion)))
}
