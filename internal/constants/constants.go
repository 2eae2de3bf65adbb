package constants

import "time"

const (
	StaticDataTTL = 24 * time.Hour
)

const (
	ExternalAPITimeout = 10 * time.Second
	DatabaseTimeout    = 5 * time.Second
	QueryTimeout       = 10 * time.Minute
)

const (
	CacheDSN       = "file:arena_cache?mode=memory&cache=shared"
	DBMaxOpenConns = 1
	DBMaxIdleConns = 1
	DBBatchSize    = 100
)

const (
	ShutdownTimeout   = 5 * time.Second
	ReadHeaderTimeout = 5 * time.Second
)

// arena
const (
	ArenaQueueID      = 1700
	MatchIDsPageSize  = 100
	DataDragonBaseURL = "https://ddragon.leagueoflegends.com"
	DataDragonLocale  = "en_US"
	Top4Cutoff        = 4
)
