package domain

import (
	"time"
)

type PlayerIdentity struct {
	GameName string
	TagLine  string
}

func (p PlayerIdentity) String() string {
	return p.GameName + RiotIDSeparator + p.TagLine
}

// MatchParticipant is one participant row of a fetched match.
type MatchParticipant struct {
	MatchID      string
	Puuid        string
	ChampionName string
	Placement    int
}

// MatchParticipantRecord is the queried player's result in one match.
type MatchParticipantRecord struct {
	Champion  string `json:"champion"`
	Placement int    `json:"placement"`
	MatchID   string `json:"matchId"`
}

type ChampionSummary struct {
	Champion         string   `json:"champion"`
	GamesPlayed      int      `json:"gamesPlayed"`
	AveragePlacement *float64 `json:"averagePlacement,omitempty"` // nil when unplayed
	ReachedRank1     bool     `json:"reachedRank1"`
	Placements       []int    `json:"placements"`
}

type OverallStats struct {
	TotalGames       int      `json:"totalGames"`
	AveragePlacement *float64 `json:"averagePlacement,omitempty"`
	Rank1Rate        *float64 `json:"rank1Rate,omitempty"` // percent
	Top4Rate         *float64 `json:"top4Rate,omitempty"`  // percent
}

type PlacementPoint struct {
	MatchIndex int    `json:"matchIndex"`
	Placement  int    `json:"placement"`
	MatchID    string `json:"matchId"`
}

type ArenaReport struct {
	ID          string
	Identity    PlayerIdentity
	Puuid       string
	MatchCount  int
	Records     []MatchParticipantRecord
	Champions   []ChampionSummary
	Overall     OverallStats
	Series      []PlacementPoint
	GeneratedAt time.Time
}
