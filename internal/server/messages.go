package server

import (
	"arena-tracker/internal/domain"
	"time"
)

type GetArenaStatsRequest struct {
	RiotID string `json:"riotId"`
	Sort   string `json:"sort,omitempty"` // asc | desc
}

type GetArenaStatsResponse struct {
	ReportID    string                          `json:"reportId"`
	RiotID      string                          `json:"riotId"`
	Puuid       string                          `json:"puuid"`
	MatchCount  int                             `json:"matchCount"`
	Champions   []domain.ChampionSummary        `json:"champions"`
	Overall     domain.OverallStats             `json:"overall"`
	Series      []domain.PlacementPoint         `json:"series"`
	Records     []domain.MatchParticipantRecord `json:"records"`
	GeneratedAt time.Time                       `json:"generatedAt"`
}
