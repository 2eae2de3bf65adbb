package stats

import (
	"arena-tracker/internal/constants"
	"arena-tracker/internal/domain"
	"math"
	"slices"
	"sort"
)

// Aggregate folds records into one summary per roster champion, in roster order.
// Champions missing from the roster are dropped.
func Aggregate(records []domain.MatchParticipantRecord, roster []string) []domain.ChampionSummary {
	byChampion := make(map[string][]int)
	for _, r := range records {
		byChampion[r.Champion] = append(byChampion[r.Champion], r.Placement)
	}

	summaries := make([]domain.ChampionSummary, 0, len(roster))
	for _, champion := range roster {
		placements := slices.Clone(byChampion[champion])
		if placements == nil {
			placements = []int{}
		}
		summaries = append(summaries, domain.ChampionSummary{
			Champion:         champion,
			GamesPlayed:      len(placements),
			AveragePlacement: averagePlacement(placements),
			ReachedRank1:     slices.Contains(placements, 1),
			Placements:       placements,
		})
	}
	return summaries
}

func Overall(records []domain.MatchParticipantRecord) domain.OverallStats {
	total := len(records)
	if total == 0 {
		return domain.OverallStats{}
	}

	placements := make([]int, total)
	rank1, top4 := 0, 0
	for i, r := range records {
		placements[i] = r.Placement
		if r.Placement == 1 {
			rank1++
		}
		if r.Placement <= constants.Top4Cutoff {
			top4++
		}
	}

	return domain.OverallStats{
		TotalGames:       total,
		AveragePlacement: averagePlacement(placements),
		Rank1Rate:        percent(rank1, total),
		Top4Rate:         percent(top4, total),
	}
}

// PlacementSeries numbers records from 1 in the order they were fetched.
func PlacementSeries(records []domain.MatchParticipantRecord) []domain.PlacementPoint {
	series := make([]domain.PlacementPoint, len(records))
	for i, r := range records {
		series[i] = domain.PlacementPoint{MatchIndex: i + 1, Placement: r.Placement, MatchID: r.MatchID}
	}
	return series
}

type SortOrder string

const (
	LowestFirst  SortOrder = "asc"
	HighestFirst SortOrder = "desc"
)

func ParseSortOrder(s string) SortOrder {
	if SortOrder(s) == HighestFirst {
		return HighestFirst
	}
	return LowestFirst
}

// SortByAveragePlacement returns a sorted copy. Unplayed champions stay last in either
// order and keep their relative order.
func SortByAveragePlacement(summaries []domain.ChampionSummary, order SortOrder) []domain.ChampionSummary {
	sorted := slices.Clone(summaries)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i].AveragePlacement, sorted[j].AveragePlacement
		switch {
		case a == nil:
			return false
		case b == nil:
			return true
		case order == HighestFirst:
			return *a > *b
		default:
			return *a < *b
		}
	})
	return sorted
}

func averagePlacement(placements []int) *float64 {
	if len(placements) == 0 {
		return nil
	}
	sum := 0
	for _, p := range placements {
		sum += p
	}
	avg := round2(float64(sum) / float64(len(placements)))
	return &avg
}

func percent(n, total int) *float64 {
	p := round2(float64(n) / float64(total) * 100)
	return &p
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
