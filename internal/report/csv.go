// Package report renders champion summaries for download.
package report

import (
	"arena-tracker/internal/domain"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
)

const (
	CSVFilename    = "arena_champion_summary.csv"
	CSVContentType = "text/csv"

	absent = "-"
)

var csvHeader = []string{"champion", "games_played", "average_placement", "reached_rank_1", "all_placements"}

// WriteCSV writes one row per summary, in the given order.
func WriteCSV(w io.Writer, summaries []domain.ChampionSummary) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, s := range summaries {
		if err := cw.Write(row(s)); err != nil {
			return fmt.Errorf("failed to write csv row for %s: %w", s.Champion, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to flush csv: %w", err)
	}
	return nil
}

func row(s domain.ChampionSummary) []string {
	return []string{
		s.Champion,
		strconv.Itoa(s.GamesPlayed),
		FormatAverage(s.AveragePlacement),
		FormatBool(s.ReachedRank1),
		FormatPlacements(s.Placements),
	}
}

// FormatAverage always keeps one decimal place, so 2 renders as "2.0".
func FormatAverage(avg *float64) string {
	if avg == nil {
		return absent
	}
	v := strconv.FormatFloat(*avg, 'f', -1, 64)
	if !strings.Contains(v, ".") {
		v += ".0"
	}
	return v
}

func FormatBool(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

func FormatPlacements(placements []int) string {
	if len(placements) == 0 {
		return absent
	}
	parts := make([]string, len(placements))
	for i, p := range placements {
		parts[i] = strconv.Itoa(p)
	}
	return strings.Join(parts, ", ")
}
