package report

import (
	"arena-tracker/internal/domain"
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(v float64) *float64 { return &v }

func TestWriteCSV(t *testing.T) {
	summaries := []domain.ChampionSummary{
		{Champion: "Ahri", GamesPlayed: 3, AveragePlacement: ptr(1.33), ReachedRank1: true, Placements: []int{1, 1, 2}},
		{Champion: "Zed", GamesPlayed: 2, AveragePlacement: ptr(4), Placements: []int{3, 5}},
		{Champion: "Aatrox", Placements: []int{}},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, summaries))

	want := "champion,games_played,average_placement,reached_rank_1,all_placements\n" +
		"Ahri,3,1.33,Yes,\"1, 1, 2\"\n" +
		"Zed,2,4.0,No,\"3, 5\"\n" +
		"Aatrox,0,-,No,-\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteCSV_HeaderOnly(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, nil))
	assert.Equal(t, "champion,games_played,average_placement,reached_rank_1,all_placements\n", buf.String())
}

func TestFormatAverage(t *testing.T) {
	tests := []struct {
		in   *float64
		want string
	}{
		{nil, "-"},
		{ptr(2), "2.0"},
		{ptr(2.5), "2.5"},
		{ptr(4.67), "4.67"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatAverage(tt.in))
	}
}
