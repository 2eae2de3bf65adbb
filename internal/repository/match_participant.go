package repository

import (
	"arena-tracker/internal/constants"
	"arena-tracker/internal/domain"
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

type MatchParticipantRepository struct {
	db     *sql.DB
	logger zerolog.Logger
}

func NewMatchParticipantRepository(sqlDB *sql.DB, logger zerolog.Logger) *MatchParticipantRepository {
	return &MatchParticipantRepository{
		db:     sqlDB,
		logger: logger,
	}
}

const getByMatchID = `
SELECT match_id, puuid, champion_name, placement
FROM match_participants
WHERE match_id = ?
ORDER BY position`

// GetByMatchID returns the cached participants in their original order, or none when the
// match has not been fetched yet.
func (r *MatchParticipantRepository) GetByMatchID(ctx context.Context, matchID string) ([]domain.MatchParticipant, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, getByMatchID, matchID)
	if err != nil {
		return nil, fmt.Errorf("failed to query match participants: %w", err)
	}
	defer rows.Close()

	var participants []domain.MatchParticipant
	for rows.Next() {
		var p domain.MatchParticipant
		if err := rows.Scan(&p.MatchID, &p.Puuid, &p.ChampionName, &p.Placement); err != nil {
			return nil, fmt.Errorf("failed to scan match participant: %w", err)
		}
		participants = append(participants, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate match participants: %w", err)
	}
	return participants, nil
}

const upsertMatchParticipant = `
INSERT INTO match_participants (match_id, puuid, champion_name, placement, position, created_at)
VALUES (?, ?, ?, ?, ?, ?)
ON CONFLICT (match_id, puuid) DO UPDATE SET
    champion_name = excluded.champion_name,
    placement     = excluded.placement,
    position      = excluded.position`

func (r *MatchParticipantRepository) UpsertBatch(ctx context.Context, participants []domain.MatchParticipant) error {
	if len(participants) == 0 {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, upsertMatchParticipant)
	if err != nil {
		return fmt.Errorf("failed to prepare upsert: %w", err)
	}
	defer stmt.Close()

	now := time.Now()
	for i := 0; i < len(participants); i += constants.DBBatchSize {
		end := min(i+constants.DBBatchSize, len(participants))

		for pos, p := range participants[i:end] {
			if _, err := stmt.ExecContext(ctx, p.MatchID, p.Puuid, p.ChampionName, p.Placement, i+pos, now); err != nil {
				return fmt.Errorf("failed to upsert match participant %s/%s: %w", p.MatchID, p.Puuid, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit match participants: %w", err)
	}

	r.logger.Debug().Str("match_id", participants[0].MatchID).Int("count", len(participants)).Msg("match participants cached")
	return nil
}

func (r *MatchParticipantRepository) CountMatches(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(DISTINCT match_id) FROM match_participants`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count cached matches: %w", err)
	}
	return n, nil
}
