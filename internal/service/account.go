package service

import (
	"arena-tracker/internal/api"
	"arena-tracker/internal/domain"
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
)

type AccountService struct {
	riot   *api.RiotClient
	logger zerolog.Logger
}

func NewAccountService(riot *api.RiotClient, logger zerolog.Logger) *AccountService {
	return &AccountService{riot: riot, logger: logger}
}

// ResolvePUUID maps a Riot ID to the account's PUUID.
func (s *AccountService) ResolvePUUID(ctx context.Context, identity domain.PlayerIdentity) (string, error) {
	account, err := s.riot.GetAccountByRiotID(ctx, identity.GameName, identity.TagLine)
	if err != nil {
		if errors.Is(err, api.ErrNotFound) {
			s.logger.Info().Str("riot_id", identity.String()).Msg("account not found")
			return "", fmt.Errorf("%s: %w", identity, domain.ErrAccountNotFound)
		}
		return "", fmt.Errorf("failed to resolve account %s: %w", identity, err)
	}
	if account.Puuid == "" {
		s.logger.Warn().Str("riot_id", identity.String()).Msg("account response carried no puuid")
		return "", fmt.Errorf("%s: %w", identity, domain.ErrAccountNotFound)
	}

	s.logger.Debug().Str("riot_id", identity.String()).Str("puuid", account.Puuid).Msg("account resolved")
	return account.Puuid, nil
}
