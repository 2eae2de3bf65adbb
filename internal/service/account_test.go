package service

import (
	"arena-tracker/internal/api"
	"arena-tracker/internal/api/apitest"
	"arena-tracker/internal/domain"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolvePUUID(t *testing.T) {
	identity := domain.PlayerIdentity{GameName: "Hide on bush", TagLine: "KR1"}

	tests := []struct {
		name    string
		status  int
		body    any
		want    string
		wantErr error
	}{
		{name: "resolved", status: 200, body: api.AccountDTO{Puuid: "puuid-1"}, want: "puuid-1"},
		{name: "unknown account", status: 404, body: `{"status":{"status_code":404}}`, wantErr: domain.ErrAccountNotFound},
		{name: "empty puuid", status: 200, body: api.AccountDTO{}, wantErr: domain.ErrAccountNotFound},
		{name: "upstream down", status: 503, body: "", wantErr: api.ErrRetriesExhausted},
		{name: "forbidden", status: 403, body: "", wantErr: &api.StatusError{Endpoint: api.EndpointAccount, StatusCode: 403}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.up.JSON(apitest.AccountPath(identity.GameName, identity.TagLine), tt.status, tt.body)

			got, err := f.accounts.ResolvePUUID(ctx(t), identity)
			if tt.wantErr != nil {
				require.Error(t, err)
				if se, ok := tt.wantErr.(*api.StatusError); ok {
					var got *api.StatusError
					require.ErrorAs(t, err, &got)
					assert.Equal(t, se.StatusCode, got.StatusCode)
					assert.NotErrorIs(t, err, domain.ErrAccountNotFound)
					return
				}
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
