package fx

import (
	"arena-tracker/internal/server"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
)

func TestModuleGraph(t *testing.T) {
	t.Setenv("RIOT_API_KEY", "RGAPI-test")

	require.NoError(t, fx.ValidateApp(
		Module,
		fx.Invoke(func(*server.TrackerServer, http.Handler) {}),
	))
}
