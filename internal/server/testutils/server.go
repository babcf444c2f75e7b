package testutils

import (
	"go.uber.org/zap"

	"github.com/and161185/covid19-dashboard/internal/config"
	"github.com/and161185/covid19-dashboard/internal/server"
	"github.com/and161185/covid19-dashboard/storage/inmemory"
)

func NewTestServer() server.Server {
	return server.Server{
		Storage: inmemory.NewMemStorage(),
		Config: &config.DashboardConfig{
			Addr:            "localhost:8080",
			RefreshInterval: 300,
			Logger:          zap.NewNop().Sugar(),
		},
	}
}
