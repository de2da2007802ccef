package app

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/GraemeWada/signoutapp/internal/api"
	"github.com/GraemeWada/signoutapp/internal/config"
	"github.com/GraemeWada/signoutapp/internal/domain"
	"github.com/GraemeWada/signoutapp/internal/logger"
	"github.com/GraemeWada/signoutapp/internal/repository/memstore"
)

func Start() error {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "./cmd/app/config.yml"
	}

	conf, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to initialize config -> %w", err)
	}

	if err = logger.Init(conf.API.Environment); err != nil {
		return fmt.Errorf("failed to initialize logger -> %w", err)
	}

	store := memstore.NewStore(seedParts(conf.SignOut), conf.SignOut.TeamCount)

	s, err := api.NewServer(conf, store)
	if err != nil {
		return fmt.Errorf("failed to initialize server -> %w", err)
	}

	addr := ":" + s.Config.API.Port
	zap.L().Info(fmt.Sprintf("starting server at %v", addr))
	if err = s.Router.Run(addr); err != nil {
		return fmt.Errorf("failed to start the server -> %w", err)
	}

	return nil
}

func seedParts(conf *config.SignOutConfig) []domain.Part {
	parts := make([]domain.Part, 0, len(conf.SeedParts))
	for _, p := range conf.SeedParts {
		parts = append(parts, domain.Part{
			Name:  p.Name,
			SKU:   p.SKU,
			Stock: p.Stock,
		})
	}

	return parts
}
