package main

import (
	"context"
	"fmt"

	"github.com/khoahotran/portfolio/adapters/persistence"
	"github.com/khoahotran/portfolio/internal/domain/portfolio"
	"github.com/khoahotran/portfolio/pkg/logger"
)

// loadDataset reads the dataset from path, or the embedded one when path is empty.
func loadDataset(ctx context.Context, path string) (*portfolio.Dataset, error) {
	repo := persistence.NewStaticRepo(logger.NewNop())
	if path != "" {
		var err error
		repo, err = persistence.NewFileRepo(path, logger.NewNop())
		if err != nil {
			return nil, fmt.Errorf("failed to open dataset: %w", err)
		}
	}
	return repo.Load(ctx)
}
