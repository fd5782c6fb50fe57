package service

import (
	"context"
	"time"

	"github.com/dragon-traveler/wiki-backend/internal/model"
	"github.com/dragon-traveler/wiki-backend/internal/model/cache"
	"github.com/dragon-traveler/wiki-backend/internal/repo"
)

type GoldenAlliance struct {
	GoldenAllianceRepo *repo.GoldenAlliance
}

func NewGoldenAlliance(goldenAllianceRepo *repo.GoldenAlliance) *GoldenAlliance {
	return &GoldenAlliance{
		GoldenAllianceRepo: goldenAllianceRepo,
	}
}

// Cache: goldenAlliances, 24hrs
func (s *GoldenAlliance) GetGoldenAlliances(ctx context.Context) ([]*model.GoldenAlliance, error) {
	var goldenAlliances []*model.GoldenAlliance
	err := cache.GoldenAlliances.Get(&goldenAlliances)
	if err == nil {
		return goldenAlliances, nil
	}

	goldenAlliances, err = s.GoldenAllianceRepo.GetGoldenAlliances(ctx)
	if err != nil {
		return nil, err
	}
	go cache.GoldenAlliances.Set(goldenAlliances, time.Hour*24)

	return goldenAlliances, nil
}
