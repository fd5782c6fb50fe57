package service

import (
	"context"
	"time"

	"github.com/dragon-traveler/wiki-backend/internal/model"
	"github.com/dragon-traveler/wiki-backend/internal/model/cache"
	"github.com/dragon-traveler/wiki-backend/internal/repo"
)

type Gear struct {
	GearRepo *repo.Gear
}

func NewGear(gearRepo *repo.Gear) *Gear {
	return &Gear{
		GearRepo: gearRepo,
	}
}

// Cache: gears, 24hrs
func (s *Gear) GetGears(ctx context.Context) ([]*model.Gear, error) {
	var gears []*model.Gear
	err := cache.Gears.Get(&gears)
	if err == nil {
		return gears, nil
	}

	gears, err = s.GearRepo.GetGears(ctx)
	if err != nil {
		return nil, err
	}
	go cache.Gears.Set(gears, time.Hour*24)

	return gears, nil
}
