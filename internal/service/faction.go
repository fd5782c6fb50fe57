package service

import (
	"context"
	"time"

	"github.com/dragon-traveler/wiki-backend/internal/model"
	"github.com/dragon-traveler/wiki-backend/internal/model/cache"
	"github.com/dragon-traveler/wiki-backend/internal/repo"
)

type Faction struct {
	FactionRepo *repo.Faction
}

func NewFaction(factionRepo *repo.Faction) *Faction {
	return &Faction{
		FactionRepo: factionRepo,
	}
}

// Cache: factions, 24hrs
func (s *Faction) GetFactions(ctx context.Context) ([]*model.Faction, error) {
	var factions []*model.Faction
	err := cache.Factions.Get(&factions)
	if err == nil {
		return factions, nil
	}

	factions, err = s.FactionRepo.GetFactions(ctx)
	if err != nil {
		return nil, err
	}
	go cache.Factions.Set(factions, time.Hour*24)

	return factions, nil
}
