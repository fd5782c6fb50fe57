package service

import (
	"context"
	"time"

	"github.com/dragon-traveler/wiki-backend/internal/model"
	"github.com/dragon-traveler/wiki-backend/internal/model/cache"
	"github.com/dragon-traveler/wiki-backend/internal/repo"
)

type StatusEffect struct {
	StatusEffectRepo *repo.StatusEffect
}

func NewStatusEffect(statusEffectRepo *repo.StatusEffect) *StatusEffect {
	return &StatusEffect{
		StatusEffectRepo: statusEffectRepo,
	}
}

// Cache: statusEffects, 24hrs
func (s *StatusEffect) GetStatusEffects(ctx context.Context) ([]*model.StatusEffect, error) {
	var statusEffects []*model.StatusEffect
	err := cache.StatusEffects.Get(&statusEffects)
	if err == nil {
		return statusEffects, nil
	}

	statusEffects, err = s.StatusEffectRepo.GetStatusEffects(ctx)
	if err != nil {
		return nil, err
	}
	go cache.StatusEffects.Set(statusEffects, time.Hour*24)

	return statusEffects, nil
}
