package service

import (
	"context"
	"time"

	"github.com/dragon-traveler/wiki-backend/internal/model"
	"github.com/dragon-traveler/wiki-backend/internal/model/cache"
	"github.com/dragon-traveler/wiki-backend/internal/repo"
)

type Howlkin struct {
	HowlkinRepo *repo.Howlkin
}

func NewHowlkin(howlkinRepo *repo.Howlkin) *Howlkin {
	return &Howlkin{
		HowlkinRepo: howlkinRepo,
	}
}

// Cache: howlkins, 24hrs
func (s *Howlkin) GetHowlkins(ctx context.Context) ([]*model.Howlkin, error) {
	var howlkins []*model.Howlkin
	err := cache.Howlkins.Get(&howlkins)
	if err == nil {
		return howlkins, nil
	}

	howlkins, err = s.HowlkinRepo.GetHowlkins(ctx)
	if err != nil {
		return nil, err
	}
	go cache.Howlkins.Set(howlkins, time.Hour*24)

	return howlkins, nil
}
