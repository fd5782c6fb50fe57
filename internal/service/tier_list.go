package service

import (
	"context"
	"time"

	"github.com/samber/lo"

	"github.com/dragon-traveler/wiki-backend/internal/model"
	"github.com/dragon-traveler/wiki-backend/internal/model/cache"
	"github.com/dragon-traveler/wiki-backend/internal/repo"
)

type TierList struct {
	TierListRepo *repo.TierList
}

func NewTierList(tierListRepo *repo.TierList) *TierList {
	return &TierList{
		TierListRepo: tierListRepo,
	}
}

// Cache: tierLists, 24hrs
func (s *TierList) GetTierLists(ctx context.Context) ([]*model.TierList, error) {
	var tierLists []*model.TierList
	err := cache.TierLists.Get(&tierLists)
	if err == nil {
		return tierLists, nil
	}

	tierLists, err = s.TierListRepo.GetTierLists(ctx)
	if err != nil {
		return nil, err
	}
	go cache.TierLists.Set(tierLists, time.Hour*24)

	return tierLists, nil
}

func (s *TierList) GetTierListsByContentType(ctx context.Context, contentType string) ([]*model.TierList, error) {
	tierLists, err := s.GetTierLists(ctx)
	if err != nil {
		return nil, err
	}
	return lo.Filter(tierLists, func(tierList *model.TierList, _ int) bool {
		return tierList.ContentType == contentType
	}), nil
}

func (s *TierList) GetTierListByName(ctx context.Context, name string) (*model.TierList, error) {
	return s.TierListRepo.GetTierListByName(ctx, name)
}
