package service

import (
	"context"
	"time"

	"github.com/dragon-traveler/wiki-backend/internal/model"
	"github.com/dragon-traveler/wiki-backend/internal/model/cache"
	"github.com/dragon-traveler/wiki-backend/internal/repo"
)

type UsefulLink struct {
	UsefulLinkRepo *repo.UsefulLink
}

func NewUsefulLink(usefulLinkRepo *repo.UsefulLink) *UsefulLink {
	return &UsefulLink{
		UsefulLinkRepo: usefulLinkRepo,
	}
}

// Cache: usefulLinks, 24hrs
func (s *UsefulLink) GetUsefulLinks(ctx context.Context) ([]*model.UsefulLink, error) {
	var usefulLinks []*model.UsefulLink
	err := cache.UsefulLinks.Get(&usefulLinks)
	if err == nil {
		return usefulLinks, nil
	}

	usefulLinks, err = s.UsefulLinkRepo.GetUsefulLinks(ctx)
	if err != nil {
		return nil, err
	}
	go cache.UsefulLinks.Set(usefulLinks, time.Hour*24)

	return usefulLinks, nil
}
