package service

import (
	"context"
	"time"

	"github.com/dragon-traveler/wiki-backend/internal/model"
	"github.com/dragon-traveler/wiki-backend/internal/model/cache"
	"github.com/dragon-traveler/wiki-backend/internal/repo"
)

type Resource struct {
	ResourceRepo *repo.Resource
}

func NewResource(resourceRepo *repo.Resource) *Resource {
	return &Resource{
		ResourceRepo: resourceRepo,
	}
}

// Cache: resources, 24hrs
func (s *Resource) GetResources(ctx context.Context) ([]*model.Resource, error) {
	var resources []*model.Resource
	err := cache.Resources.Get(&resources)
	if err == nil {
		return resources, nil
	}

	resources, err = s.ResourceRepo.GetResources(ctx)
	if err != nil {
		return nil, err
	}
	go cache.Resources.Set(resources, time.Hour*24)

	return resources, nil
}
