package service

import (
	"context"
	"time"

	"github.com/dragon-traveler/wiki-backend/internal/model"
	"github.com/dragon-traveler/wiki-backend/internal/model/cache"
	"github.com/dragon-traveler/wiki-backend/internal/repo"
)

type Subclass struct {
	SubclassRepo *repo.Subclass
}

func NewSubclass(subclassRepo *repo.Subclass) *Subclass {
	return &Subclass{
		SubclassRepo: subclassRepo,
	}
}

// Cache: subclasses, 24hrs
func (s *Subclass) GetSubclasses(ctx context.Context) ([]*model.Subclass, error) {
	var subclasses []*model.Subclass
	err := cache.Subclasses.Get(&subclasses)
	if err == nil {
		return subclasses, nil
	}

	subclasses, err = s.SubclassRepo.GetSubclasses(ctx)
	if err != nil {
		return nil, err
	}
	go cache.Subclasses.Set(subclasses, time.Hour*24)

	return subclasses, nil
}
