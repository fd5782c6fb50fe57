package service

import (
	"context"
	"time"

	"github.com/dragon-traveler/wiki-backend/internal/model"
	"github.com/dragon-traveler/wiki-backend/internal/model/cache"
	"github.com/dragon-traveler/wiki-backend/internal/repo"
)

type NoblePhantasm struct {
	NoblePhantasmRepo *repo.NoblePhantasm
}

func NewNoblePhantasm(noblePhantasmRepo *repo.NoblePhantasm) *NoblePhantasm {
	return &NoblePhantasm{
		NoblePhantasmRepo: noblePhantasmRepo,
	}
}

// Cache: noblePhantasms, 24hrs
func (s *NoblePhantasm) GetNoblePhantasms(ctx context.Context) ([]*model.NoblePhantasm, error) {
	var noblePhantasms []*model.NoblePhantasm
	err := cache.NoblePhantasms.Get(&noblePhantasms)
	if err == nil {
		return noblePhantasms, nil
	}

	noblePhantasms, err = s.NoblePhantasmRepo.GetNoblePhantasms(ctx)
	if err != nil {
		return nil, err
	}
	go cache.NoblePhantasms.Set(noblePhantasms, time.Hour*24)

	return noblePhantasms, nil
}

func (s *NoblePhantasm) GetNoblePhantasmByName(ctx context.Context, name string) (*model.NoblePhantasm, error) {
	return s.NoblePhantasmRepo.GetNoblePhantasmByName(ctx, name)
}
