package service

import (
	"context"
	"time"

	"github.com/ahmetb/go-linq/v3"

	"github.com/dragon-traveler/wiki-backend/internal/model"
	"github.com/dragon-traveler/wiki-backend/internal/model/cache"
	"github.com/dragon-traveler/wiki-backend/internal/repo"
)

type Wyrmspell struct {
	WyrmspellRepo *repo.Wyrmspell
}

func NewWyrmspell(wyrmspellRepo *repo.Wyrmspell) *Wyrmspell {
	return &Wyrmspell{
		WyrmspellRepo: wyrmspellRepo,
	}
}

// Cache: wyrmspells, 24hrs
func (s *Wyrmspell) GetWyrmspells(ctx context.Context) ([]*model.Wyrmspell, error) {
	var wyrmspells []*model.Wyrmspell
	err := cache.Wyrmspells.Get(&wyrmspells)
	if err == nil {
		return wyrmspells, nil
	}

	wyrmspells, err = s.WyrmspellRepo.GetWyrmspells(ctx)
	if err != nil {
		return nil, err
	}
	go cache.Wyrmspells.Set(wyrmspells, time.Hour*24)

	return wyrmspells, nil
}

// Cache: wyrmspellsMapByName, 24hrs
func (s *Wyrmspell) GetWyrmspellsMapByName(ctx context.Context) (map[string]*model.Wyrmspell, error) {
	var wyrmspellsMap map[string]*model.Wyrmspell
	err := cache.WyrmspellsMapByName.Get(&wyrmspellsMap)
	if err == nil {
		return wyrmspellsMap, nil
	}

	wyrmspells, err := s.GetWyrmspells(ctx)
	if err != nil {
		return nil, err
	}

	wyrmspellsMap = make(map[string]*model.Wyrmspell)
	linq.From(wyrmspells).
		ToMapByT(
			&wyrmspellsMap,
			func(wyrmspell *model.Wyrmspell) string { return wyrmspell.Name },
			func(wyrmspell *model.Wyrmspell) *model.Wyrmspell { return wyrmspell })
	go cache.WyrmspellsMapByName.Set(wyrmspellsMap, time.Hour*24)

	return wyrmspellsMap, nil
}
