package service

import (
	"context"
	"time"

	"github.com/samber/lo"

	"github.com/dragon-traveler/wiki-backend/internal/model"
	"github.com/dragon-traveler/wiki-backend/internal/model/cache"
	"github.com/dragon-traveler/wiki-backend/internal/repo"
)

type Code struct {
	CodeRepo *repo.Code
}

func NewCode(codeRepo *repo.Code) *Code {
	return &Code{
		CodeRepo: codeRepo,
	}
}

// Cache: codes, 24hrs
func (s *Code) GetCodes(ctx context.Context) ([]*model.Code, error) {
	var codes []*model.Code
	err := cache.Codes.Get(&codes)
	if err == nil {
		return codes, nil
	}

	codes, err = s.CodeRepo.GetCodes(ctx)
	if err != nil {
		return nil, err
	}
	go cache.Codes.Set(codes, time.Hour*24)

	return codes, nil
}

func (s *Code) GetActiveCodes(ctx context.Context) ([]*model.Code, error) {
	codes, err := s.GetCodes(ctx)
	if err != nil {
		return nil, err
	}
	return lo.Filter(codes, func(code *model.Code, _ int) bool {
		return code.Active
	}), nil
}
