package service

import (
	"context"
	"time"

	"github.com/dragon-traveler/wiki-backend/internal/model"
	"github.com/dragon-traveler/wiki-backend/internal/model/cache"
	"github.com/dragon-traveler/wiki-backend/internal/repo"
)

type Artifact struct {
	ArtifactRepo *repo.Artifact
}

func NewArtifact(artifactRepo *repo.Artifact) *Artifact {
	return &Artifact{
		ArtifactRepo: artifactRepo,
	}
}

// Cache: artifacts, 24hrs
func (s *Artifact) GetArtifacts(ctx context.Context) ([]*model.Artifact, error) {
	var artifacts []*model.Artifact
	err := cache.Artifacts.Get(&artifacts)
	if err == nil {
		return artifacts, nil
	}

	artifacts, err = s.ArtifactRepo.GetArtifacts(ctx)
	if err != nil {
		return nil, err
	}
	go cache.Artifacts.Set(artifacts, time.Hour*24)

	return artifacts, nil
}
