package service

import (
	"context"
	"time"

	"github.com/samber/lo"

	"github.com/dragon-traveler/wiki-backend/internal/model"
	"github.com/dragon-traveler/wiki-backend/internal/model/cache"
	"github.com/dragon-traveler/wiki-backend/internal/repo"
)

type Team struct {
	TeamRepo *repo.Team
}

func NewTeam(teamRepo *repo.Team) *Team {
	return &Team{
		TeamRepo: teamRepo,
	}
}

// Cache: teams, 24hrs
func (s *Team) GetTeams(ctx context.Context) ([]*model.Team, error) {
	var teams []*model.Team
	err := cache.Teams.Get(&teams)
	if err == nil {
		return teams, nil
	}

	teams, err = s.TeamRepo.GetTeams(ctx)
	if err != nil {
		return nil, err
	}
	go cache.Teams.Set(teams, time.Hour*24)

	return teams, nil
}

func (s *Team) GetTeamsByContentType(ctx context.Context, contentType string) ([]*model.Team, error) {
	teams, err := s.GetTeams(ctx)
	if err != nil {
		return nil, err
	}
	return lo.Filter(teams, func(team *model.Team, _ int) bool {
		return team.ContentType == contentType
	}), nil
}

func (s *Team) GetTeamByName(ctx context.Context, name string) (*model.Team, error) {
	return s.TeamRepo.GetTeamByName(ctx, name)
}
