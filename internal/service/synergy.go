package service

import (
	"context"
	"strings"

	"github.com/dragon-traveler/wiki-backend/internal/model"
	"github.com/dragon-traveler/wiki-backend/internal/model/types"
	"github.com/dragon-traveler/wiki-backend/internal/pkg/wikierr"
	"github.com/dragon-traveler/wiki-backend/internal/util/synergy"
)

type Synergy struct {
	CharacterService *Character
	WyrmspellService *Wyrmspell
}

func NewSynergy(characterService *Character, wyrmspellService *Wyrmspell) *Synergy {
	return &Synergy{
		CharacterService: characterService,
		WyrmspellService: wyrmspellService,
	}
}

// Evaluate resolves the requested character names against the dataset and runs
// the roster through the synergy heuristics. Unknown characters reject the
// request; unknown wyrmspells only surface as tags.
func (s *Synergy) Evaluate(ctx context.Context, req *types.SynergyRequest) (*synergy.Result, error) {
	charactersMap, err := s.CharacterService.GetCharactersMapByName(ctx)
	if err != nil {
		return nil, err
	}
	wyrmspellsMap, err := s.WyrmspellService.GetWyrmspellsMapByName(ctx)
	if err != nil {
		return nil, err
	}

	roster := make([]*model.Character, 0, len(req.CharacterNames))
	var unknown []string
	for _, name := range req.CharacterNames {
		character, ok := charactersMap[name]
		if !ok {
			unknown = append(unknown, name)
			continue
		}
		roster = append(roster, character)
	}
	if len(unknown) > 0 {
		return nil, wikierr.ErrInvalidReq.Msg("unknown character(s): %s", strings.Join(unknown, ", "))
	}

	return synergy.Compute(&synergy.Input{
		Roster:         roster,
		Faction:        req.Faction,
		ContentType:    req.ContentType,
		OverdriveCount: req.OverdriveCount,
		TeamWyrmspells: req.TeamWyrmspells,
		Wyrmspells:     wyrmspellsMap,
	}), nil
}
