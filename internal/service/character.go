package service

import (
	"context"
	"time"

	"github.com/ahmetb/go-linq/v3"

	"github.com/dragon-traveler/wiki-backend/internal/model"
	"github.com/dragon-traveler/wiki-backend/internal/model/cache"
	"github.com/dragon-traveler/wiki-backend/internal/repo"
)

type Character struct {
	CharacterRepo *repo.Character
}

func NewCharacter(characterRepo *repo.Character) *Character {
	return &Character{
		CharacterRepo: characterRepo,
	}
}

// Cache: characters, 24hrs
func (s *Character) GetCharacters(ctx context.Context) ([]*model.Character, error) {
	var characters []*model.Character
	err := cache.Characters.Get(&characters)
	if err == nil {
		return characters, nil
	}

	characters, err = s.CharacterRepo.GetCharacters(ctx)
	if err != nil {
		return nil, err
	}
	go cache.Characters.Set(characters, time.Hour*24)

	return characters, nil
}

// Cache: charactersMapByName, 24hrs
func (s *Character) GetCharactersMapByName(ctx context.Context) (map[string]*model.Character, error) {
	var charactersMap map[string]*model.Character
	err := cache.CharactersMapByName.Get(&charactersMap)
	if err == nil {
		return charactersMap, nil
	}

	characters, err := s.GetCharacters(ctx)
	if err != nil {
		return nil, err
	}

	charactersMap = make(map[string]*model.Character)
	linq.From(characters).
		ToMapByT(
			&charactersMap,
			func(character *model.Character) string { return character.Name },
			func(character *model.Character) *model.Character { return character })
	go cache.CharactersMapByName.Set(charactersMap, time.Hour*24)

	return charactersMap, nil
}

func (s *Character) GetCharacterByName(ctx context.Context, name string) (*model.Character, error) {
	return s.CharacterRepo.GetCharacterByName(ctx, name)
}
