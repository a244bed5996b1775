// Package mocks provides mock expectation helpers for common testing patterns
package mocks

import (
	"context"

	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-encounters/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-encounters/internal/errors"
	"github.com/KirkDiggler/rpg-encounters/internal/repositories/monsters"
	monstersmock "github.com/KirkDiggler/rpg-encounters/internal/repositories/monsters/mock"
)

// ExpectMonsterGet sets up a mock expectation for loading a monster by name
func ExpectMonsterGet(mockRepo *monstersmock.MockRepository, m *dnd5e.Monster) *gomock.Call {
	return mockRepo.EXPECT().
		Get(gomock.Any(), &monsters.GetInput{Name: m.Name}).
		Return(&monsters.GetOutput{Monster: m}, nil)
}

// ExpectMonsterMissing sets up a mock expectation for a name the catalog does not hold
func ExpectMonsterMissing(mockRepo *monstersmock.MockRepository, name string) *gomock.Call {
	return mockRepo.EXPECT().
		Get(gomock.Any(), &monsters.GetInput{Name: name}).
		Return(nil, errors.MonsterNotFound(name))
}

// ExpectMonsterCreate sets up a mock expectation for creating a monster.
// The created flag is what the repository reports back.
func ExpectMonsterCreate(mockRepo *monstersmock.MockRepository, name string, created bool) *gomock.Call {
	return mockRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *monsters.CreateInput) (*monsters.CreateOutput, error) {
			if input.Monster == nil || input.Monster.Name != name {
				return nil, errors.Internalf("unexpected create for %v", input.Monster)
			}
			return &monsters.CreateOutput{Created: created}, nil
		})
}

// ExpectCatalogList sets up a mock expectation for listing the whole catalog
func ExpectCatalogList(mockRepo *monstersmock.MockRepository, list ...*dnd5e.Monster) *gomock.Call {
	if list == nil {
		list = []*dnd5e.Monster{}
	}
	return mockRepo.EXPECT().
		List(gomock.Any(), gomock.Any()).
		Return(&monsters.ListOutput{Monsters: list}, nil)
}
