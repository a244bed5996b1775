package monster_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-encounters/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-encounters/internal/errors"
	"github.com/KirkDiggler/rpg-encounters/internal/orchestrators/monster"
	"github.com/KirkDiggler/rpg-encounters/internal/repositories/monsters"
	monstersmock "github.com/KirkDiggler/rpg-encounters/internal/repositories/monsters/mock"
	"github.com/KirkDiggler/rpg-encounters/internal/testutils"
	"github.com/KirkDiggler/rpg-encounters/internal/testutils/builders"
	"github.com/KirkDiggler/rpg-encounters/internal/testutils/mocks"
)

type OrchestratorTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockRepo     *monstersmock.MockRepository
	orchestrator monster.Service
	ctx          context.Context
}

func TestOrchestratorTestSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockRepo = monstersmock.NewMockRepository(s.ctrl)
	s.ctx = context.Background()

	var err error
	s.orchestrator, err = monster.NewOrchestrator(&monster.Config{MonsterRepo: s.mockRepo})
	s.Require().NoError(err)
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *OrchestratorTestSuite) TestCreateMonster_Normalizes() {
	m := builders.NewMonsterBuilder().
		WithName("  Goblin ").
		WithSize("small").
		WithAlignment("neutral_evil").
		WithHitDice("2D6 + 0", 7).
		WithChallenge(0.25, 50).
		Build()

	s.mockRepo.EXPECT().
		Create(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *monsters.CreateInput) (*monsters.CreateOutput, error) {
			s.Equal("Goblin", input.Monster.Name)
			s.Equal(dnd5e.SizeSmall, input.Monster.Size)
			s.Equal(dnd5e.AlignmentNeutralEvil, input.Monster.Alignment)
			s.Equal("2d6", input.Monster.HP.HitDice)
			return &monsters.CreateOutput{Created: true}, nil
		})

	out, err := s.orchestrator.CreateMonster(s.ctx, &monster.CreateMonsterInput{Monster: m})
	s.Require().NoError(err)
	s.True(out.Created)
	s.Equal("Goblin", out.Monster.Name)
}

func (s *OrchestratorTestSuite) TestCreateMonster_Duplicate() {
	mocks.ExpectMonsterCreate(s.mockRepo, testutils.MonsterGoblin, false)

	out, err := s.orchestrator.CreateMonster(s.ctx, &monster.CreateMonsterInput{Monster: testutils.Goblin()})
	s.Require().NoError(err)
	s.False(out.Created)
}

func (s *OrchestratorTestSuite) TestCreateMonster_Validation() {
	testCases := []struct {
		name   string
		mutate func(m *dnd5e.Monster)
		field  string
	}{
		{name: "missing name", mutate: func(m *dnd5e.Monster) { m.Name = " " }, field: "name"},
		{name: "missing hit dice", mutate: func(m *dnd5e.Monster) { m.HP.HitDice = "" }, field: "hp.hit_dice"},
		{name: "bad hit dice", mutate: func(m *dnd5e.Monster) { m.HP.HitDice = "-1d8" }, field: "hp.hit_dice"},
		{name: "negative xp", mutate: func(m *dnd5e.Monster) { m.Challenge.XP = -10 }, field: "challenge.xp"},
		{name: "unknown size", mutate: func(m *dnd5e.Monster) { m.Size = "colossal" }, field: "size"},
		{name: "unknown alignment", mutate: func(m *dnd5e.Monster) { m.Alignment = "chaotic stupid" }, field: "alignment"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			m := testutils.Goblin()
			tc.mutate(m)

			_, err := s.orchestrator.CreateMonster(s.ctx, &monster.CreateMonsterInput{Monster: m})
			s.Require().Error(err)
			s.True(errors.IsInvalidArgument(err))

			fields, ok := errors.GetMeta(err)["validation_errors"].(map[string][]string)
			s.Require().True(ok)
			s.Contains(fields, tc.field)
		})
	}

	s.Run("nil monster", func() {
		_, err := s.orchestrator.CreateMonster(s.ctx, &monster.CreateMonsterInput{})
		s.True(errors.IsInvalidArgument(err))
	})
}

func (s *OrchestratorTestSuite) TestGetMonster() {
	s.Run("found", func() {
		mocks.ExpectMonsterGet(s.mockRepo, testutils.Orc())

		out, err := s.orchestrator.GetMonster(s.ctx, &monster.GetMonsterInput{Name: "Orc"})
		s.Require().NoError(err)
		s.Equal("Orc", out.Monster.Name)
	})

	s.Run("missing keeps not found code", func() {
		mocks.ExpectMonsterMissing(s.mockRepo, "Lich")

		_, err := s.orchestrator.GetMonster(s.ctx, &monster.GetMonsterInput{Name: "Lich"})
		s.True(errors.IsNotFound(err))
	})

	s.Run("empty name", func() {
		_, err := s.orchestrator.GetMonster(s.ctx, &monster.GetMonsterInput{})
		s.True(errors.IsInvalidArgument(err))
	})
}

func (s *OrchestratorTestSuite) TestUpdateMonster() {
	s.mockRepo.EXPECT().
		Update(s.ctx, gomock.Any()).
		Return(&monsters.UpdateOutput{Updated: false}, nil)

	out, err := s.orchestrator.UpdateMonster(s.ctx, &monster.UpdateMonsterInput{
		Name:    "Orc",
		Monster: testutils.Orc(),
	})
	s.Require().NoError(err)
	s.False(out.Updated)
}

func (s *OrchestratorTestSuite) TestUpdateMonster_RenameCollision() {
	s.mockRepo.EXPECT().
		Update(s.ctx, gomock.Any()).
		Return(nil, errors.AlreadyExists("monster \"Goblin\" already exists"))

	renamed := testutils.Orc()
	renamed.Name = "Goblin"
	_, err := s.orchestrator.UpdateMonster(s.ctx, &monster.UpdateMonsterInput{Name: "Orc", Monster: renamed})
	s.True(errors.IsAlreadyExists(err))
}

func (s *OrchestratorTestSuite) TestDeleteMonster() {
	s.mockRepo.EXPECT().
		Delete(s.ctx, &monsters.DeleteInput{Name: "Ogre"}).
		Return(&monsters.DeleteOutput{Deleted: true}, nil)

	out, err := s.orchestrator.DeleteMonster(s.ctx, &monster.DeleteMonsterInput{Name: "Ogre"})
	s.Require().NoError(err)
	s.True(out.Deleted)
}

func (s *OrchestratorTestSuite) TestListMonsters_StorageFailure() {
	s.mockRepo.EXPECT().
		List(s.ctx, gomock.Any()).
		Return(nil, errors.Storage(errors.DataLoss("truncated"), "decode"))

	_, err := s.orchestrator.ListMonsters(s.ctx, &monster.ListMonstersInput{})
	s.True(errors.IsDataLoss(err))
}

func (s *OrchestratorTestSuite) TestImportMonsters() {
	gomock.InOrder(
		mocks.ExpectMonsterCreate(s.mockRepo, testutils.MonsterGoblin, true),
		mocks.ExpectMonsterCreate(s.mockRepo, testutils.MonsterOrc, false),
		mocks.ExpectMonsterCreate(s.mockRepo, testutils.MonsterOgre, true),
	)

	out, err := s.orchestrator.ImportMonsters(s.ctx, &monster.ImportMonstersInput{
		Monsters: []*dnd5e.Monster{testutils.Goblin(), testutils.Orc(), testutils.Ogre()},
	})
	s.Require().NoError(err)
	s.Equal([]string{"Goblin", "Ogre"}, out.Created)
	s.Equal([]string{"Orc"}, out.Skipped)
}

func (s *OrchestratorTestSuite) TestImportMonsters_ValidatesBeforeWriting() {
	bad := testutils.Orc()
	bad.HP.HitDice = "lots"

	_, err := s.orchestrator.ImportMonsters(s.ctx, &monster.ImportMonstersInput{
		Monsters: []*dnd5e.Monster{testutils.Goblin(), bad},
	})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
	s.Equal(1, errors.GetMeta(err)["index"])
}
