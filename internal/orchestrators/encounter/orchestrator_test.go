package encounter_test

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-encounters/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-encounters/internal/errors"
	"github.com/KirkDiggler/rpg-encounters/internal/hitdice"
	"github.com/KirkDiggler/rpg-encounters/internal/orchestrators/encounter"
	"github.com/KirkDiggler/rpg-encounters/internal/pkg/idgen"
	monstersmock "github.com/KirkDiggler/rpg-encounters/internal/repositories/monsters/mock"
	"github.com/KirkDiggler/rpg-encounters/internal/testutils"
	"github.com/KirkDiggler/rpg-encounters/internal/testutils/mocks"
)

type OrchestratorTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockRepo     *monstersmock.MockRepository
	roller       *testutils.ScriptedRoller
	spans        *tracetest.SpanRecorder
	orchestrator encounter.Service
	ctx          context.Context
}

func TestOrchestratorTestSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockRepo = monstersmock.NewMockRepository(s.ctrl)
	s.roller = testutils.NewScriptedRoller()
	s.spans = tracetest.NewSpanRecorder()
	s.ctx = context.Background()

	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(s.spans))

	var err error
	s.orchestrator, err = encounter.NewOrchestrator(&encounter.Config{
		MonsterRepo: s.mockRepo,
		Roller:      s.roller,
		IDGenerator: idgen.NewSequential("monster"),
		Tracer:      provider.Tracer("test"),
	})
	s.Require().NoError(err)
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *OrchestratorTestSuite) TestGoblinPack() {
	mocks.ExpectMonsterGet(s.mockRepo, testutils.Goblin())

	// Goblin hit dice are 2d6: initiative, then two dice, per goblin
	s.roller.Queue(
		12, 3, 4,
		1, 1, 1,
		20, 6, 6,
		7, 2, 5,
	)

	out, err := s.orchestrator.Generate(s.ctx, &encounter.GenerateInput{
		CharacterLevels: []int{3, 3, 3, 3},
		Difficulty:      "medium",
		Monsters:        map[string]int{"Goblin": 4},
	})
	s.Require().NoError(err)

	s.Equal(200, out.TotalXP)
	s.Equal(400, out.AdjustedXP)
	s.Equal(dnd5e.Thresholds{Easy: 300, Medium: 600, Hard: 900, Deadly: 1600}, out.PartyThresholds)
	s.Equal(dnd5e.DifficultyEasy, out.Difficulty)

	s.Require().Len(out.Monsters, 4)
	s.Equal(&dnd5e.EncounterMonster{ID: "monster_1", Name: "Goblin", Initiative: 12, HP: 7}, out.Monsters[0])
	s.Equal(&dnd5e.EncounterMonster{ID: "monster_2", Name: "Goblin", Initiative: 1, HP: 2}, out.Monsters[1])
	s.Equal(&dnd5e.EncounterMonster{ID: "monster_3", Name: "Goblin", Initiative: 20, HP: 12}, out.Monsters[2])
	s.Equal(&dnd5e.EncounterMonster{ID: "monster_4", Name: "Goblin", Initiative: 7, HP: 7}, out.Monsters[3])
	s.Equal([]string{"1d20", "2d6", "1d20", "2d6", "1d20", "2d6", "1d20", "2d6"}, s.roller.Calls())
}

func (s *OrchestratorTestSuite) TestMixedRosterIsSortedByName() {
	mocks.ExpectMonsterGet(s.mockRepo, testutils.Orc())
	mocks.ExpectMonsterGet(s.mockRepo, testutils.Bugbear())

	// Bugbear 5d8+5, then Orc 2d8+6 twice
	s.roller.Queue(
		10, 1, 1, 1, 1, 1,
		15, 8, 8,
		2, 4, 4,
	)

	out, err := s.orchestrator.Generate(s.ctx, &encounter.GenerateInput{
		CharacterLevels: []int{4, 4},
		Monsters:        map[string]int{"Orc": 2, "Bugbear": 1},
	})
	s.Require().NoError(err)

	s.Require().Len(out.Monsters, 3)
	s.Equal("Bugbear", out.Monsters[0].Name)
	s.Equal(10, out.Monsters[0].HP)
	s.Equal("Orc", out.Monsters[1].Name)
	s.Equal(22, out.Monsters[1].HP)
	s.Equal("Orc", out.Monsters[2].Name)
	s.Equal(14, out.Monsters[2].HP)

	s.Equal(400, out.TotalXP)
	s.Equal(800, out.AdjustedXP)
	s.Equal(dnd5e.DifficultyHard, out.Difficulty)
	s.Zero(s.roller.Remaining())
}

func (s *OrchestratorTestSuite) TestHitPointsClampToOne() {
	weak := testutils.Goblin()
	weak.HP.HitDice = "1d4-10"
	mocks.ExpectMonsterGet(s.mockRepo, weak)
	s.roller.Queue(5, 1)

	out, err := s.orchestrator.Generate(s.ctx, &encounter.GenerateInput{
		CharacterLevels: []int{1},
		Monsters:        map[string]int{"Goblin": 1},
	})
	s.Require().NoError(err)
	s.Equal(1, out.Monsters[0].HP)
}

func (s *OrchestratorTestSuite) TestZeroCountEntriesAreSkipped() {
	mocks.ExpectMonsterGet(s.mockRepo, testutils.Ogre())
	s.roller.Queue(9, 5, 5, 5, 5, 5, 5, 5)

	out, err := s.orchestrator.Generate(s.ctx, &encounter.GenerateInput{
		CharacterLevels: []int{2, 2, 2},
		Monsters:        map[string]int{"Ogre": 1, "Goblin": 0},
	})
	s.Require().NoError(err)
	s.Require().Len(out.Monsters, 1)
	s.Equal(56, out.Monsters[0].HP)
	s.Equal(450, out.AdjustedXP)
	s.Equal(dnd5e.DifficultyHard, out.Difficulty)
}

func (s *OrchestratorTestSuite) TestEmptyRoster() {
	out, err := s.orchestrator.Generate(s.ctx, &encounter.GenerateInput{
		CharacterLevels: []int{4},
	})
	s.Require().NoError(err)
	s.Empty(out.Monsters)
	s.Zero(out.TotalXP)
	s.Zero(out.AdjustedXP)
	s.Equal(dnd5e.DifficultyEasy, out.Difficulty)
}

func (s *OrchestratorTestSuite) TestUnknownMonsterRollsNothing() {
	mocks.ExpectMonsterGet(s.mockRepo, testutils.Goblin())
	mocks.ExpectMonsterMissing(s.mockRepo, "Tarrasque")
	s.roller.Queue(10, 10, 10)

	out, err := s.orchestrator.Generate(s.ctx, &encounter.GenerateInput{
		CharacterLevels: []int{3},
		Monsters:        map[string]int{"Goblin": 2, "Tarrasque": 1},
	})
	s.Require().Error(err)
	s.Nil(out)
	s.True(errors.IsNotFound(err))
	s.Equal("Tarrasque", errors.GetMeta(err)["monster_name"])
	s.Empty(s.roller.Calls())

	ended := s.spans.Ended()
	s.Require().Len(ended, 1)
	s.Equal("encounter.Generate", ended[0].Name())
}

func (s *OrchestratorTestSuite) TestMalformedHitDice() {
	broken := testutils.Goblin()
	broken.HP.HitDice = "-2d6"
	mocks.ExpectMonsterGet(s.mockRepo, broken)

	_, err := s.orchestrator.Generate(s.ctx, &encounter.GenerateInput{
		CharacterLevels: []int{3},
		Monsters:        map[string]int{"Goblin": 1},
	})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
	s.Equal("-2d6", errors.GetMeta(err)["expression"])
	s.Empty(s.roller.Calls())
}

func (s *OrchestratorTestSuite) TestStorageFailurePropagates() {
	s.mockRepo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(nil, errors.Storage(errors.DataLoss("bad json"), "decode"))

	_, err := s.orchestrator.Generate(s.ctx, &encounter.GenerateInput{
		CharacterLevels: []int{3},
		Monsters:        map[string]int{"Goblin": 1},
	})
	s.Require().Error(err)
	s.True(errors.IsDataLoss(err))
}

func (s *OrchestratorTestSuite) TestInvalidInput() {
	testCases := []struct {
		name  string
		input *encounter.GenerateInput
	}{
		{name: "nil input", input: nil},
		{name: "no levels", input: &encounter.GenerateInput{Monsters: map[string]int{"Goblin": 1}}},
		{name: "negative count", input: &encounter.GenerateInput{
			CharacterLevels: []int{1},
			Monsters:        map[string]int{"Goblin": -1},
		}},
		{name: "empty name", input: &encounter.GenerateInput{
			CharacterLevels: []int{1},
			Monsters:        map[string]int{"": 1},
		}},
		{name: "unknown difficulty", input: &encounter.GenerateInput{
			CharacterLevels: []int{1},
			Difficulty:      "trivial",
		}},
		{name: "roster above cap", input: &encounter.GenerateInput{
			CharacterLevels: []int{1},
			Monsters:        map[string]int{"Goblin": encounter.MaxRosterSize + 1},
		}},
		{name: "roster split above cap", input: &encounter.GenerateInput{
			CharacterLevels: []int{1},
			Monsters:        map[string]int{"Goblin": encounter.MaxRosterSize, "Orc": 1},
		}},
		{name: "count sum overflows", input: &encounter.GenerateInput{
			CharacterLevels: []int{1},
			Monsters:        map[string]int{"Goblin": math.MaxInt, "Orc": math.MaxInt},
		}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := s.orchestrator.Generate(s.ctx, tc.input)
			s.Require().Error(err)
			s.True(errors.IsInvalidArgument(err))
		})
	}
}

func (s *OrchestratorTestSuite) TestDifficultyNormalization() {
	for _, difficulty := range []string{"DEADLY", "Hard", " easy ", "medium"} {
		s.Run(difficulty, func() {
			_, err := s.orchestrator.Generate(s.ctx, &encounter.GenerateInput{
				CharacterLevels: []int{1},
				Difficulty:      difficulty,
			})
			s.NoError(err)
		})
	}
}

func (s *OrchestratorTestSuite) TestRecordsSpan() {
	_, err := s.orchestrator.Generate(s.ctx, &encounter.GenerateInput{CharacterLevels: []int{2}})
	s.Require().NoError(err)

	ended := s.spans.Ended()
	s.Require().Len(ended, 1)
	s.Equal("encounter.Generate", ended[0].Name())

	attrs := map[string]int64{}
	for _, kv := range ended[0].Attributes() {
		if kv.Value.Type() == attribute.INT64 {
			attrs[string(kv.Key)] = kv.Value.AsInt64()
		}
	}
	s.Equal(int64(1), attrs["encounter.party_size"])
	s.Equal(int64(0), attrs["encounter.monster_count"])
}

func TestNewOrchestrator_RequiresDependencies(t *testing.T) {
	_, err := encounter.NewOrchestrator(&encounter.Config{})
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestRosterAtCapIsAccepted() {
	mocks.ExpectMonsterGet(s.mockRepo, testutils.Goblin())
	orchestrator := s.seededOrchestrator(3)

	out, err := orchestrator.Generate(s.ctx, &encounter.GenerateInput{
		CharacterLevels: []int{20, 20, 20, 20},
		Monsters:        map[string]int{"Goblin": encounter.MaxRosterSize},
	})
	s.Require().NoError(err)
	s.Len(out.Monsters, encounter.MaxRosterSize)
}

func (s *OrchestratorTestSuite) TestSeededRollsStayInRange() {
	mocks.ExpectMonsterGet(s.mockRepo, testutils.Goblin())
	orchestrator := s.seededOrchestrator(99)

	out, err := orchestrator.Generate(s.ctx, &encounter.GenerateInput{
		CharacterLevels: []int{5, 5, 5},
		Monsters:        map[string]int{"Goblin": 200},
	})
	s.Require().NoError(err)
	s.Require().Len(out.Monsters, 200)

	for _, m := range out.Monsters {
		s.GreaterOrEqual(m.Initiative, 1)
		s.LessOrEqual(m.Initiative, encounter.InitiativeDie)
		// 2d6
		s.GreaterOrEqual(m.HP, 2)
		s.LessOrEqual(m.HP, 12)
	}
}

func (s *OrchestratorTestSuite) seededOrchestrator(seed int64) encounter.Service {
	orchestrator, err := encounter.NewOrchestrator(&encounter.Config{
		MonsterRepo: s.mockRepo,
		Roller:      hitdice.NewSeededRoller(seed),
		IDGenerator: idgen.NewSequential("monster"),
	})
	s.Require().NoError(err)
	return orchestrator
}
