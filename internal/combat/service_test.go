package combat

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/StormSheet_Go/internal/dice"
	"github.com/osse101/StormSheet_Go/internal/domain"
	"github.com/osse101/StormSheet_Go/internal/event"
)

type mockSkillSource struct {
	mock.Mock
}

func (m *mockSkillSource) SkillTotal(ctx context.Context, characterID, skill string) (int, error) {
	args := m.Called(ctx, characterID, skill)
	return args.Int(0), args.Error(1)
}

type recordedEvents struct {
	mu     sync.Mutex
	events []event.Event
}

func (r *recordedEvents) handle(_ context.Context, e event.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
	return nil
}

func (r *recordedEvents) types() []event.Type {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]event.Type, 0, len(r.events))
	for _, e := range r.events {
		out = append(out, e.Type)
	}
	return out
}

func newTestPublisher(t *testing.T) (*event.ResilientPublisher, *recordedEvents) {
	t.Helper()
	bus := event.NewMemoryBus()
	rec := &recordedEvents{}
	bus.Subscribe(event.AttackResolved, rec.handle)
	bus.Subscribe(event.CombinationCompleted, rec.handle)

	pub, err := event.NewResilientPublisher(bus, 1, 10*time.Millisecond, t.TempDir()+"/deadletter.jsonl")
	require.NoError(t, err)
	t.Cleanup(func() { _ = pub.Shutdown(context.Background()) })
	return pub, rec
}

func TestService_Execute(t *testing.T) {
	pub, rec := newTestPublisher(t)
	svc := NewService(dice.NewSequenceRoller(11, 4), nil, pub, 0)

	result, err := svc.Execute(context.Background(), baseRequest())
	require.NoError(t, err)

	assert.Equal(t, 21, result.AttackRoll.Total)
	assert.Equal(t, []event.Type{event.AttackResolved}, rec.types())
}

func TestService_Execute_InvalidPublishesNothing(t *testing.T) {
	pub, rec := newTestPublisher(t)
	svc := NewService(dice.NewSequenceRoller(), nil, pub, 0)

	req := baseRequest()
	req.SkillTotal = -1
	result, err := svc.Execute(context.Background(), req)

	assert.Nil(t, result)
	assert.ErrorIs(t, err, domain.ErrNegativeSkillTotal)
	assert.Empty(t, rec.types())
}

func TestService_Combination(t *testing.T) {
	pub, rec := newTestPublisher(t)
	svc := NewService(dice.NewSeededRoller(1), nil, pub, 5)

	summary, err := svc.Combination(context.Background(), baseRequest(), 3)
	require.NoError(t, err)
	assert.Len(t, summary.Attacks, 3)

	types := rec.types()
	require.Len(t, types, 4)
	assert.Equal(t, event.CombinationCompleted, types[3])
}

func TestService_Combination_RespectsMax(t *testing.T) {
	svc := NewService(dice.NewSeededRoller(1), nil, nil, 5)

	_, err := svc.Combination(context.Background(), baseRequest(), 6)
	assert.ErrorIs(t, err, domain.ErrInvalidAttackCount)

	_, err = svc.Combination(context.Background(), baseRequest(), 0)
	assert.ErrorIs(t, err, domain.ErrInvalidAttackCount)
}

func TestService_Validate(t *testing.T) {
	svc := NewService(dice.NewSeededRoller(1), nil, nil, 0)

	assert.True(t, svc.Validate(context.Background(), baseRequest()).IsValid)

	req := baseRequest()
	req.TargetDefense = 0
	got := svc.Validate(context.Background(), req)
	assert.False(t, got.IsValid)
	assert.Contains(t, got.Error, domain.ErrMsgNonPositiveDefense)
}

func TestService_ExecuteForCharacter(t *testing.T) {
	skills := new(mockSkillSource)
	skills.On("SkillTotal", mock.Anything, "kal", "heavy_weapons").Return(5, nil)

	svc := NewService(dice.NewSequenceRoller(10, 2), skills, nil, 0)

	req := baseRequest()
	req.SkillTotal = 99
	result, err := svc.ExecuteForCharacter(context.Background(), "kal", "heavy_weapons", req)
	require.NoError(t, err)

	assert.Equal(t, 5, result.AttackRoll.SkillModifier, "skill comes from the sheet")
	assert.Equal(t, 17, result.AttackRoll.Total)
	skills.AssertExpectations(t)
}

func TestService_ExecuteForCharacter_LookupErrors(t *testing.T) {
	skills := new(mockSkillSource)
	skills.On("SkillTotal", mock.Anything, "ghost", "agility").Return(0, domain.ErrCharacterNotFound)

	svc := NewService(dice.NewSequenceRoller(10), skills, nil, 0)

	_, err := svc.ExecuteForCharacter(context.Background(), "ghost", "agility", baseRequest())
	assert.ErrorIs(t, err, domain.ErrCharacterNotFound)

	_, err = NewService(dice.NewSequenceRoller(10), nil, nil, 0).ExecuteForCharacter(context.Background(), "x", "y", baseRequest())
	assert.ErrorIs(t, err, domain.ErrCharacterNotFound)
}
