package impl

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"personbench/config"
	"personbench/internal/domain/entity"
	domainerrors "personbench/internal/domain/errors"
	"personbench/internal/domain/repository"
	"personbench/internal/infra/faker"
	"personbench/internal/infra/metrics"
	"personbench/internal/infra/persistence/memory"
	mockRepo "personbench/internal/mocks/repository"
	mockSvc "personbench/internal/mocks/service"
	"personbench/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const sessionFnType = "func(repository.RepositoryFactory) error"

// personServiceFixtures holds all test dependencies for person service tests.
type personServiceFixtures struct {
	service   usecase.PersonUsecase
	sessions  *mockRepo.MockSessionManager
	generator *mockSvc.MockPersonGenerator
	metrics   *metrics.Metrics
}

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func createTestPersonService(t *testing.T) personServiceFixtures {
	sessions := mockRepo.NewMockSessionManager(t)
	generator := mockSvc.NewMockPersonGenerator(t)
	m := metrics.New()

	service := NewPersonService(PersonServiceParams{
		Sessions:  sessions,
		Generator: generator,
		Metrics:   m,
		Logger:    newDiscardLogger(),
	})

	return personServiceFixtures{
		service:   service,
		sessions:  sessions,
		generator: generator,
		metrics:   m,
	}
}

// personOpCount reads personbench_person_operations_total for one op/outcome pair.
func personOpCount(t *testing.T, m *metrics.Metrics, op, outcome string) float64 {
	t.Helper()

	families, err := m.Gatherer().Gather()
	require.NoError(t, err)

	for _, family := range families {
		if family.GetName() != "personbench_person_operations_total" {
			continue
		}
		for _, metric := range family.GetMetric() {
			labels := map[string]string{}
			for _, pair := range metric.GetLabel() {
				labels[pair.GetName()] = pair.GetValue()
			}
			if labels["op"] == op && labels["outcome"] == outcome {
				return metric.GetCounter().GetValue()
			}
		}
	}

	return 0
}

func generatedPerson() *entity.Person {
	return &entity.Person{
		Name:        "Margaret Hamilton",
		Age:         88,
		Address:     "1 Kendall Square, Cambridge",
		PhoneNumber: "(617) 555-0199",
	}
}

// runSessionWith makes the mocked session manager invoke fn with a factory handing out personRepo.
func runSessionWith(t *testing.T, personRepo *mockRepo.MockPersonRepository) func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
	return func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
		factory := mockRepo.NewMockRepositoryFactory(t)
		factory.EXPECT().NewPersonRepository().Return(personRepo)

		return fn(factory)
	}
}

func TestPersonService_CreatePerson_Success(t *testing.T) {
	fx := createTestPersonService(t)
	ctx := context.Background()
	createdAt := time.Date(2025, 2, 3, 4, 5, 6, 0, time.UTC)

	fx.generator.EXPECT().Generate(ctx).Return(generatedPerson(), nil)

	personRepo := mockRepo.NewMockPersonRepository(t)
	var insertedID uuid.UUID
	personRepo.EXPECT().
		CreatePerson(ctx, mock.AnythingOfType("*entity.Person")).
		Run(func(_ context.Context, person *entity.Person) {
			insertedID = person.ID
		}).
		Return(nil)
	personRepo.EXPECT().
		FindPersonByID(ctx, mock.AnythingOfType("uuid.UUID")).
		RunAndReturn(func(_ context.Context, id uuid.UUID) (*entity.Person, error) {
			stored := generatedPerson()
			stored.ID = id
			stored.CreatedAt = createdAt
			stored.UpdatedAt = createdAt

			return stored, nil
		})

	fx.sessions.EXPECT().
		Session(ctx, mock.AnythingOfType(sessionFnType)).
		RunAndReturn(runSessionWith(t, personRepo))

	person, err := fx.service.CreatePerson(ctx, nil)
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, person.ID)
	assert.Equal(t, insertedID, person.ID)
	assert.Equal(t, "Margaret Hamilton", person.Name)
	assert.Equal(t, createdAt, person.CreatedAt)
	assert.Equal(t, createdAt, person.UpdatedAt)
	assert.Nil(t, person.DeletedAt)
	assert.InDelta(t, 1, personOpCount(t, fx.metrics, metrics.OpCreatePerson, "success"), 0)
}

func TestPersonService_CreatePerson_InputOverridesGeneratedValues(t *testing.T) {
	fx := createTestPersonService(t)
	ctx := context.Background()

	name := "Frances Allen"
	age := 0
	input := &usecase.PersonInput{Name: &name, Age: &age}

	fx.generator.EXPECT().Generate(ctx).Return(generatedPerson(), nil)

	personRepo := mockRepo.NewMockPersonRepository(t)
	personRepo.EXPECT().
		CreatePerson(ctx, mock.MatchedBy(func(p *entity.Person) bool {
			return p.Name == name && p.Age == 0 && p.Address == "1 Kendall Square, Cambridge"
		})).
		Return(nil)
	personRepo.EXPECT().
		FindPersonByID(ctx, mock.AnythingOfType("uuid.UUID")).
		RunAndReturn(func(_ context.Context, id uuid.UUID) (*entity.Person, error) {
			return &entity.Person{ID: id, Name: name, Age: age}, nil
		})

	fx.sessions.EXPECT().
		Session(ctx, mock.AnythingOfType(sessionFnType)).
		RunAndReturn(runSessionWith(t, personRepo))

	person, err := fx.service.CreatePerson(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, name, person.Name)
	assert.Equal(t, 0, person.Age)
}

func TestPersonService_CreatePerson_GeneratorFailure(t *testing.T) {
	fx := createTestPersonService(t)
	ctx := context.Background()

	fx.generator.EXPECT().Generate(ctx).Return(nil, errors.New("entropy exhausted"))

	person, err := fx.service.CreatePerson(ctx, nil)
	assert.Nil(t, person)
	require.ErrorIs(t, err, domainerrors.ErrPersonGenerationFailed)
	fx.sessions.AssertNotCalled(t, "Session", mock.Anything, mock.Anything)
}

func TestPersonService_CreatePerson_ValidationFailure(t *testing.T) {
	fx := createTestPersonService(t)
	ctx := context.Background()

	blank := "   "
	fx.generator.EXPECT().Generate(ctx).Return(generatedPerson(), nil)

	_, err := fx.service.CreatePerson(ctx, &usecase.PersonInput{Address: &blank})
	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "address is required", appErr.Details())
	fx.sessions.AssertNotCalled(t, "Session", mock.Anything, mock.Anything)
}

func TestPersonService_CreatePerson_InsertErrorSkipsReRead(t *testing.T) {
	fx := createTestPersonService(t)
	ctx := context.Background()

	fx.generator.EXPECT().Generate(ctx).Return(generatedPerson(), nil)

	personRepo := mockRepo.NewMockPersonRepository(t)
	personRepo.EXPECT().
		CreatePerson(ctx, mock.AnythingOfType("*entity.Person")).
		Return(repository.ErrDuplicatePerson)

	fx.sessions.EXPECT().
		Session(ctx, mock.AnythingOfType(sessionFnType)).
		RunAndReturn(runSessionWith(t, personRepo))

	_, err := fx.service.CreatePerson(ctx, nil)
	require.ErrorIs(t, err, repository.ErrDuplicatePerson)
	personRepo.AssertNotCalled(t, "FindPersonByID", mock.Anything, mock.Anything)
	assert.InDelta(t, 1, personOpCount(t, fx.metrics, metrics.OpCreatePerson, "error"), 0)
}

func TestPersonService_CreatePerson_SessionUnavailable(t *testing.T) {
	fx := createTestPersonService(t)
	ctx := context.Background()

	fx.generator.EXPECT().Generate(ctx).Return(generatedPerson(), nil)
	fx.sessions.EXPECT().
		Session(ctx, mock.AnythingOfType(sessionFnType)).
		Return(errors.WithMessage(domainerrors.ErrSessionUnavailable, "pool exhausted"))

	_, err := fx.service.CreatePerson(ctx, nil)
	require.ErrorIs(t, err, domainerrors.ErrSessionUnavailable)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 503, appErr.HTTPCode())
}

func TestPersonService_ListPersons_Success(t *testing.T) {
	fx := createTestPersonService(t)
	ctx := context.Background()

	stored := []*entity.Person{
		{ID: uuid.New(), Name: "first"},
		{ID: uuid.New(), Name: "second"},
	}

	personRepo := mockRepo.NewMockPersonRepository(t)
	personRepo.EXPECT().ListPersons(ctx).Return(stored, nil)

	fx.sessions.EXPECT().
		Session(ctx, mock.AnythingOfType(sessionFnType)).
		RunAndReturn(runSessionWith(t, personRepo))

	persons, err := fx.service.ListPersons(ctx)
	require.NoError(t, err)
	assert.Equal(t, stored, persons)
	assert.InDelta(t, 1, personOpCount(t, fx.metrics, metrics.OpListPersons, "success"), 0)
}

func TestPersonService_ListPersons_EmptyIsNotNil(t *testing.T) {
	fx := createTestPersonService(t)
	ctx := context.Background()

	personRepo := mockRepo.NewMockPersonRepository(t)
	personRepo.EXPECT().ListPersons(ctx).Return(nil, nil)

	fx.sessions.EXPECT().
		Session(ctx, mock.AnythingOfType(sessionFnType)).
		RunAndReturn(runSessionWith(t, personRepo))

	persons, err := fx.service.ListPersons(ctx)
	require.NoError(t, err)
	assert.NotNil(t, persons)
	assert.Empty(t, persons)
}

func TestPersonService_ListPersons_DatabaseError(t *testing.T) {
	fx := createTestPersonService(t)
	ctx := context.Background()

	dbErr := domainerrors.NewDatabaseExecuteError(errors.New("connection reset"), "failed to list persons")

	personRepo := mockRepo.NewMockPersonRepository(t)
	personRepo.EXPECT().ListPersons(ctx).Return(nil, dbErr)

	fx.sessions.EXPECT().
		Session(ctx, mock.AnythingOfType(sessionFnType)).
		RunAndReturn(runSessionWith(t, personRepo))

	persons, err := fx.service.ListPersons(ctx)
	assert.Nil(t, persons)
	require.ErrorIs(t, err, dbErr)
	assert.ErrorIs(t, err, domainerrors.ErrPersonListFailed)
	assert.InDelta(t, 1, personOpCount(t, fx.metrics, metrics.OpListPersons, "error"), 0)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "PERSON_LIST_FAILED", appErr.ErrorCode())
}

func TestPersonService_ListPersons_SessionUnavailableKeepsItsCode(t *testing.T) {
	fx := createTestPersonService(t)
	ctx := context.Background()

	fx.sessions.EXPECT().
		Session(ctx, mock.AnythingOfType(sessionFnType)).
		Return(errors.Wrap(domainerrors.ErrSessionUnavailable, "failed to acquire database session"))

	persons, err := fx.service.ListPersons(ctx)
	assert.Nil(t, persons)
	require.ErrorIs(t, err, domainerrors.ErrSessionUnavailable)
	assert.NotErrorIs(t, err, domainerrors.ErrPersonListFailed)
}

func TestPersonService_ConcurrentCreatesYieldDistinctIDs(t *testing.T) {
	cfg := &config.Config{Generator: &config.GeneratorConfig{MinAge: 18, MaxAge: 99}}
	service := NewPersonService(PersonServiceParams{
		Sessions:  memory.NewSessionManager(memory.NewStore(nil), 8),
		Generator: faker.NewPersonGenerator(cfg),
		Logger:    newDiscardLogger(),
	})

	const n = 50
	ids := make([]uuid.UUID, n)

	var wg sync.WaitGroup
	for i := range n {
		wg.Add(1)
		go func() {
			defer wg.Done()

			person, err := service.CreatePerson(context.Background(), nil)
			if assert.NoError(t, err) {
				ids[i] = person.ID
			}
		}()
	}
	wg.Wait()

	seen := make(map[uuid.UUID]struct{}, n)
	for _, id := range ids {
		require.NotEqual(t, uuid.Nil, id)
		seen[id] = struct{}{}
	}
	assert.Len(t, seen, n)

	persons, err := service.ListPersons(context.Background())
	require.NoError(t, err)
	assert.GreaterOrEqual(t, len(persons), n)
}
