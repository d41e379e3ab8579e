// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"personbench/internal/domain/entity"
	domainerrors "personbench/internal/domain/errors"
	"personbench/internal/domain/repository"
	"personbench/internal/domain/service"
	"personbench/internal/errors"
	logs "personbench/internal/infra/log"
	"personbench/internal/infra/metrics"
	"personbench/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// personService implements the PersonUsecase interface.
type personService struct {
	sessions  repository.SessionManager
	generator service.PersonGenerator
	metrics   *metrics.Metrics
	logger    *slog.Logger
}

// PersonServiceParams holds dependencies for PersonService, injected by Fx.
type PersonServiceParams struct {
	fx.In

	Sessions  repository.SessionManager
	Generator service.PersonGenerator
	Metrics   *metrics.Metrics `optional:"true"`
	Logger    *slog.Logger
}

// NewPersonService is the constructor for personService.
func NewPersonService(params PersonServiceParams) usecase.PersonUsecase {
	return &personService{
		sessions:  params.Sessions,
		generator: params.Generator,
		metrics:   params.Metrics,
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *personService) log(ctx context.Context) *slog.Logger {
	return logs.FromContext(ctx, srv.logger)
}

// CreatePerson builds a candidate, inserts it and re-reads it on the same session so the
// response carries the values the store defaulted.
func (srv *personService) CreatePerson(ctx context.Context, input *usecase.PersonInput) (person *entity.Person, err error) {
	start := time.Now()
	defer func() {
		srv.metrics.ObservePersonOperation(metrics.OpCreatePerson, err, time.Since(start))
	}()

	candidate, err := srv.generator.Generate(ctx)
	if err != nil {
		return nil, errors.Wrap(errors.Join(domainerrors.ErrPersonGenerationFailed, err), "failed to generate person")
	}

	applyPersonInput(candidate, input)
	candidate.ID = uuid.New()

	if err := validatePerson(candidate); err != nil {
		return nil, err
	}

	var stored *entity.Person
	err = srv.sessions.Session(ctx, func(repoFactory repository.RepositoryFactory) error {
		personRepo := repoFactory.NewPersonRepository()

		if err := personRepo.CreatePerson(ctx, candidate); err != nil {
			return errors.Wrap(err, "failed to create person")
		}

		var findErr error
		stored, findErr = personRepo.FindPersonByID(ctx, candidate.ID)
		if findErr != nil {
			return errors.Wrap(findErr, "failed to re-read created person")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to create person", slog.String("personID", candidate.ID.String()), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute create person session")
	}

	srv.log(ctx).Debug("Person created", slog.String("personID", stored.ID.String()))

	return stored, nil
}

// ListPersons reads every live person in one session.
func (srv *personService) ListPersons(ctx context.Context) (persons []*entity.Person, err error) {
	start := time.Now()
	defer func() {
		srv.metrics.ObservePersonOperation(metrics.OpListPersons, err, time.Since(start))
	}()

	err = srv.sessions.Session(ctx, func(repoFactory repository.RepositoryFactory) error {
		var listErr error
		persons, listErr = repoFactory.NewPersonRepository().ListPersons(ctx)

		return errors.Wrap(listErr, "failed to list persons")
	})
	if err != nil {
		srv.log(ctx).Error("Failed to list persons", slog.Any("error", err))

		if !errors.Is(err, domainerrors.ErrSessionUnavailable) {
			err = errors.Join(domainerrors.ErrPersonListFailed, err)
		}

		return nil, errors.Wrap(err, "failed to execute list persons session")
	}

	if persons == nil {
		persons = []*entity.Person{}
	}

	return persons, nil
}

func applyPersonInput(person *entity.Person, input *usecase.PersonInput) {
	if input == nil {
		return
	}

	if input.Name != nil {
		person.Name = *input.Name
	}
	if input.Age != nil {
		person.Age = *input.Age
	}
	if input.Address != nil {
		person.Address = *input.Address
	}
	if input.PhoneNumber != nil {
		person.PhoneNumber = *input.PhoneNumber
	}
}

// validatePerson checks the candidate against the NOT NULL columns before it reaches the database.
func validatePerson(person *entity.Person) error {
	switch {
	case strings.TrimSpace(person.Name) == "":
		return domainerrors.ErrValidationFailed.WithDetails("name is required")
	case strings.TrimSpace(person.Address) == "":
		return domainerrors.ErrValidationFailed.WithDetails("address is required")
	case strings.TrimSpace(person.PhoneNumber) == "":
		return domainerrors.ErrValidationFailed.WithDetails("phone_number is required")
	case person.Age < 0:
		return domainerrors.ErrValidationFailed.WithDetails("age must not be negative")
	}

	return nil
}
