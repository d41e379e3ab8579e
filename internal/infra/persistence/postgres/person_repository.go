package postgres

import (
	"context"
	"time"

	"personbench/internal/domain/entity"
	domainerrors "personbench/internal/domain/errors"
	"personbench/internal/domain/repository"
	"personbench/internal/infra/persistence/model"
	"personbench/internal/infra/persistence/postgres/query"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// personRepository implements the repository.PersonRepository interface.
type personRepository struct {
	q *query.Query
}

// NewPersonRepository is the constructor for personRepository.
// It builds the GORM Gen query builder over the session's handle.
func NewPersonRepository(db *gorm.DB) repository.PersonRepository {
	return &personRepository{
		q: query.Use(db),
	}
}

// CreatePerson inserts one row. With SkipDefaultTransaction the INSERT auto-commits on its own.
func (repo *personRepository) CreatePerson(ctx context.Context, person *entity.Person) error {
	personM := fromPersonDomain(person)

	if err := repo.q.PersonModel.WithContext(ctx).Create(personM); err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicatePerson
		}
		if isConstraintViolation(err) {
			return domainerrors.ErrPersonCreationFailed.WrapMessage("person violates a table constraint")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create person")
	}

	// Update the entity with generated values
	person.ID = personM.ID
	person.CreatedAt = personM.CreatedAt
	person.UpdatedAt = personM.UpdatedAt

	return nil
}

// FindPersonByID retrieves a person by its unique ID. WriteDB sends the read to the primary
// so a freshly created row is visible even when read replicas lag.
func (repo *personRepository) FindPersonByID(ctx context.Context, id uuid.UUID) (*entity.Person, error) {
	personM, err := repo.q.PersonModel.WithContext(ctx).
		WriteDB().
		Where(repo.q.PersonModel.ID.Eq(id)).
		First()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPersonNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find person by ID")
	}

	return toPersonDomain(personM), nil
}

// ListPersons retrieves every person, excluding soft-deleted rows, oldest first.
func (repo *personRepository) ListPersons(ctx context.Context) ([]*entity.Person, error) {
	personModels, err := repo.q.PersonModel.WithContext(ctx).
		Order(repo.q.PersonModel.CreatedAt, repo.q.PersonModel.ID).
		Find()
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list persons")
	}

	persons := make([]*entity.Person, 0, len(personModels))
	for _, personM := range personModels {
		persons = append(persons, toPersonDomain(personM))
	}

	return persons, nil
}

// --- Mapper Functions ---

// toPersonDomain converts a GORM PersonModel to a domain Person entity.
func toPersonDomain(data *model.PersonModel) *entity.Person {
	if data == nil {
		return nil
	}

	var deletedAt *time.Time
	if data.DeletedAt.Valid {
		t := data.DeletedAt.Time
		deletedAt = &t
	}

	return &entity.Person{
		ID:          data.ID,
		Name:        data.Name,
		Age:         data.Age,
		Address:     data.Address,
		PhoneNumber: data.PhoneNumber,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
		DeletedAt:   deletedAt,
	}
}

// fromPersonDomain converts a domain Person entity to a GORM PersonModel.
func fromPersonDomain(data *entity.Person) *model.PersonModel {
	if data == nil {
		return nil
	}

	personM := &model.PersonModel{
		ID:          data.ID,
		Name:        data.Name,
		Age:         data.Age,
		Address:     data.Address,
		PhoneNumber: data.PhoneNumber,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
	if data.DeletedAt != nil {
		personM.DeletedAt = gorm.DeletedAt{Time: *data.DeletedAt, Valid: true}
	}

	return personM
}
