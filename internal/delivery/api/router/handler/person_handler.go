package handler

import (
	"log/slog"

	"personbench/internal/delivery/api/dto"
	"personbench/internal/delivery/api/response"
	"personbench/internal/delivery/api/validator"
	"personbench/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PersonHandlerParams holds dependencies for PersonHandler, injected by Fx.
type PersonHandlerParams struct {
	fx.In

	PersonUC usecase.PersonUsecase
	Logger   *slog.Logger
}

// PersonHandler serves the /person endpoints.
type PersonHandler struct {
	personUC usecase.PersonUsecase
	logger   *slog.Logger
}

// NewPersonHandler is the constructor for PersonHandler
func NewPersonHandler(params PersonHandlerParams) *PersonHandler {
	return &PersonHandler{
		personUC: params.PersonUC,
		logger:   params.Logger,
	}
}

// CreatePerson stores one fabricated person. A JSON body may pin any of the fields.
func (h *PersonHandler) CreatePerson(c echo.Context) error {
	var req dto.CreatePersonRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid person input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequestWithDetails(c, "VALIDATION_FAILED", "Input validation failed", validator.FieldErrors(err))
	}

	person, err := h.personUC.CreatePerson(c.Request().Context(), req.ToInput())
	if err != nil {
		return err
	}

	return response.OK(c, dto.NewPersonResponse(person))
}

// ListPersons returns every stored person.
func (h *PersonHandler) ListPersons(c echo.Context) error {
	persons, err := h.personUC.ListPersons(c.Request().Context())
	if err != nil {
		return err
	}

	return response.OK(c, dto.NewPersonListResponse(persons))
}
