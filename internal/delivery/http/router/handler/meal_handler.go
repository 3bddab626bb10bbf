package handler

import (
	"log/slog"
	"net/http"

	"platter/internal/delivery/http/response"
	"platter/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// MealHandler holds dependencies for meal handlers.
type MealHandler struct {
	uc     usecase.MealUsecase
	logger *slog.Logger
}

// NewMealHandler is the constructor for MealHandler, injected by Fx.
func NewMealHandler(uc usecase.MealUsecase, logger *slog.Logger) *MealHandler {
	return &MealHandler{
		uc:     uc,
		logger: logger,
	}
}

// List handles the meal listing request. Filtering by restaurant applies the
// blocklist check for customer callers.
func (h *MealHandler) List(c echo.Context) error {
	caller, err := currentCaller(c)
	if err != nil {
		return err
	}

	var input usecase.ListMealsInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid listing parameters")
	}

	output, err := h.uc.List(c.Request().Context(), caller, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Meals retrieved successfully")
}

// Create handles the meal creation request.
func (h *MealHandler) Create(c echo.Context) error {
	caller, err := currentCaller(c)
	if err != nil {
		return err
	}

	var input *usecase.CreateMealInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid meal input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	meal, err := h.uc.Create(c.Request().Context(), caller, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, meal, "Meal created successfully")
}

// Get handles the meal lookup request.
func (h *MealHandler) Get(c echo.Context) error {
	caller, err := currentCaller(c)
	if err != nil {
		return err
	}
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	meal, err := h.uc.Get(c.Request().Context(), caller, id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, meal, "Meal retrieved successfully")
}

// Update handles the meal update request.
func (h *MealHandler) Update(c echo.Context) error {
	caller, err := currentCaller(c)
	if err != nil {
		return err
	}
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var input *usecase.UpdateMealInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid meal input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	meal, err := h.uc.Update(c.Request().Context(), caller, id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, meal, "Meal updated successfully")
}

// Delete handles the meal deletion request.
func (h *MealHandler) Delete(c echo.Context) error {
	caller, err := currentCaller(c)
	if err != nil {
		return err
	}
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Request().Context(), caller, id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Meal deleted successfully")
}
