package handler

import (
	"log/slog"
	"net/http"

	"platter/internal/delivery/http/response"
	"platter/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// RestaurantHandler holds dependencies for restaurant handlers.
type RestaurantHandler struct {
	uc     usecase.RestaurantUsecase
	logger *slog.Logger
}

// NewRestaurantHandler is the constructor for RestaurantHandler, injected by Fx.
func NewRestaurantHandler(uc usecase.RestaurantUsecase, logger *slog.Logger) *RestaurantHandler {
	return &RestaurantHandler{
		uc:     uc,
		logger: logger,
	}
}

// blockInput names the customer targeted by a block or unblock request.
type blockInput struct {
	UserID uuid.UUID `json:"userId" validate:"required"`
}

// List handles the public restaurant directory request.
func (h *RestaurantHandler) List(c echo.Context) error {
	caller, err := currentCaller(c)
	if err != nil {
		return err
	}

	var input usecase.ListRestaurantsInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid listing parameters")
	}

	output, err := h.uc.List(c.Request().Context(), caller, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Restaurants retrieved successfully")
}

// ListOwned handles the owner's restaurant listing request.
func (h *RestaurantHandler) ListOwned(c echo.Context) error {
	caller, err := currentCaller(c)
	if err != nil {
		return err
	}

	var input usecase.ListRestaurantsInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid listing parameters")
	}

	output, err := h.uc.ListOwned(c.Request().Context(), caller, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Restaurants retrieved successfully")
}

// Create handles the restaurant creation request.
func (h *RestaurantHandler) Create(c echo.Context) error {
	caller, err := currentCaller(c)
	if err != nil {
		return err
	}

	var input *usecase.CreateRestaurantInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid restaurant input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	restaurant, err := h.uc.Create(c.Request().Context(), caller, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, restaurant, "Restaurant created successfully")
}

// Get handles the restaurant lookup request.
func (h *RestaurantHandler) Get(c echo.Context) error {
	caller, err := currentCaller(c)
	if err != nil {
		return err
	}
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	restaurant, err := h.uc.Get(c.Request().Context(), caller, id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, restaurant, "Restaurant retrieved successfully")
}

// Update handles the restaurant profile update request.
func (h *RestaurantHandler) Update(c echo.Context) error {
	caller, err := currentCaller(c)
	if err != nil {
		return err
	}
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var input *usecase.UpdateRestaurantInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid restaurant input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	restaurant, err := h.uc.Update(c.Request().Context(), caller, id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, restaurant, "Restaurant updated successfully")
}

// Delete handles the restaurant deletion request, cascading over the
// restaurant's meals, orders and blocklist entries.
func (h *RestaurantHandler) Delete(c echo.Context) error {
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

	return response.Success(c, http.StatusOK, nil, "Restaurant deleted successfully")
}

// ListCustomers handles the owner's customer management listing.
func (h *RestaurantHandler) ListCustomers(c echo.Context) error {
	caller, err := currentCaller(c)
	if err != nil {
		return err
	}
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var input usecase.ListCustomersInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid listing parameters")
	}

	output, err := h.uc.ListCustomers(c.Request().Context(), caller, id, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Customers retrieved successfully")
}

// Block handles adding a customer to the restaurant's ordering denylist.
func (h *RestaurantHandler) Block(c echo.Context) error {
	caller, err := currentCaller(c)
	if err != nil {
		return err
	}
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var input *blockInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid block input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.BlockUser(c.Request().Context(), caller, id, input.UserID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "User blocked successfully")
}

// Unblock handles removing a customer from the restaurant's ordering denylist.
func (h *RestaurantHandler) Unblock(c echo.Context) error {
	caller, err := currentCaller(c)
	if err != nil {
		return err
	}
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var input *blockInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid unblock input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.UnblockUser(c.Request().Context(), caller, id, input.UserID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "User unblocked successfully")
}
