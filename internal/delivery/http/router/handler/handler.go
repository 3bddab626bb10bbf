package handler

import (
	"net/http"

	"platter/internal/delivery/http/middleware"
	"platter/internal/delivery/http/response"
	domainerrors "platter/internal/domain/errors"
	"platter/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// currentCaller extracts the authenticated identity attached by the auth
// middleware. Routes behind Authenticate always carry one.
func currentCaller(c echo.Context) (service.Caller, error) {
	caller, ok := middleware.CallerFromContext(c)
	if !ok {
		return service.Caller{}, domainerrors.ErrForbidden.WrapMessage("caller identity missing")
	}

	return caller, nil
}

// pathUUID parses a UUID path parameter.
func pathUUID(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, domainerrors.ErrValidationFailed.WithDetails("invalid " + name + " parameter")
	}

	return id, nil
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
