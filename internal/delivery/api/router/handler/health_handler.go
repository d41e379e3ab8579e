package handler

import (
	"personbench/internal/delivery/api/response"

	"github.com/labstack/echo/v4"
)

// Hello answers the root path.
func Hello(c echo.Context) error {
	return response.OK(c, response.MessageResponse{Message: "Hello, World!"})
}

// HealthCheck reports liveness. It does not touch the database.
func HealthCheck(c echo.Context) error {
	return response.OK(c, response.StatusResponse{Status: "ok"})
}
