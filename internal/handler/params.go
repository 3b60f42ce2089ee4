package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"
)

func parseIDParam(c echo.Context, name string) (int64, error) {
	return strconv.ParseInt(c.Param(name), 10, 64)
}

// parseTaskID reads the id from the path, falling back to the ?id= query parameter.
func parseTaskID(c echo.Context) (int64, error) {
	if c.Param("id") != "" {
		return parseIDParam(c, "id")
	}
	return strconv.ParseInt(c.QueryParam("id"), 10, 64)
}
