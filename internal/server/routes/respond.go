package routes

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	appservices "github.com/fr0stylo/vtexgate/internal/app/services"
	"github.com/fr0stylo/vtexgate/internal/vtex"
)

// failure maps a service error onto the response: 404 with notFound for
// missing related resources, 500 with the generic message otherwise. Full
// detail only goes to the log.
type failure struct {
	log      *slog.Logger
	message  string
	notFound string
}

func (f failure) respond(c echo.Context, err error) error {
	ctx := c.Request().Context()
	if f.notFound != "" && errors.Is(err, appservices.ErrNotFound) {
		f.log.InfoContext(ctx, f.notFound, "error", err)
		return c.String(http.StatusNotFound, f.notFound)
	}

	attrs := []any{"error", err}
	var upErr *vtex.UpstreamError
	if errors.As(err, &upErr) {
		attrs = append(attrs, "upstream", upErr)
	}
	f.log.ErrorContext(ctx, f.message, attrs...)
	return c.String(http.StatusInternalServerError, f.message)
}

func pathParam(c echo.Context, name string) string {
	return strings.TrimSpace(c.Param(name))
}

func queryParam(c echo.Context, name string) string {
	return strings.TrimSpace(c.QueryParam(name))
}
