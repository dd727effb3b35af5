package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scrape(t *testing.T) string {
	t.Helper()
	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	return rec.Body.String()
}

func TestMiddlewareLabelsByRouteTemplate(t *testing.T) {
	e := echo.New()
	e.Use(Middleware())
	e.GET("/v1/things/:id", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	for _, id := range []string{"1", "2"} {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/things/"+id, nil))
		require.Equal(t, http.StatusOK, rec.Code)
	}

	body := scrape(t)
	assert.Contains(t, body, `choukette_http_requests_total{method="GET",route="/v1/things/:id",status="200"} 2`)
	assert.NotContains(t, body, `route="/v1/things/1"`)
}

func TestMiddlewareRecordsHTTPErrors(t *testing.T) {
	e := echo.New()
	e.Use(Middleware())
	e.GET("/v1/broken", func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusTeapot)
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/broken", nil))

	assert.Contains(t, scrape(t), `choukette_http_requests_total{method="GET",route="/v1/broken",status="418"} 1`)
}
