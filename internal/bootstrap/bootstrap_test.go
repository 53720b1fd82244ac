package bootstrap

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pashagolub/pgxmock/v3"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/studentrecords/internal/config"
	appMiddleware "github.com/yigit/studentrecords/internal/middleware"
)

func TestRouterWiresStudentsHealthAndMetrics(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	cfg := &config.Config{}
	cfg.Server.Mode = "production"

	deps := BuildDependencies(mock, zerolog.New(io.Discard))
	router := SetupRouter(cfg, deps)

	mock.ExpectExec(`^INSERT INTO students`).
		WithArgs("C001", "Ana", "Lopez", "Diaz", int16(3)).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	body := `{"control_number":"C001","first_name":"Ana","paternal_surname":"Lopez","maternal_surname":"Diaz","semester":3}`
	req := httptest.NewRequest(http.MethodPost, "/students", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.NotEmpty(t, w.Header().Get(appMiddleware.RequestIDHeader))
	assert.NoError(t, mock.ExpectationsWereMet())

	mock.ExpectPing()
	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `students_http_requests_total{method="POST",path="/students",status="201"} 1`)
	assert.Contains(t, w.Body.String(), "go_goroutines")
}
