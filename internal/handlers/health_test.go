package handlers_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ammerola/stockledger/internal/handlers"
	"github.com/ammerola/stockledger/test/helpers"
	"github.com/ammerola/stockledger/test/mocks"
)

func TestHealthHandler_Health(t *testing.T) {
	tests := []struct {
		name           string
		dbErr          error
		stopRedis      bool
		expectedStatus int
		expectedState  string
	}{
		{name: "all_healthy", expectedStatus: http.StatusOK, expectedState: "healthy"},
		{name: "database_down", dbErr: errors.New("connection refused"), expectedStatus: http.StatusServiceUnavailable, expectedState: "degraded"},
		{name: "redis_down", stopRedis: true, expectedStatus: http.StatusServiceUnavailable, expectedState: "degraded"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			database := mocks.NewMockDatabase(ctrl)
			database.EXPECT().Ping(gomock.Any()).Return(tt.dbErr)
			if tt.dbErr == nil {
				database.EXPECT().Health(gomock.Any()).Return(map[string]interface{}{"total_conns": int32(2)})
			}

			testRedis := helpers.SetupTestRedis(t)
			if tt.stopRedis {
				testRedis.Server.SetError("LOADING")
			}

			handler := handlers.NewHealthHandler(database, testRedis.Client, nil, helpers.LoadTestConfig(), helpers.TestLogger())

			w := httptest.NewRecorder()
			handler.Health(w, httptest.NewRequest(http.MethodGet, "/health", nil))

			assert.Equal(t, tt.expectedStatus, w.Code)

			var status handlers.HealthStatus
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &status))
			assert.Equal(t, tt.expectedState, status.Status)
			assert.Equal(t, "test", status.Environment)
			assert.Contains(t, status.Services, "database")
			assert.Contains(t, status.Services, "redis")
			assert.NotContains(t, status.Services, "asynq")
		})
	}
}

func TestHealthHandler_Readiness(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	database := mocks.NewMockDatabase(ctrl)
	database.EXPECT().Ping(gomock.Any()).Return(nil)

	testRedis := helpers.SetupTestRedis(t)
	handler := handlers.NewHealthHandler(database, testRedis.Client, nil, helpers.LoadTestConfig(), helpers.TestLogger())

	w := httptest.NewRecorder()
	handler.Readiness(w, httptest.NewRequest(http.MethodGet, "/ready", nil))

	assert.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Ready   bool              `json:"ready"`
		Details map[string]string `json:"details"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.True(t, response.Ready)
	assert.Equal(t, "ready", response.Details["redis"])
}
