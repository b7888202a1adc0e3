package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ammerola/stockledger/internal/core/domain"
	"github.com/ammerola/stockledger/internal/core/ports"
	"github.com/ammerola/stockledger/test/helpers"
	"github.com/ammerola/stockledger/test/mocks"
)

func postJSON(t *testing.T, router http.Handler, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestMovementHandler_StockIn(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		setupMocks     func(*mocks.MockMovementService)
		expectedStatus int
	}{
		{
			name: "records_inflow_for_tracked_size",
			body: `{"variant_id": 3, "size_id": 2, "quantity": 10, "unit_cost": "4.50", "timestamp": "2025-06-01T09:00:00Z"}`,
			setupMocks: func(m *mocks.MockMovementService) {
				m.EXPECT().
					RecordInflow(gomock.Any(), tenantID, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ int64, e *domain.InflowEvent) (int64, error) {
						assert.Equal(t, helpers.Key(3, 2, 0), e.Key)
						assert.Equal(t, 10, e.Quantity)
						assert.Equal(t, actorID, e.ActorUserID)
						assert.True(t, decimal.RequireFromString("4.5").Equal(e.UnitCost))
						assert.Equal(t, time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC), e.Timestamp)
						e.ID = 77
						return 77, nil
					})
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "missing_variant",
			body:           `{"quantity": 10}`,
			setupMocks:     func(m *mocks.MockMovementService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "unknown_field",
			body:           `{"variant_id": 3, "quantity": 1, "lot": "A"}`,
			setupMocks:     func(m *mocks.MockMovementService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "foreign_variant_is_forbidden",
			body: `{"variant_id": 4, "quantity": 1}`,
			setupMocks: func(m *mocks.MockMovementService) {
				m.EXPECT().RecordInflow(gomock.Any(), tenantID, gomock.Any()).Return(int64(0), domain.ErrNotOwned)
			},
			expectedStatus: http.StatusForbidden,
		},
		{
			name: "zero_quantity_rejected_by_service",
			body: `{"variant_id": 3, "quantity": 0}`,
			setupMocks: func(m *mocks.MockMovementService) {
				m.EXPECT().RecordInflow(gomock.Any(), tenantID, gomock.Any()).Return(int64(0), domain.ErrInvalidArgument)
			},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := mocks.NewMockMovementService(ctrl)
			tt.setupMocks(mockService)

			w := postJSON(t, newRouter(t, mocks.NewMockInventoryService(ctrl), mockService), "/api/v1/stock-in", tt.body)
			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestMovementHandler_StockOut(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mocks.NewMockMovementService(ctrl)
	mockService.EXPECT().
		RecordOutflow(gomock.Any(), tenantID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int64, e *domain.OutflowEvent) (int64, error) {
			assert.Equal(t, helpers.Key(3, 0, 5), e.Key)
			require.NotNil(t, e.Reason)
			assert.Equal(t, "sold", *e.Reason)
			e.ID = 12
			return 12, nil
		})

	w := postJSON(t, newRouter(t, mocks.NewMockInventoryService(ctrl), mockService), "/api/v1/stock-out",
		`{"variant_id": 3, "size_id": null, "color_id": 5, "quantity": 2, "reason": "sold"}`)

	require.Equal(t, http.StatusCreated, w.Code)
	var event domain.OutflowEvent
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &event))
	assert.Equal(t, int64(12), event.ID)
	assert.False(t, event.Key.SizeID.IsTracked())
}

func TestMovementHandler_StockAdjustment(t *testing.T) {
	tests := []struct {
		name              string
		adjustmentType    string
		expectedDirection domain.Direction
	}{
		{name: "increase", adjustmentType: "Increase", expectedDirection: domain.DirectionIncrease},
		{name: "decrease_lowercase", adjustmentType: "decrease", expectedDirection: domain.DirectionDecrease},
		{name: "unknown_type_passes_through", adjustmentType: "Sideways", expectedDirection: domain.Direction("Sideways")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := mocks.NewMockMovementService(ctrl)
			mockService.EXPECT().
				RecordAdjustment(gomock.Any(), tenantID, gomock.Any()).
				DoAndReturn(func(_ context.Context, _ int64, e *domain.AdjustmentEvent) (int64, error) {
					assert.Equal(t, tt.expectedDirection, e.Direction)
					e.OwnerUserID = tenantID
					if err := e.Validate(); err != nil {
						return 0, err
					}
					return 5, nil
				})

			w := postJSON(t, newRouter(t, mocks.NewMockInventoryService(ctrl), mockService), "/api/v1/stock-adjustments",
				`{"variant_id": 3, "quantity": 2, "adjustment_type": "`+tt.adjustmentType+`"}`)

			if tt.expectedDirection == domain.DirectionIncrease || tt.expectedDirection == domain.DirectionDecrease {
				assert.Equal(t, http.StatusCreated, w.Code)
			} else {
				assert.Equal(t, http.StatusBadRequest, w.Code)
			}
		})
	}
}

func getPath(t *testing.T, router http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestMovementHandler_ListStockIn(t *testing.T) {
	from := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	until := time.Date(2025, 6, 8, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name           string
		query          string
		setupMocks     func(*mocks.MockMovementService)
		expectedStatus int
	}{
		{
			name:  "defaults",
			query: "",
			setupMocks: func(m *mocks.MockMovementService) {
				m.EXPECT().
					ListInflows(gomock.Any(), domain.MovementQuery{TenantID: tenantID, Page: 1, PageSize: 20}).
					Return(&ports.Page[domain.InflowEvent]{Items: []*domain.InflowEvent{}, Page: 1, PageSize: 20}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:  "search_and_inclusive_day_range",
			query: "?search=shirt&from=2025-06-01&to=2025-06-07&page=2&page_size=5",
			setupMocks: func(m *mocks.MockMovementService) {
				m.EXPECT().
					ListInflows(gomock.Any(), domain.MovementQuery{
						TenantID: tenantID, Search: "shirt", From: &from, Until: &until, Page: 2, PageSize: 5,
					}).
					Return(&ports.Page[domain.InflowEvent]{Items: []*domain.InflowEvent{}}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "bad_date",
			query:          "?from=06/01/2025",
			setupMocks:     func(m *mocks.MockMovementService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "adjustment_type_not_allowed",
			query:          "?adjustment_type=Increase",
			setupMocks:     func(m *mocks.MockMovementService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:  "service_rejects_paging",
			query: "?page=0",
			setupMocks: func(m *mocks.MockMovementService) {
				m.EXPECT().ListInflows(gomock.Any(), gomock.Any()).Return(nil, domain.ErrInvalidArgument)
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:  "store_unavailable",
			query: "",
			setupMocks: func(m *mocks.MockMovementService) {
				m.EXPECT().ListInflows(gomock.Any(), gomock.Any()).Return(nil, domain.ErrTransientStore)
			},
			expectedStatus: http.StatusServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := mocks.NewMockMovementService(ctrl)
			tt.setupMocks(mockService)

			w := getPath(t, newRouter(t, mocks.NewMockInventoryService(ctrl), mockService), "/api/v1/stock-in"+tt.query)
			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestMovementHandler_ListStockAdjustments(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mocks.NewMockMovementService(ctrl)
	mockService.EXPECT().
		ListAdjustments(gomock.Any(), domain.MovementQuery{
			TenantID: tenantID, Direction: domain.DirectionDecrease, Page: 1, PageSize: 20,
		}).
		Return(&ports.Page[domain.AdjustmentEvent]{
			Items: []*domain.AdjustmentEvent{
				{Movement: domain.Movement{ID: 3, Key: helpers.Key(1, 0, 0), Quantity: 2, ProductName: "Shirt"}, Direction: domain.DirectionDecrease},
			},
			Page: 1, PageSize: 20, TotalCount: 1, TotalPages: 1,
		}, nil)

	router := newRouter(t, mocks.NewMockInventoryService(ctrl), mockService)
	w := getPath(t, router, "/api/v1/stock-adjustments?adjustment_type=decrease")
	require.Equal(t, http.StatusOK, w.Code)

	var page ports.Page[domain.AdjustmentEvent]
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))
	require.Len(t, page.Items, 1)
	assert.Equal(t, domain.DirectionDecrease, page.Items[0].Direction)
	assert.Equal(t, "Shirt", page.Items[0].ProductName)

	w = getPath(t, router, "/api/v1/stock-adjustments?adjustment_type=Sideways")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMovementHandler_GetEvents(t *testing.T) {
	tests := []struct {
		name           string
		path           string
		setupMocks     func(*mocks.MockMovementService)
		expectedStatus int
	}{
		{
			name: "stock_in",
			path: "/api/v1/stock-in/5",
			setupMocks: func(m *mocks.MockMovementService) {
				m.EXPECT().GetInflow(gomock.Any(), tenantID, int64(5)).
					Return(&domain.InflowEvent{Movement: domain.Movement{ID: 5}}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "foreign_stock_out",
			path: "/api/v1/stock-out/6",
			setupMocks: func(m *mocks.MockMovementService) {
				m.EXPECT().GetOutflow(gomock.Any(), tenantID, int64(6)).Return(nil, domain.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name: "adjustment",
			path: "/api/v1/stock-adjustments/7",
			setupMocks: func(m *mocks.MockMovementService) {
				m.EXPECT().GetAdjustment(gomock.Any(), tenantID, int64(7)).
					Return(&domain.AdjustmentEvent{Movement: domain.Movement{ID: 7}, Direction: domain.DirectionIncrease}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "invalid_id",
			path:           "/api/v1/stock-in/abc",
			setupMocks:     func(m *mocks.MockMovementService) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := mocks.NewMockMovementService(ctrl)
			tt.setupMocks(mockService)

			w := getPath(t, newRouter(t, mocks.NewMockInventoryService(ctrl), mockService), tt.path)
			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestMovementHandler_DailyActivity(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	day := time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC)
	mockService := mocks.NewMockMovementService(ctrl)
	mockService.EXPECT().DailyActivity(gomock.Any(), tenantID, 7).Return([]domain.DailyActivity{
		{Date: day, StockIn: domain.DailyTotals{Events: 2, Quantity: 9}},
	}, nil)

	router := newRouter(t, mocks.NewMockInventoryService(ctrl), mockService)
	w := getPath(t, router, "/api/v1/movements/daily?days=7")
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Days  []domain.DailyActivity `json:"days"`
		Count int                    `json:"count"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, 1, body.Count)
	assert.Equal(t, int64(9), body.Days[0].StockIn.Quantity)

	w = getPath(t, router, "/api/v1/movements/daily?days=-1")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
