package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/agrogestor/backend/internal/domain/models"
	"github.com/agrogestor/backend/internal/repository/record"
	"github.com/agrogestor/backend/internal/server/handlers"
	"github.com/agrogestor/backend/internal/server/router"
	"github.com/agrogestor/backend/internal/service/records"
	weathersvc "github.com/agrogestor/backend/internal/service/weather"
)

type stubForecastClient struct {
	data *models.WeatherData
	err  error
}

func (s *stubForecastClient) Fetch(context.Context, float64, float64) (*models.WeatherData, error) {
	return s.data, s.err
}

func setup(t *testing.T) (*gin.Engine, *records.Service) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	svc := records.NewService(record.NewMemoryStore(), nil)
	forecast := &stubForecastClient{data: &models.WeatherData{Current: models.CurrentWeather{Temp: 24, WeatherCode: 0}}}
	weather := weathersvc.NewService(forecast, -15.7975, -47.8919, time.Minute, nil)

	engine := router.New(router.Handlers{
		Dashboard:  handlers.NewDashboardHandler(svc, nil),
		Finance:    handlers.NewFinanceHandler(svc, nil),
		Inventory:  handlers.NewInventoryHandler(svc, nil),
		Production: handlers.NewProductionHandler(svc, nil),
		Alerts:     handlers.NewAlertHandler(svc, nil),
		Weather:    handlers.NewWeatherHandler(weather, nil),
	}, nil)

	return engine, svc
}

func do(t *testing.T, engine *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), out); err != nil {
		t.Fatalf("invalid response body %q: %v", w.Body.String(), err)
	}
}

func TestCreateTask_MissingTitleIsRejected(t *testing.T) {
	engine, svc := setup(t)

	w := do(t, engine, http.MethodPost, "/api/tasks", `{"title": ""}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if len(svc.ListTasks(context.Background())) != 0 {
		t.Fatal("rejected submit must not reach the store")
	}
}

func TestCreateTransaction_RoundTrip(t *testing.T) {
	engine, _ := setup(t)

	w := do(t, engine, http.MethodPost, "/api/transactions",
		`{"description": "sold milk", "amount": 300, "type": "INCOME", "category": "sales"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	w = do(t, engine, http.MethodPost, "/api/transactions",
		`{"description": "bought seed", "amount": 120, "type": "EXPENSE", "category": "supplies"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	w = do(t, engine, http.MethodGet, "/api/transactions", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp struct {
		Transactions []models.Transaction `json:"transactions"`
		Income       float64              `json:"income"`
		Expense      float64              `json:"expense"`
		Balance      float64              `json:"balance"`
	}
	decode(t, w, &resp)

	if len(resp.Transactions) != 2 || resp.Transactions[0].Description != "bought seed" {
		t.Fatalf("expected newest first, got %+v", resp.Transactions)
	}
	if resp.Income != 300 || resp.Expense != 120 || resp.Balance != 180 {
		t.Fatalf("unexpected totals: %+v", resp)
	}
}

func TestCreateTransaction_RejectsNonPositiveAmount(t *testing.T) {
	engine, _ := setup(t)

	w := do(t, engine, http.MethodPost, "/api/transactions",
		`{"description": "bad", "amount": -5, "type": "EXPENSE", "category": "misc"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestAdjustStock_ClampsAndReportsLowStock(t *testing.T) {
	engine, svc := setup(t)

	item, err := svc.CreateInventoryItem(context.Background(), models.CreateInventoryItemRequest{
		Name: "Adubo NPK", Quantity: 5, Unit: "kg", MinThreshold: 10,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	w := do(t, engine, http.MethodPost, "/api/inventory/"+item.ID+"/adjust", `{"delta": -20}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var adjusted models.InventoryItem
	decode(t, w, &adjusted)
	if adjusted.Quantity != 0 {
		t.Fatalf("expected clamped quantity 0, got %v", adjusted.Quantity)
	}

	w = do(t, engine, http.MethodGet, "/api/inventory", "")
	var resp struct {
		Items         []models.InventoryItem `json:"items"`
		LowStockCount int                    `json:"lowStockCount"`
	}
	decode(t, w, &resp)
	if resp.LowStockCount != 1 {
		t.Fatalf("expected 1 low stock item, got %d", resp.LowStockCount)
	}
}

func TestAdjustStock_UnknownIDIs404(t *testing.T) {
	engine, _ := setup(t)

	w := do(t, engine, http.MethodPost, "/api/inventory/nope/adjust", `{"delta": 1}`)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestDashboardSummary_Aggregates(t *testing.T) {
	engine, svc := setup(t)
	ctx := context.Background()

	task, err := svc.CreateTask(ctx, "repair fence")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.CreateTask(ctx, "order feed"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.ToggleTask(ctx, task.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.CreateTransaction(ctx, models.CreateTransactionRequest{
		Description: "sold milk", Amount: 300, Type: models.TransactionIncome, Category: "sales",
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.CreateTransaction(ctx, models.CreateTransactionRequest{
		Description: "diesel", Amount: 100, Type: models.TransactionExpense, Category: "fuel",
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	w := do(t, engine, http.MethodGet, "/api/dashboard", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var summary models.DashboardSummary
	decode(t, w, &summary)
	if summary.TotalTasks != 2 || summary.PendingTasks != 1 {
		t.Fatalf("unexpected task counts: %+v", summary)
	}
	if summary.Income != 300 || summary.Expense != 100 || summary.Balance != 200 {
		t.Fatalf("unexpected balance: %+v", summary)
	}
}

func TestConfirmHarvest_EndToEnd(t *testing.T) {
	engine, svc := setup(t)

	alert, err := svc.CreateAlert(context.Background(), models.CreateAlertRequest{
		Title: "Milho", Date: time.Now().Add(time.Hour), Type: models.AlertHarvest,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	w := do(t, engine, http.MethodPost, "/api/alerts/"+alert.ID+"/harvest",
		`{"amount": 30, "unit": "sc", "removeAlert": true}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var result records.HarvestResult
	decode(t, w, &result)
	if result.Production.Name != "Milho" || !result.AlertRemoved {
		t.Fatalf("unexpected result: %+v", result)
	}
}

func TestConfirmHarvest_WrongAlertTypeIs409(t *testing.T) {
	engine, svc := setup(t)

	alert, err := svc.CreateAlert(context.Background(), models.CreateAlertRequest{
		Title: "Vacinação", Date: time.Now().Add(time.Hour), Type: models.AlertVaccination,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	w := do(t, engine, http.MethodPost, "/api/alerts/"+alert.ID+"/harvest", `{"amount": 1, "unit": "sc"}`)
	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", w.Code)
	}
}

func TestHarvestDateCalculator(t *testing.T) {
	engine, _ := setup(t)

	w := do(t, engine, http.MethodGet, "/api/alerts/harvest-date?planting=2026-03-01&cycleDays=120", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		HarvestDate string `json:"harvestDate"`
	}
	decode(t, w, &resp)
	if !strings.HasPrefix(resp.HarvestDate, "2026-06-29") {
		t.Fatalf("expected harvest date 2026-06-29, got %s", resp.HarvestDate)
	}

	w = do(t, engine, http.MethodGet, "/api/alerts/harvest-date?planting=bogus&cycleDays=120", "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestWeatherEndpoint_UsesFallbackAndDescribesCode(t *testing.T) {
	engine, _ := setup(t)

	w := do(t, engine, http.MethodGet, "/api/weather", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Current     models.CurrentWeather `json:"current"`
		Description string                `json:"description"`
	}
	decode(t, w, &resp)
	if resp.Current.Temp != 24 {
		t.Fatalf("unexpected current conditions: %+v", resp.Current)
	}
	if resp.Description != "clear sky" {
		t.Fatalf("expected code 0 described as clear sky, got %q", resp.Description)
	}
}

func TestDeleteAlert_UnknownIDStillNoContent(t *testing.T) {
	engine, _ := setup(t)

	w := do(t, engine, http.MethodDelete, "/api/alerts/nope", "")
	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
}
