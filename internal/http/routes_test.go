package httpx

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/target/rmsgas-api/internal/domain/model"
	apperrors "github.com/target/rmsgas-api/internal/errors"
	"github.com/target/rmsgas-api/internal/mocks"
	"github.com/target/rmsgas-api/internal/service"
	"go.uber.org/mock/gomock"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type recordingPublisher struct {
	mu        sync.Mutex
	published []*model.Optimization
}

func (p *recordingPublisher) Publish(_ context.Context, opt *model.Optimization) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.published = append(p.published, opt)
}

func (p *recordingPublisher) count() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.published)
}

type routerFixture struct {
	handler       http.Handler
	portfolios    *mocks.MockPortfolioRepository
	scenarios     *mocks.MockScenarioRepository
	planning      *mocks.MockShipperPlanningRepository
	optimizations *mocks.MockOptimizationRepository
	results       *mocks.MockOptResultRepository
	db            *mocks.MockDBPinger
	publisher     *recordingPublisher
}

func newRouterFixture(t *testing.T) *routerFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := &routerFixture{
		portfolios:    mocks.NewMockPortfolioRepository(ctrl),
		scenarios:     mocks.NewMockScenarioRepository(ctrl),
		planning:      mocks.NewMockShipperPlanningRepository(ctrl),
		optimizations: mocks.NewMockOptimizationRepository(ctrl),
		results:       mocks.NewMockOptResultRepository(ctrl),
		db:            mocks.NewMockDBPinger(ctrl),
		publisher:     &recordingPublisher{},
	}

	portfolios, err := service.NewPortfolioService(service.PortfolioServiceOptions{Repo: f.portfolios})
	require.NoError(t, err)
	scenarios, err := service.NewScenarioService(service.ScenarioServiceOptions{Repo: f.scenarios})
	require.NoError(t, err)
	planning, err := service.NewShipperPlanningService(service.ShipperPlanningServiceOptions{Repo: f.planning})
	require.NoError(t, err)
	optimizations, err := service.NewOptimizationService(service.OptimizationServiceOptions{
		Repo:      f.optimizations,
		Results:   f.results,
		Publisher: f.publisher,
		Logger:    discardLogger(),
	})
	require.NoError(t, err)
	optResults, err := service.NewOptResultService(service.OptResultServiceOptions{Repo: f.results})
	require.NoError(t, err)

	f.handler = NewRouter(RouterServices{
		Portfolios:      portfolios,
		Scenarios:       scenarios,
		ShipperPlanning: planning,
		Optimizations:   optimizations,
		OptResults:      optResults,
		DB:              f.db,
		Logger:          discardLogger(),
	})
	return f
}

func (f *routerFixture) do(t *testing.T, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

func TestRouter_HealthAndUnknownRoutes(t *testing.T) {
	f := newRouterFixture(t)

	rec := f.do(t, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = f.do(t, http.MethodGet, "/does-not-exist", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	body := decodeBody[map[string]string](t, rec)
	assert.Equal(t, "not_found", body["error"])
	assert.Equal(t, "route not found", body["message"])

	f.db.EXPECT().PingContext(gomock.Any()).Return(nil)
	rec = f.do(t, http.MethodGet, "/check/db/connection", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_CORSPreflight(t *testing.T) {
	f := newRouterFixture(t)
	req := httptest.NewRequest(http.MethodOptions, "/optimization", nil)
	req.Header.Set("Origin", "https://planner.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()

	f.handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), http.MethodPost)
}

func TestRouter_Portfolio(t *testing.T) {
	t.Run("create", func(t *testing.T) {
		f := newRouterFixture(t)
		f.portfolios.EXPECT().
			Create(gomock.Any(), &model.CreatePortfolioRequest{PortfolioID: "P1", StartDate: "2024-01-01", EndDate: "2024-01-03"}).
			Return(&model.Portfolio{PortfolioID: "P1", StartDate: "2024-01-01", EndDate: "2024-01-03"}, nil)

		rec := f.do(t, http.MethodPost, "/portfolio",
			`{"portfolio_id":"P1","start_date":"2024-01-01","end_date":"2024-01-03"}`)
		assert.Equal(t, http.StatusCreated, rec.Code)
		got := decodeBody[model.Portfolio](t, rec)
		assert.Equal(t, "P1", got.PortfolioID)
	})

	t.Run("create rejects missing id", func(t *testing.T) {
		f := newRouterFixture(t)
		rec := f.do(t, http.MethodPost, "/portfolio", `{"start_date":"2024-01-01"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "validation", decodeBody[map[string]string](t, rec)["error"])
	})

	t.Run("create rejects unknown fields", func(t *testing.T) {
		f := newRouterFixture(t)
		rec := f.do(t, http.MethodPost, "/portfolio", `{"portfolio_id":"P1","owner":"x"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "invalid_json", decodeBody[map[string]string](t, rec)["error"])
	})

	t.Run("get missing", func(t *testing.T) {
		f := newRouterFixture(t)
		f.portfolios.EXPECT().GetByID(gomock.Any(), "P9").Return(nil, apperrors.NotFound("portfolio not found"))
		rec := f.do(t, http.MethodGet, "/portfolio/P9", "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "portfolio not found", decodeBody[map[string]string](t, rec)["message"])
	})

	t.Run("list empty renders array", func(t *testing.T) {
		f := newRouterFixture(t)
		f.portfolios.EXPECT().List(gomock.Any()).Return(nil, nil)
		rec := f.do(t, http.MethodGet, "/portfolio", "")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[]`, rec.Body.String())
	})

	t.Run("update", func(t *testing.T) {
		f := newRouterFixture(t)
		f.portfolios.EXPECT().
			Update(gomock.Any(), "P1", model.UpdatePortfolioRequest{StartDate: "2024-02-01", EndDate: "2024-02-10"}).
			Return(&model.Portfolio{PortfolioID: "P1", StartDate: "2024-02-01", EndDate: "2024-02-10"}, nil)
		rec := f.do(t, http.MethodPut, "/portfolio/P1", `{"start_date":"2024-02-01","end_date":"2024-02-10"}`)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("delete", func(t *testing.T) {
		f := newRouterFixture(t)
		f.portfolios.EXPECT().Delete(gomock.Any(), "P1").Return(true, nil)
		f.portfolios.EXPECT().Delete(gomock.Any(), "P2").Return(false, nil)

		assert.Equal(t, http.StatusNoContent, f.do(t, http.MethodDelete, "/portfolio/P1", "").Code)
		assert.Equal(t, http.StatusNotFound, f.do(t, http.MethodDelete, "/portfolio/P2", "").Code)
	})
}

func TestRouter_Scenario(t *testing.T) {
	f := newRouterFixture(t)
	f.scenarios.EXPECT().ListByPortfolioID(gomock.Any(), "P1").Return([]*model.Scenario{
		{ScenarioID: "S1", ParentPortfolioID: "P1"},
		{ScenarioID: "S2", ParentPortfolioID: "P1"},
	}, nil)
	f.scenarios.EXPECT().GetByID(gomock.Any(), "S1").Return(&model.Scenario{ScenarioID: "S1"}, nil)

	rec := f.do(t, http.MethodGet, "/scenario/portfolio/P1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeBody[[]model.Scenario](t, rec), 2)

	rec = f.do(t, http.MethodGet, "/scenario/S1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "S1", decodeBody[model.Scenario](t, rec).ScenarioID)
}

func TestRouter_ShipperPlanning(t *testing.T) {
	t.Run("list passes filters", func(t *testing.T) {
		f := newRouterFixture(t)
		f.planning.EXPECT().
			List(gomock.Any(), model.ShipperPlanningFilter{PortfolioID: "P1", Shipper: "ACME"}).
			Return([]*model.ShipperPlanning{{ID: 1}}, nil)
		rec := f.do(t, http.MethodGet, "/shipper-planning?portfolio_id=P1&shipper=ACME", "")
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("bulk create", func(t *testing.T) {
		f := newRouterFixture(t)
		f.planning.EXPECT().BulkCreate(gomock.Any(), gomock.Len(2)).Return(int64(2), nil)
		rec := f.do(t, http.MethodPost, "/shipper-planning/bulk",
			`[{"portfolio_id":"P1","shipper":"ACME","delivery_date":"2024-05-01","volume_m3":1200},{"portfolio_id":"P1"}]`)
		assert.Equal(t, http.StatusCreated, rec.Code)
		got := decodeBody[model.BulkInsertResult](t, rec)
		assert.True(t, got.Success)
		assert.Equal(t, "2 records inserted successfully", got.Message)
	})

	t.Run("bulk create rejects a bad date", func(t *testing.T) {
		f := newRouterFixture(t)
		rec := f.do(t, http.MethodPost, "/shipper-planning/bulk", `[{"delivery_date":"May 1st"}]`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("bulk delete", func(t *testing.T) {
		f := newRouterFixture(t)
		f.planning.EXPECT().
			BulkDelete(gomock.Any(), model.ShipperPlanningDeleteCriteria{Shippers: []string{"ACME"}}).
			Return(int64(3), nil)
		rec := f.do(t, http.MethodDelete, "/shipper-planning/bulk", `{"shippers":["ACME"]}`)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "3 records deleted successfully", decodeBody[model.BulkDeleteResult](t, rec).Message)
	})
}

func TestRouter_OptimizationList(t *testing.T) {
	completed := true
	f := newRouterFixture(t)
	f.optimizations.EXPECT().
		List(gomock.Any(), model.OptimizationFilter{PortfolioID: "P1", IsCompleted: &completed}).
		Return([]*model.Optimization{{ID: 1, IsCompleted: true, Percentage: 100}}, nil)

	rec := f.do(t, http.MethodGet, "/optimization?portfolio_id=P1&is_completed=1&percentage=50", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"is_completed":1`)

	rec = f.do(t, http.MethodGet, "/optimization?is_completed=maybe", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRouter_OptimizationCreateAndRegenerate(t *testing.T) {
	f := newRouterFixture(t)
	job := &model.Optimization{ID: 7, PortfolioID: "P1", ScenarioID: "S1", Shipper: "ACME", Version: 1}
	f.optimizations.EXPECT().
		Create(gomock.Any(), &model.CreateOptimizationRequest{PortfolioID: "P1", ScenarioID: "S1", Shipper: "ACME"}).
		Return(job, nil)
	f.optimizations.EXPECT().GetByID(gomock.Any(), int64(7)).Return(job, nil)

	rec := f.do(t, http.MethodPost, "/optimization", `{"portfolio_id":" P1 ","scenario_id":"S1","shipper":"ACME"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, int64(7), decodeBody[model.Optimization](t, rec).ID)

	rec = f.do(t, http.MethodPost, "/optimization/7/regenerate", "")
	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Equal(t, 2, f.publisher.count())
}

func TestRouter_OptimizationCreateValidation(t *testing.T) {
	f := newRouterFixture(t)
	rec := f.do(t, http.MethodPost, "/optimization", `{"portfolio_id":"P1","scenario_id":"S1"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "shipper is required", decodeBody[map[string]string](t, rec)["message"])
	assert.Zero(t, f.publisher.count())
}

func TestRouter_OptimizationResults(t *testing.T) {
	day := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	rows := []*model.OptResult{
		{ID: 1, OptimizationID: 7, DeliveryDate: day, Volume: 600000, RGT: model.DefaultRGT},
		{ID: 2, OptimizationID: 7, DeliveryDate: day.AddDate(0, 0, 1), Volume: 700000, RGT: model.DefaultRGT},
	}

	t.Run("full listing", func(t *testing.T) {
		f := newRouterFixture(t)
		f.results.EXPECT().ListByOptimizationID(gomock.Any(), int64(7)).Return(rows, nil)
		rec := f.do(t, http.MethodGet, "/optimization/7/result", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Len(t, decodeBody[[]model.OptResult](t, rec), 2)
	})

	t.Run("projection", func(t *testing.T) {
		f := newRouterFixture(t)
		f.results.EXPECT().ListByOptimizationID(gomock.Any(), int64(7)).Return(rows, nil)
		rec := f.do(t, http.MethodGet, "/optimization/7/result?query=%5B%5D.volume", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[600000, 700000]`, rec.Body.String())
	})

	t.Run("invalid projection", func(t *testing.T) {
		f := newRouterFixture(t)
		f.results.EXPECT().ListByOptimizationID(gomock.Any(), int64(7)).Return(rows, nil)
		rec := f.do(t, http.MethodGet, "/optimization/7/result?query=%5B", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "invalid query", decodeBody[map[string]string](t, rec)["message"])
	})

	t.Run("no results", func(t *testing.T) {
		f := newRouterFixture(t)
		f.results.EXPECT().ListByOptimizationID(gomock.Any(), int64(8)).Return(nil, nil)
		rec := f.do(t, http.MethodGet, "/optimization/8/result", "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("malformed id", func(t *testing.T) {
		f := newRouterFixture(t)
		rec := f.do(t, http.MethodGet, "/optimization/abc/result", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "invalid_path", decodeBody[map[string]string](t, rec)["error"])
	})

	t.Run("delete", func(t *testing.T) {
		f := newRouterFixture(t)
		f.results.EXPECT().DeleteByOptimizationID(gomock.Any(), int64(7)).Return(int64(2), nil)
		rec := f.do(t, http.MethodDelete, "/optimization/7/result", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, int64(2), decodeBody[deleteResultsResponse](t, rec).Deleted)
	})
}

func TestRouter_OptimizationSummary(t *testing.T) {
	f := newRouterFixture(t)
	f.optimizations.EXPECT().GetByID(gomock.Any(), int64(7)).
		Return(&model.Optimization{ID: 7, Percentage: 33.33}, nil)
	f.results.EXPECT().ListByOptimizationID(gomock.Any(), int64(7)).Return(nil, nil)

	rec := f.do(t, http.MethodGet, "/optimization/7/summary", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, string(decodeBody[map[string]json.RawMessage](t, rec)["results"]))
}

func TestRouter_OptResult(t *testing.T) {
	t.Run("create", func(t *testing.T) {
		f := newRouterFixture(t)
		f.results.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(&model.OptResult{ID: 3, OptimizationID: 7}, nil)
		rec := f.do(t, http.MethodPost, "/opt-result",
			`{"optimization_id":7,"delivery_date":"2024-01-01","volume":10,"untouched_volume":10}`)
		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("update timeout maps to gateway timeout", func(t *testing.T) {
		f := newRouterFixture(t)
		f.results.EXPECT().Update(gomock.Any(), int64(3), gomock.Any()).
			Return(nil, apperrors.Timeout(context.DeadlineExceeded, "update result"))
		rec := f.do(t, http.MethodPut, "/opt-result/3", `{"volume":12}`)
		assert.Equal(t, http.StatusGatewayTimeout, rec.Code)
	})

	t.Run("store failure is not leaked", func(t *testing.T) {
		f := newRouterFixture(t)
		f.results.EXPECT().GetByID(gomock.Any(), int64(3)).Return(nil, errors.New("pq: relation missing"))
		rec := f.do(t, http.MethodGet, "/opt-result/3", "")
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.NotContains(t, rec.Body.String(), "relation")
	})

	t.Run("delete missing", func(t *testing.T) {
		f := newRouterFixture(t)
		f.results.EXPECT().Delete(gomock.Any(), int64(4)).Return(false, nil)
		assert.Equal(t, http.StatusNotFound, f.do(t, http.MethodDelete, "/opt-result/4", "").Code)
	})
}

func TestRecover_WritesJSON(t *testing.T) {
	h := Recover(discardLogger())(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "internal", decodeBody[map[string]string](t, rec)["error"])
}
