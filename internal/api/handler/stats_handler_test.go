package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/hydrobuddy/hydro-tracker/internal/domain"
)

func TestStatsHandler_Today(t *testing.T) {
	handler := NewStatsHandler(&MockStatsService{})

	req := httptest.NewRequest(http.MethodGet, "/v1/stats/today", nil)
	rec := httptest.NewRecorder()

	handler.Today(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Today() status = %d, body: %s", rec.Code, rec.Body.String())
	}

	var resp domain.TodayStatsResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.TotalML != 400 || resp.Percent != 16.33 {
		t.Errorf("unexpected response: %+v", resp)
	}
}

func TestStatsHandler_TodayError(t *testing.T) {
	handler := NewStatsHandler(&MockStatsService{
		todayFunc: func(ctx context.Context) (*domain.TodayStatsResponse, error) {
			return nil, errors.New("db down")
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/v1/stats/today", nil)
	rec := httptest.NewRecorder()

	handler.Today(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("Today() status = %d, want 500", rec.Code)
	}
}

func TestStatsHandler_Week(t *testing.T) {
	handler := NewStatsHandler(&MockStatsService{})

	req := httptest.NewRequest(http.MethodGet, "/v1/stats/week", nil)
	rec := httptest.NewRecorder()

	handler.Week(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Week() status = %d, body: %s", rec.Code, rec.Body.String())
	}

	var resp domain.WeekSeriesResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp.Days) != 7 {
		t.Errorf("Days length = %d, want 7", len(resp.Days))
	}
}
