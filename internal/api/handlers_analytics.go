package api

import (
	"net/http"

	"github.com/focusflow/focusflow/internal/api/respond"
	"github.com/focusflow/focusflow/internal/services"
)

// AnalyticsHandler serves the dashboard aggregate endpoints.
type AnalyticsHandler struct {
	svc *services.AnalyticsService
}

func NewAnalyticsHandler(svc *services.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{svc: svc}
}

// WeeklyTrends GET /analytics/weekly-trends
func (h *AnalyticsHandler) WeeklyTrends(w http.ResponseWriter, r *http.Request) {
	claims, ok := callerClaims(w, r)
	if !ok {
		return
	}
	trends, err := h.svc.WeeklyTrends(r.Context(), claims.UserID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, trends)
}

// ProductivityDistribution GET /analytics/productivity-distribution
func (h *AnalyticsHandler) ProductivityDistribution(w http.ResponseWriter, r *http.Request) {
	claims, ok := callerClaims(w, r)
	if !ok {
		return
	}
	dist, err := h.svc.ProductivityDistribution(r.Context(), claims.UserID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, dist)
}

// DailyMood GET /analytics/daily-mood
func (h *AnalyticsHandler) DailyMood(w http.ResponseWriter, r *http.Request) {
	claims, ok := callerClaims(w, r)
	if !ok {
		return
	}
	points, err := h.svc.DailyMood(r.Context(), claims.UserID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, points)
}

// Stats GET /analytics/stats
func (h *AnalyticsHandler) Stats(w http.ResponseWriter, r *http.Request) {
	claims, ok := callerClaims(w, r)
	if !ok {
		return
	}
	stats, err := h.svc.UserStats(r.Context(), claims.UserID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, stats)
}

// Achievements GET /analytics/achievements
func (h *AnalyticsHandler) Achievements(w http.ResponseWriter, r *http.Request) {
	claims, ok := callerClaims(w, r)
	if !ok {
		return
	}
	achievements, err := h.svc.Achievements(r.Context(), claims.UserID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, achievements)
}
