package api

import (
	"github.com/gorilla/mux"

	"github.com/focusflow/focusflow/internal/api/recovery"
	"github.com/focusflow/focusflow/internal/auth"
	"github.com/focusflow/focusflow/internal/config"
	"github.com/focusflow/focusflow/internal/services"
	"github.com/focusflow/focusflow/internal/store"
)

// NewRouter wires HTTP routes to handlers. Signup, signin and health
// are open; every other route sits behind the bearer-token middleware.
func NewRouter(st store.Store, authn *auth.Authenticator, cfg *config.Config) *mux.Router {
	root := mux.NewRouter()
	root.Use(recovery.Middleware)

	// Auth
	authSvc := services.NewAuthService(st, authn, cfg.BcryptCost)
	authHandler := NewAuthHandler(authSvc)
	root.HandleFunc("/signup", authHandler.SignUp).Methods("POST")
	root.HandleFunc("/signin", authHandler.SignIn).Methods("POST")

	// Health
	healthHandler := NewHealthHandler()
	root.HandleFunc("/health", healthHandler.CheckHealth).Methods("GET")

	authed := root.NewRoute().Subrouter()
	authed.Use(authn.RequireAuth)

	// Tasks
	taskHandler := NewTaskHandler(services.NewTaskService(st))
	authed.HandleFunc("/task", taskHandler.ListTasks).Methods("GET")
	authed.HandleFunc("/task", taskHandler.CreateTask).Methods("POST")
	authed.HandleFunc("/task/{id}", taskHandler.UpdateTask).Methods("PATCH")
	authed.HandleFunc("/task/{id}", taskHandler.DeleteTask).Methods("DELETE")

	// Journal
	journalHandler := NewJournalHandler(services.NewJournalService(st))
	authed.HandleFunc("/journal", journalHandler.ListEntries).Methods("GET")
	authed.HandleFunc("/journal", journalHandler.CreateEntry).Methods("POST")
	authed.HandleFunc("/journal/{id}", journalHandler.UpdateEntry).Methods("PATCH")
	authed.HandleFunc("/journal/{id}", journalHandler.DeleteEntry).Methods("DELETE")

	// Session logs
	sessionHandler := NewSessionHandler(services.NewSessionService(st))
	authed.HandleFunc("/pomodoro", sessionHandler.RecordFocus).Methods("POST")
	authed.HandleFunc("/pomodoro", sessionHandler.ListFocus).Methods("GET")
	authed.HandleFunc("/meditation", sessionHandler.RecordMeditation).Methods("POST")
	authed.HandleFunc("/meditation", sessionHandler.ListMeditation).Methods("GET")

	// Analytics
	analyticsHandler := NewAnalyticsHandler(services.NewAnalyticsService(st))
	authed.HandleFunc("/analytics/weekly-trends", analyticsHandler.WeeklyTrends).Methods("GET")
	authed.HandleFunc("/analytics/productivity-distribution", analyticsHandler.ProductivityDistribution).Methods("GET")
	authed.HandleFunc("/analytics/daily-mood", analyticsHandler.DailyMood).Methods("GET")
	authed.HandleFunc("/analytics/stats", analyticsHandler.Stats).Methods("GET")
	authed.HandleFunc("/analytics/achievements", analyticsHandler.Achievements).Methods("GET")

	return root
}
