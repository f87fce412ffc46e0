package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/vitalsign/health-risk-api/api"
	"github.com/vitalsign/health-risk-api/config"
	"github.com/vitalsign/health-risk-api/hospitals"
	"github.com/vitalsign/health-risk-api/models"
	"github.com/vitalsign/health-risk-api/notifications"
	"github.com/vitalsign/health-risk-api/prediction"
	"github.com/vitalsign/health-risk-api/store"
)

// requestTimeout bounds every API route.
const requestTimeout = 30 * time.Second

// App stores the router and the wired services so they can be reused
type App struct {
	Router    *mux.Router
	Config    config.Config
	History   *store.History
	Directory *hospitals.Directory

	service *prediction.Service
}

// New creates a new mux router and all the routes
func (a *App) New() *mux.Router {
	r := mux.NewRouter()

	h := Health{Service: a.service}
	hosp := Hospital{Directory: a.Directory}
	rec := Recommendation{Service: a.service}

	// healthchex
	r.HandleFunc("/health", healthCheckHandler)

	apiCreate := r.PathPrefix("/api/v1").Subrouter()
	apiCreate.Use(mux.MiddlewareFunc(api.Middleware))
	apiCreate.Use(mux.MiddlewareFunc(api.TimeoutMiddleware(requestTimeout)))

	apiCreate.Handle("/health/assess", http.HandlerFunc(h.AssessHandler)).Methods("POST")
	apiCreate.Handle("/health/history/{user_id}", http.HandlerFunc(h.HistoryHandler)).Methods("GET")
	apiCreate.Handle("/health/validate", http.HandlerFunc(h.ValidateHandler)).Methods("POST")

	apiCreate.Handle("/hospitals/nearby", http.HandlerFunc(hosp.NearbyHandler)).Methods("POST")
	apiCreate.Handle("/hospitals/emergency", http.HandlerFunc(hosp.EmergencyHandler)).Methods("POST")
	apiCreate.Handle("/hospitals/{hospital_id}", http.HandlerFunc(hosp.HospitalByIDHandler)).Methods("GET")

	apiCreate.Handle("/recommendations/precautions", http.HandlerFunc(rec.PrecautionsHandler)).Methods("POST")
	apiCreate.Handle("/recommendations/lifestyle", http.HandlerFunc(rec.LifestyleHandler)).Methods("GET")

	return r
}

// Initialize is invoked by main to load the trained model, wire the
// services and create the router. A missing model artifact pair is not
// fatal at boot: assessments fail with a service-unavailable status
// until the artifacts appear and the pod restarts.
func (a *App) Initialize() error {
	var classifier prediction.Classifier
	forest, err := prediction.LoadForest(a.Config.ModelPath, a.Config.ScalerPath)
	if err != nil {
		zap.S().Warnw("no trained model loaded, assessments will be unavailable",
			"modelPath", a.Config.ModelPath,
			"scalerPath", a.Config.ScalerPath,
			"error", err,
		)
	} else {
		classifier = forest
		zap.S().Infow("trained model loaded",
			"classes", forest.ClassNames,
			"trees", len(forest.Trees),
		)
	}

	a.History = store.NewHistory(a.Config.HistoryLimit)
	a.Directory = hospitals.NewDirectory()

	var mailer *notifications.Mailer
	if a.Config.EnableNotifications {
		mailer = notifications.NewMailer(a.Config.SendgridAPIKey, a.Config.AlertFromEmail)
		if mailer == nil {
			zap.S().Warn("notifications enabled but SENDGRID_API_KEY is not set")
		}
	}

	a.service = prediction.NewService(classifier, a.History, mailer)
	a.Router = a.New()
	return nil
}

func healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	b, _ := json.Marshal(models.HealthCheckResponse{Alive: true})
	w.Write(b)
}
