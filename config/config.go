package config

import (
	"encoding/json"
	"net/http"
	"os"
	"strconv"

	"go.uber.org/zap"

	"github.com/vitalsign/health-risk-api/models"
)

// Config holds the project config values
type Config struct {
	Port    string
	BaseURL string

	// Trained classifier artifacts. Assessments fail until both exist.
	ModelPath  string
	ScalerPath string

	// Per-user history retention cap; 0 means unbounded.
	HistoryLimit int

	// History snapshot backup. Empty SnapshotPath disables the sweeper.
	SnapshotPath      string
	EncryptionKeyPath string

	// Risk-alert email delivery.
	EnableNotifications bool
	SendgridAPIKey      string
	AlertFromEmail      string
}

// New sets up all config related services
func New() *Config {

	//setup zap logger and replace default logger
	logger := zap.NewExample()
	defer logger.Sync()
	_ = zap.ReplaceGlobals(logger)

	return &Config{
		Port:                getEnv("PORT", "8080"),
		BaseURL:             os.Getenv("BASE_URL"),
		ModelPath:           getEnv("MODEL_PATH", "artifacts/disease_model.json"),
		ScalerPath:          getEnv("SCALER_PATH", "artifacts/scaler.json"),
		HistoryLimit:        getEnvInt("HISTORY_LIMIT", 0),
		SnapshotPath:        os.Getenv("SNAPSHOT_PATH"),
		EncryptionKeyPath:   getEnv("ENCRYPTION_KEY_PATH", "encryption_key.key"),
		EnableNotifications: os.Getenv("ENABLE_NOTIFICATIONS") == "true",
		SendgridAPIKey:      os.Getenv("SENDGRID_API_KEY"),
		AlertFromEmail:      getEnv("ALERT_FROM_EMAIL", "alerts@health-risk-api.local"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		zap.S().Warnf("invalid integer for %s: %q, using default %d", key, v, fallback)
		return fallback
	}
	return n
}

// ErrorStatus is a useful function that will log, write http headers
// and body for a given message, status code and err
func ErrorStatus(message string, httpStatusCode int, w http.ResponseWriter, err error) {
	zap.S().With(err).Error(message)
	w.WriteHeader(httpStatusCode)
	resp := models.ErrorMessageResponse{Response: models.MessageError{Message: message}}
	if err != nil {
		resp.Response.Error = err.Error()
	}
	b, _ := json.Marshal(resp)
	w.Write(b)
}
