package config_test

import (
	"encoding/json"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vitalsign/health-risk-api/config"
	"github.com/vitalsign/health-risk-api/models"
)

func TestNewDefaults(t *testing.T) {
	os.Unsetenv("PORT")
	os.Unsetenv("MODEL_PATH")
	os.Unsetenv("HISTORY_LIMIT")
	os.Unsetenv("ENABLE_NOTIFICATIONS")

	conf := config.New()

	assert.Equal(t, "8080", conf.Port)
	assert.Equal(t, "artifacts/disease_model.json", conf.ModelPath)
	assert.Equal(t, "artifacts/scaler.json", conf.ScalerPath)
	assert.Equal(t, 0, conf.HistoryLimit)
	assert.False(t, conf.EnableNotifications)
}

func TestNewFromEnv(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("MODEL_PATH", "/models/forest.json")
	t.Setenv("HISTORY_LIMIT", "100")
	t.Setenv("ENABLE_NOTIFICATIONS", "true")
	t.Setenv("SENDGRID_API_KEY", "SG.key")

	conf := config.New()

	assert.Equal(t, "9000", conf.Port)
	assert.Equal(t, "/models/forest.json", conf.ModelPath)
	assert.Equal(t, 100, conf.HistoryLimit)
	assert.True(t, conf.EnableNotifications)
	assert.Equal(t, "SG.key", conf.SendgridAPIKey)
}

func TestNewBadHistoryLimitFallsBack(t *testing.T) {
	t.Setenv("HISTORY_LIMIT", "lots")

	conf := config.New()

	assert.Equal(t, 0, conf.HistoryLimit)
}

func TestErrorStatus(t *testing.T) {
	rr := httptest.NewRecorder()

	config.ErrorStatus("failed to find hospital", 404, rr, assert.AnError)

	assert.Equal(t, 404, rr.Code)

	var got models.ErrorMessageResponse
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, "failed to find hospital", got.Response.Message)
	assert.Equal(t, assert.AnError.Error(), got.Response.Error)
}
