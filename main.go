package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/vitalsign/health-risk-api/api/handlers"
	"github.com/vitalsign/health-risk-api/api/scheduler"
	"github.com/vitalsign/health-risk-api/config"
	"github.com/vitalsign/health-risk-api/crypto"
)

func main() {
	_ = godotenv.Load()

	a := handlers.App{}
	a.Config = *config.New()

	if err := a.Initialize(); err != nil {
		log.Fatal(err)
	}

	if a.Config.SnapshotPath != "" {
		cipher, err := crypto.NewCipher(a.Config.EncryptionKeyPath)
		if err != nil {
			zap.S().With(err).Error("failed to set up snapshot cipher")
		} else {
			s := scheduler.New(a.History, cipher, a.Config.SnapshotPath)
			if err := s.Start(); err != nil {
				zap.S().With(err).Error("failed to start history sweeper")
			}
			defer s.Stop()
		}
	}

	zap.S().Infow("health-risk-api is up and running",
		"port", a.Config.Port,
		"url", a.Config.BaseURL,
	)
	log.Fatal(http.ListenAndServe(fmt.Sprintf(":%v", a.Config.Port), a.Router))
}
