package main

import (
	"sync"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/expense-ledger/api"
	"github.com/carson-networks/expense-ledger/internal/config"
	"github.com/carson-networks/expense-ledger/internal/ledger"
	"github.com/carson-networks/expense-ledger/internal/logging"
	"github.com/carson-networks/expense-ledger/internal/operator"
	"github.com/carson-networks/expense-ledger/internal/seed"
	"github.com/carson-networks/expense-ledger/internal/service"
)

func main() {
	logger := logging.SetupLogging()
	logrus.Info("expense-ledger starting")

	// Optional .env for local runs; missing file is fine.
	_ = godotenv.Load()

	envConfig, err := config.ProcessEnvironmentVariables()
	if err != nil {
		logrus.WithError(err).Fatal("config.ProcessEnvironmentVariables")
		return
	}

	registry := ledger.NewRegistry()
	if envConfig.SeedDemoData {
		if err := seed.Apply(registry); err != nil {
			logrus.WithError(err).Fatal("seed.Apply")
			return
		}
		logrus.WithField("categories", len(registry.Names())).Info("demo data loaded")
	}

	delegator := operator.NewOperatorDelegator(registry, 1)
	delegator.Start()
	defer delegator.Stop()

	svc := service.NewService(registry)

	wg := sync.WaitGroup{}
	wg.Add(1)

	go func() {
		httpRest := api.Rest{
			Logger:   logger,
			Port:     envConfig.Port,
			Service:  svc,
			Operator: delegator,
		}
		httpRest.Serve()
	}()

	wg.Wait()
}
