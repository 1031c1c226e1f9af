package api

import (
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/expense-ledger/internal/handlers/v1/category"
	"github.com/carson-networks/expense-ledger/internal/handlers/v1/entry"
	"github.com/carson-networks/expense-ledger/internal/handlers/v1/report"
	"github.com/carson-networks/expense-ledger/internal/handlers/v1/status"
	"github.com/carson-networks/expense-ledger/internal/logging"
	"github.com/carson-networks/expense-ledger/internal/operator"
	"github.com/carson-networks/expense-ledger/internal/service"
)

type Rest struct {
	Logger   *logrus.Logger
	Port     string
	Service  *service.Service
	Operator *operator.OperatorDelegator
}

func (r *Rest) Serve() {
	mux := http.NewServeMux()

	statusHandler := status.NewHandler()
	mux.HandleFunc("/status", logging.LoggingWrapper("Status", r.Logger, statusHandler.Handler))

	humaAPI := humago.New(mux, huma.DefaultConfig("expense-ledger", "1.0.0"))
	humaAPI.UseMiddleware(logging.HumaMiddleware(r.Logger))

	category.NewCreateCategoryHandler(r.Operator).Register(humaAPI)
	category.NewGetCategoryHandler(r.Service.Category).Register(humaAPI)
	category.NewListCategoriesHandler(r.Service.Category).Register(humaAPI)
	category.NewListTransactionsHandler(r.Service.Category).Register(humaAPI)
	category.NewStatementHandler(r.Service.Category).Register(humaAPI)

	entry.NewAddRevenueHandler(r.Operator).Register(humaAPI)
	entry.NewAddExpenseHandler(r.Operator).Register(humaAPI)
	entry.NewTransferHandler(r.Operator).Register(humaAPI)

	report.NewSpendingHandler(r.Service.Report).Register(humaAPI)

	server := http.Server{
		Addr:              ":" + r.Port,
		Handler:           mux,
		ReadTimeout:       time.Duration(30) * time.Second,
		WriteTimeout:      time.Duration(30) * time.Second,
		IdleTimeout:       time.Duration(10) * time.Second,
		ReadHeaderTimeout: time.Duration(10) * time.Second,
	}

	r.Logger.Info("HttpServer.Serve.listening")
	err := server.ListenAndServe()
	if err != nil {
		r.Logger.WithError(err).Error("HttpServer.Serve.listen error")
	}
	r.Logger.Info("HttpServer.Serve.shutting down")
}
