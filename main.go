package main

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	_ "github.com/lib/pq"

	"github.com/devfolio/boost"
	"github.com/devfolio/pkg/endpoint"
	"github.com/devfolio/pkg/portal"
)

var app *boost.App

func init() {
	validate := portal.GetDefaultValidator()

	secrets := boost.Ignite("./.env", validate)

	instance, err := boost.MakeApp(secrets, validate)

	if err != nil {
		panic("Error bootstrapping the application: " + err.Error())
	}

	app = instance
}

func main() {
	defer app.CloseDB()
	defer app.CloseLogs()

	app.Boot()

	if err := app.GetDB().Ping(); err != nil {
		slog.Error("Database ping failed", "error", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sync := app.GetContentSync()
	if err := sync.Start(ctx); err != nil {
		slog.Error("Could not start the content sync", "error", err)
	}
	defer sync.Stop()

	environment := app.GetEnv()
	addr := environment.Network.GetHostURL()

	server := &http.Server{
		Addr: addr,
		Handler: endpoint.NewServerHandler(endpoint.ServerHandlerConfig{
			Mux:          app.GetMux(),
			IsProduction: environment.App.IsProduction(),
			DevHost:      environment.App.URL,
			Wrap:         app.GetSentry().Handler.Handle,
		}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	if err := endpoint.RunServer(addr, server); err != nil {
		slog.Error("Error running server", "error", err)
		panic("Error running server: " + err.Error())
	}
}
