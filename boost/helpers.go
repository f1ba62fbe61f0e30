package boost

import (
	"net/http"

	"github.com/devfolio/database"
	"github.com/devfolio/metal/env"
	"github.com/devfolio/pkg/agenda"
	"github.com/devfolio/pkg/portal"
)

func (a *App) SetRouter(router Router) {
	a.router = &router
}

func (a *App) CloseLogs() {
	driver := *a.logs
	driver.Close()
}

func (a *App) CloseDB() {
	driver := *a.db
	driver.Close()
}

func (a *App) GetEnv() *env.Environment {
	return a.env
}

func (a *App) GetDB() *database.Connection {
	return a.db
}

func (a *App) GetMux() *http.ServeMux {
	return a.router.Mux
}

func (a *App) GetContentSync() *agenda.ContentSync {
	return a.sync
}

func (a *App) GetSentry() *portal.Sentry {
	return a.sentry
}
