package boost

import (
	"fmt"
	"net/http"

	"github.com/devfolio/database"
	"github.com/devfolio/metal/env"
	"github.com/devfolio/pkg/agenda"
	"github.com/devfolio/pkg/llogs"
	"github.com/devfolio/pkg/middleware"
	"github.com/devfolio/pkg/portal"
	"github.com/devfolio/pkg/render"
)

type App struct {
	router    *Router
	sentry    *portal.Sentry
	logs      *llogs.Driver
	validator *portal.Validator
	env       *env.Environment
	db        *database.Connection
	sync      *agenda.ContentSync
}

func MakeApp(env *env.Environment, validator *portal.Validator) (*App, error) {
	db := MakeDbConnection(env)

	renderer, err := render.New()
	if err != nil {
		return nil, fmt.Errorf("bootstrapping error > could not parse page templates: %w", err)
	}

	sync, err := agenda.NewContentSync(env, db)
	if err != nil {
		return nil, fmt.Errorf("bootstrapping error > could not create content sync: %w", err)
	}

	app := App{
		env:       env,
		validator: validator,
		logs:      MakeLogs(env),
		sentry:    MakeSentry(env),
		db:        db,
		sync:      sync,
	}

	router := Router{
		Env:      env,
		Db:       db,
		Renderer: renderer,
		Fixture:  NewFixture(env.Content.FixturesDir),
		Mux:      http.NewServeMux(),
		Pipeline: middleware.Pipeline{
			Env:              env,
			PublicMiddleware: middleware.MakePublicMiddleware(),
		},
	}

	app.SetRouter(router)

	return &app, nil
}

func (a *App) Boot() {
	if a == nil || a.router == nil {
		panic("bootstrapping error > Invalid setup")
	}

	router := *a.router

	router.Profile()
	router.Experience()
	router.Projects()
	router.Pages()
	router.Resume()
	router.KeepAlive()
	router.Metrics()
}
