package boost

import (
	"net/http"

	"github.com/klauspost/compress/gzhttp"

	"github.com/devfolio/database"
	"github.com/devfolio/database/repository"
	"github.com/devfolio/handler"
	"github.com/devfolio/handler/web"
	"github.com/devfolio/metal/env"
	"github.com/devfolio/pkg/endpoint"
	"github.com/devfolio/pkg/middleware"
	"github.com/devfolio/pkg/render"
)

type Router struct {
	Env      *env.Environment
	Db       *database.Connection
	Renderer *render.Renderer
	Fixture  Fixture
	Mux      *http.ServeMux
	Pipeline middleware.Pipeline
}

func (r *Router) PublicPipelineFor(apiHandler endpoint.ApiHandler) http.HandlerFunc {
	metrics := middleware.MakeMetricsMiddleware()

	return endpoint.NewApiHandler(
		r.Pipeline.Chain(
			apiHandler,
			r.Pipeline.PublicMiddleware.Handle,
			metrics.Handle,
		),
	)
}

func (r *Router) Profile() {
	abstract := handler.MakeProfileHandler(r.Fixture.GetProfile())

	resolver := r.PublicPipelineFor(
		abstract.Handle,
	)

	r.Mux.HandleFunc("GET /profile", resolver)
}

func (r *Router) Experience() {
	abstract := handler.MakeExperienceHandler(r.Fixture.GetExperience())

	resolver := r.PublicPipelineFor(
		abstract.Handle,
	)

	r.Mux.HandleFunc("GET /experience", resolver)
}

func (r *Router) Projects() {
	abstract := handler.MakeProjectsHandler(r.Fixture.GetProjects())

	resolver := r.PublicPipelineFor(
		abstract.Handle,
	)

	r.Mux.HandleFunc("GET /projects", resolver)
}

// Pages wires the HTML routes. They read from the database mirror with the
// authored fixtures as fallback, falling through the same pipeline as the
// API; responses are gzip compressed.
func (r *Router) Pages() {
	chrome := render.SiteChrome{
		SiteName:   r.Env.App.Name,
		OwnerName:  r.Env.Site.OwnerName,
		Tagline:    r.Env.Site.Tagline,
		Lang:       r.Env.App.Lang(),
		ResumePath: "/files/resume.pdf",
	}

	abstract := web.MakePagesHandler(
		r.Renderer,
		chrome,
		web.FallbackExperiences{
			Primary:   web.DatabaseExperiences{Repo: repository.Experiences{DB: r.Db}},
			Secondary: web.NewFixtureExperiences(r.Fixture.GetExperience()),
		},
		web.FallbackProjects{
			Primary:   web.DatabaseProjects{Repo: repository.Projects{DB: r.Db}},
			Secondary: web.NewFixtureProjects(r.Fixture.GetProjects()),
		},
	)

	home := gzhttp.GzipHandler(r.PublicPipelineFor(abstract.Home))
	experience := gzhttp.GzipHandler(r.PublicPipelineFor(abstract.Experience))
	projects := gzhttp.GzipHandler(r.PublicPipelineFor(abstract.Projects))

	r.Mux.Handle("GET /{$}", home)
	r.Mux.Handle("GET /web/experience", experience)
	r.Mux.Handle("GET /web/projects", projects)
}

func (r *Router) Resume() {
	abstract := handler.MakeResumeHandler(r.Env.Site.FilesDir)

	resolver := r.PublicPipelineFor(
		abstract.Handle,
	)

	r.Mux.HandleFunc("GET /files/resume.pdf", resolver)
}

func (r *Router) KeepAlive() {
	abstract := handler.MakeKeepAliveHandler(&r.Env.Ping)

	apiHandler := endpoint.NewApiHandler(
		r.Pipeline.Chain(abstract.Handle),
	)

	r.Mux.HandleFunc("GET /ping", apiHandler)
}

func (r *Router) Metrics() {
	r.Mux.Handle("GET /metrics", handler.NewMetricsHandler())
}
