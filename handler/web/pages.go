package web

import (
	"bytes"
	"log/slog"
	"net/http"

	"github.com/devfolio/pkg/endpoint"
	"github.com/devfolio/pkg/render"
)

// PagesHandler renders the HTML pages. It only wires a renderer to the data
// providers; everything about what the pages contain lives in pkg/render.
type PagesHandler struct {
	renderer    *render.Renderer
	chrome      render.SiteChrome
	experiences render.ExperienceProvider
	projects    render.ProjectProvider
}

func MakePagesHandler(
	renderer *render.Renderer,
	chrome render.SiteChrome,
	experiences render.ExperienceProvider,
	projects render.ProjectProvider,
) PagesHandler {
	return PagesHandler{
		renderer:    renderer,
		chrome:      chrome,
		experiences: experiences,
		projects:    projects,
	}
}

func (h PagesHandler) Home(w http.ResponseWriter, r *http.Request) *endpoint.ApiError {
	var page bytes.Buffer

	if err := h.renderer.HomePage(&page, render.HomePage{Site: h.chrome}); err != nil {
		slog.Error("Error rendering home page", "error", err)

		return endpoint.InternalError("could not render the home page")
	}

	return writeHTML(w, page.Bytes())
}

func (h PagesHandler) Experience(w http.ResponseWriter, r *http.Request) *endpoint.ApiError {
	entries, err := h.experiences.GetAllExperiences()

	if err != nil {
		slog.Error("Error loading experience entries", "error", err)

		return endpoint.InternalError("could not load experience entries")
	}

	var page bytes.Buffer
	data := render.ExperiencePage{Site: h.chrome, Entries: entries}

	if err := h.renderer.ExperiencePage(&page, data); err != nil {
		slog.Error("Error rendering experience page", "error", err)

		return endpoint.InternalError("could not render the experience page")
	}

	return writeHTML(w, page.Bytes())
}

func (h PagesHandler) Projects(w http.ResponseWriter, r *http.Request) *endpoint.ApiError {
	entries, err := h.projects.GetAllProjects()

	if err != nil {
		slog.Error("Error loading project entries", "error", err)

		return endpoint.InternalError("could not load project entries")
	}

	var page bytes.Buffer
	data := render.NewProjectsPage(h.chrome, entries)

	if err := h.renderer.ProjectsPage(&page, data); err != nil {
		slog.Error("Error rendering projects page", "error", err)

		return endpoint.InternalError("could not render the projects page")
	}

	return writeHTML(w, page.Bytes())
}

// Pages render into a buffer first so a template failure never leaks a
// half-written body to the client.
func writeHTML(w http.ResponseWriter, body []byte) *endpoint.ApiError {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.Header().Set("Cache-Control", "public, max-age=600")
	w.WriteHeader(http.StatusOK)

	if _, err := w.Write(body); err != nil {
		slog.Error("Error writing page response", "error", err)
	}

	return nil
}
