package web

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/devfolio/handler/payload"
	"github.com/devfolio/pkg/render"
)

type stubExperiences struct {
	entries []payload.ExperienceData
	err     error
}

func (s stubExperiences) GetAllExperiences() ([]payload.ExperienceData, error) {
	return s.entries, s.err
}

type stubProjects struct {
	entries []payload.ProjectData
	err     error
}

func (s stubProjects) GetAllProjects() ([]payload.ProjectData, error) {
	return s.entries, s.err
}

func makeTestPages(t *testing.T, experiences render.ExperienceProvider, projects render.ProjectProvider) PagesHandler {
	t.Helper()

	renderer, err := render.New()
	if err != nil {
		t.Fatalf("renderer: %v", err)
	}

	chrome := render.SiteChrome{
		SiteName:   "devfolio",
		OwnerName:  "Gus",
		Lang:       "en",
		ResumePath: "/files/resume.pdf",
	}

	return MakePagesHandler(renderer, chrome, experiences, projects)
}

func TestPagesHandlerHome(t *testing.T) {
	h := makeTestPages(t, stubExperiences{}, stubProjects{})

	req := httptest.NewRequest("GET", "/", nil)
	rec := httptest.NewRecorder()

	if err := h.Home(rec, req); err != nil {
		t.Fatalf("err: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}

	if got := rec.Header().Get("Content-Type"); got != "text/html; charset=utf-8" {
		t.Fatalf("content type %q", got)
	}

	if !strings.Contains(rec.Body.String(), "Gus") {
		t.Fatalf("missing chrome:\n%s", rec.Body.String())
	}
}

func TestPagesHandlerExperience(t *testing.T) {
	h := makeTestPages(t, stubExperiences{
		entries: []payload.ExperienceData{
			{Title: "Engineer", Company: "Acme", Period: "2020"},
		},
	}, stubProjects{})

	req := httptest.NewRequest("GET", "/web/experience", nil)
	rec := httptest.NewRecorder()

	if err := h.Experience(rec, req); err != nil {
		t.Fatalf("err: %v", err)
	}

	if !strings.Contains(rec.Body.String(), "<h2>Engineer</h2>") {
		t.Fatalf("missing entry:\n%s", rec.Body.String())
	}
}

func TestPagesHandlerExperienceProviderFailure(t *testing.T) {
	h := makeTestPages(t, stubExperiences{err: errors.New("boom")}, stubProjects{})

	req := httptest.NewRequest("GET", "/web/experience", nil)
	rec := httptest.NewRecorder()

	err := h.Experience(rec, req)

	if err == nil || err.Status != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %+v", err)
	}

	if rec.Body.Len() != 0 {
		t.Fatalf("body leaked on failure: %q", rec.Body.String())
	}
}

func TestPagesHandlerProjects(t *testing.T) {
	h := makeTestPages(t, stubExperiences{}, stubProjects{
		entries: []payload.ProjectData{
			{Title: "Ledgerline", GithubURL: "https://github.com/x/l", Featured: true},
			{Title: "Driftwatch", GithubURL: "https://gitlab.com/x/d"},
		},
	})

	req := httptest.NewRequest("GET", "/web/projects", nil)
	rec := httptest.NewRecorder()

	if err := h.Projects(rec, req); err != nil {
		t.Fatalf("err: %v", err)
	}

	body := rec.Body.String()

	if !strings.Contains(body, "Featured Projects") || !strings.Contains(body, "Other Projects") {
		t.Fatalf("missing sections:\n%s", body)
	}

	if !strings.Contains(body, "View on GitLab") {
		t.Fatalf("missing label:\n%s", body)
	}
}

func TestFallbackProvidersPreferPrimary(t *testing.T) {
	experiences := FallbackExperiences{
		Primary:   stubExperiences{entries: []payload.ExperienceData{{Title: "mirror"}}},
		Secondary: stubExperiences{err: errors.New("fixture should not be read")},
	}

	entries, err := experiences.GetAllExperiences()

	if err != nil || len(entries) != 1 || entries[0].Title != "mirror" {
		t.Fatalf("unexpected entries: %v %+v", err, entries)
	}

	projects := FallbackProjects{
		Primary:   stubProjects{entries: []payload.ProjectData{{Title: "mirror"}}},
		Secondary: stubProjects{err: errors.New("fixture should not be read")},
	}

	cards, err := projects.GetAllProjects()

	if err != nil || len(cards) != 1 || cards[0].Title != "mirror" {
		t.Fatalf("unexpected projects: %v %+v", err, cards)
	}
}

func TestFallbackProvidersServeSecondaryOnFailure(t *testing.T) {
	experiences := FallbackExperiences{
		Primary:   stubExperiences{err: errors.New("db down")},
		Secondary: stubExperiences{entries: []payload.ExperienceData{{Title: "fixture"}}},
	}

	entries, err := experiences.GetAllExperiences()

	if err != nil || len(entries) != 1 || entries[0].Title != "fixture" {
		t.Fatalf("unexpected entries: %v %+v", err, entries)
	}

	projects := FallbackProjects{
		Primary:   stubProjects{err: errors.New("db down")},
		Secondary: stubProjects{err: errors.New("fixture gone too")},
	}

	if _, err := projects.GetAllProjects(); err == nil {
		t.Fatalf("expected error when both providers fail")
	}
}

func TestFixtureProviders(t *testing.T) {
	dir := t.TempDir()

	expFile := filepath.Join(dir, "experience.json")
	if err := os.WriteFile(expFile, []byte(`{"version":"v1","data":[{"title":"t","company":"c","period":"p","technologies":["Go"]}]}`), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	projFile := filepath.Join(dir, "projects.json")
	if err := os.WriteFile(projFile, []byte(`{"version":"v1","data":[{"title":"t","github_url":"g","featured":true}]}`), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	entries, err := NewFixtureExperiences(expFile).GetAllExperiences()

	if err != nil || len(entries) != 1 || entries[0].Company != "c" {
		t.Fatalf("unexpected experiences: %v %+v", err, entries)
	}

	projects, err := NewFixtureProjects(projFile).GetAllProjects()

	if err != nil || len(projects) != 1 || !projects[0].Featured {
		t.Fatalf("unexpected projects: %v %+v", err, projects)
	}

	if _, err := NewFixtureExperiences(filepath.Join(dir, "missing.json")).GetAllExperiences(); err == nil {
		t.Fatalf("expected error")
	}
}
