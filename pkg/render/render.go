package render

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/devfolio/handler/payload"
)

//go:embed templates/*.tmpl
var templatesFS embed.FS

// ExperienceProvider yields the ordered experience entries a page renders.
// Implementations must never return nil entries; order is authoring order.
type ExperienceProvider interface {
	GetAllExperiences() ([]payload.ExperienceData, error)
}

// ProjectProvider yields the ordered project entries a page renders.
type ProjectProvider interface {
	GetAllProjects() ([]payload.ProjectData, error)
}

// SiteChrome is the static header/footer content shared by every page. It
// renders even when a page has no entries at all.
type SiteChrome struct {
	SiteName   string
	OwnerName  string
	Tagline    string
	Lang       string
	ResumePath string
}

type HomePage struct {
	Site SiteChrome
}

type ExperiencePage struct {
	Site    SiteChrome
	Entries []payload.ExperienceData
}

type ProjectsPage struct {
	Site     SiteChrome
	Featured []payload.ProjectData
	Other    []payload.ProjectData
}

// NewProjectsPage partitions entries by the featured flag. This is a stable
// filter, not a sort: relative order within each group matches the input.
func NewProjectsPage(site SiteChrome, entries []payload.ProjectData) ProjectsPage {
	page := ProjectsPage{Site: site}

	for _, entry := range entries {
		if entry.Featured {
			page.Featured = append(page.Featured, entry)
		} else {
			page.Other = append(page.Other, entry)
		}
	}

	return page
}

// Renderer turns page models into HTML. It holds parsed templates only and is
// safe for concurrent use; rendering is a pure function of the page value.
type Renderer struct {
	templates *template.Template
}

func New() (*Renderer, error) {
	templates, err := template.ParseFS(templatesFS, "templates/*.tmpl")

	if err != nil {
		return nil, fmt.Errorf("error parsing page templates: %w", err)
	}

	return &Renderer{templates: templates}, nil
}

func (r *Renderer) HomePage(w io.Writer, page HomePage) error {
	return r.execute(w, "home", page)
}

func (r *Renderer) ExperiencePage(w io.Writer, page ExperiencePage) error {
	return r.execute(w, "experience", page)
}

func (r *Renderer) ProjectsPage(w io.Writer, page ProjectsPage) error {
	return r.execute(w, "projects", page)
}

func (r *Renderer) execute(w io.Writer, name string, data any) error {
	if err := r.templates.ExecuteTemplate(w, name, data); err != nil {
		return fmt.Errorf("error rendering %s page: %w", name, err)
	}

	return nil
}
