package web

import (
	"log/slog"

	"github.com/devfolio/database/repository"
	"github.com/devfolio/handler/payload"
	"github.com/devfolio/pkg/portal"
	"github.com/devfolio/pkg/render"
)

// FixtureExperiences serves entries straight from the authored JSON fixture.
type FixtureExperiences struct {
	filePath string
}

func NewFixtureExperiences(filePath string) FixtureExperiences {
	return FixtureExperiences{filePath: filePath}
}

func (p FixtureExperiences) GetAllExperiences() ([]payload.ExperienceData, error) {
	data, err := portal.ParseJsonFile[payload.ExperienceResponse](p.filePath)

	if err != nil {
		return nil, err
	}

	return data.Data, nil
}

// FixtureProjects serves entries straight from the authored JSON fixture.
type FixtureProjects struct {
	filePath string
}

func NewFixtureProjects(filePath string) FixtureProjects {
	return FixtureProjects{filePath: filePath}
}

func (p FixtureProjects) GetAllProjects() ([]payload.ProjectData, error) {
	data, err := portal.ParseJsonFile[payload.ProjectsResponse](p.filePath)

	if err != nil {
		return nil, err
	}

	return data.Data, nil
}

// DatabaseExperiences serves entries from the mirrored database rows.
type DatabaseExperiences struct {
	Repo repository.Experiences
}

func (p DatabaseExperiences) GetAllExperiences() ([]payload.ExperienceData, error) {
	items, err := p.Repo.GetAll()

	if err != nil {
		return nil, err
	}

	return payload.GetExperiencesData(items), nil
}

// DatabaseProjects serves entries from the mirrored database rows.
type DatabaseProjects struct {
	Repo repository.Projects
}

func (p DatabaseProjects) GetAllProjects() ([]payload.ProjectData, error) {
	items, err := p.Repo.GetAll()

	if err != nil {
		return nil, err
	}

	return payload.GetProjectsData(items), nil
}

// FallbackExperiences reads the database mirror and serves the authored
// fixture when the mirror is unreachable.
type FallbackExperiences struct {
	Primary   render.ExperienceProvider
	Secondary render.ExperienceProvider
}

func (p FallbackExperiences) GetAllExperiences() ([]payload.ExperienceData, error) {
	entries, err := p.Primary.GetAllExperiences()

	if err == nil {
		return entries, nil
	}

	slog.Warn("Experience mirror unavailable, serving fixture content", "error", err)

	return p.Secondary.GetAllExperiences()
}

// FallbackProjects reads the database mirror and serves the authored fixture
// when the mirror is unreachable.
type FallbackProjects struct {
	Primary   render.ProjectProvider
	Secondary render.ProjectProvider
}

func (p FallbackProjects) GetAllProjects() ([]payload.ProjectData, error) {
	entries, err := p.Primary.GetAllProjects()

	if err == nil {
		return entries, nil
	}

	slog.Warn("Project mirror unavailable, serving fixture content", "error", err)

	return p.Secondary.GetAllProjects()
}
