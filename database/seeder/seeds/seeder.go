package seeds

import (
	"fmt"
	"path/filepath"

	"github.com/devfolio/database"
	"github.com/devfolio/database/repository"
	"github.com/devfolio/handler/payload"
	"github.com/devfolio/metal/env"
	"github.com/devfolio/pkg/portal"
)

type Seeder struct {
	db  *database.Connection
	env *env.Environment
}

func MakeSeeder(db *database.Connection, env *env.Environment) *Seeder {
	return &Seeder{
		db:  db,
		env: env,
	}
}

// Migrate creates the owned tables. Content rows come from the fixtures, so
// there is nothing else to bootstrap.
func (s Seeder) Migrate() error {
	return s.db.Sql().AutoMigrate(
		&database.Experience{},
		&database.ExperienceRole{},
		&database.ExperienceHighlight{},
		&database.Project{},
	)
}

func (s Seeder) TruncateDB() error {
	return database.NewTruncate(s.db, s.env).Execute()
}

func (s Seeder) SeedExperiences() ([]database.Experience, error) {
	fixture := filepath.Join(s.env.Content.FixturesDir, "experience.json")

	data, err := portal.ParseJsonFile[payload.ExperienceResponse](fixture)

	if err != nil {
		return nil, fmt.Errorf("seeding experiences: %w", err)
	}

	repo := repository.Experiences{DB: s.db}
	var out []database.Experience

	for i, entry := range data.Data {
		// Reruns without a truncate keep the existing rows.
		if found := repo.FindBy(entry.Company); found != nil {
			out = append(out, *found)
			continue
		}

		created, err := repo.Create(payload.GetExperienceAttrs(entry, i))

		if err != nil {
			return nil, fmt.Errorf("seeding experience [%s]: %w", entry.Title, err)
		}

		out = append(out, *created)
	}

	return out, nil
}

func (s Seeder) SeedProjects() ([]database.Project, error) {
	fixture := filepath.Join(s.env.Content.FixturesDir, "projects.json")

	data, err := portal.ParseJsonFile[payload.ProjectsResponse](fixture)

	if err != nil {
		return nil, fmt.Errorf("seeding projects: %w", err)
	}

	repo := repository.Projects{DB: s.db}
	var out []database.Project

	for i, entry := range data.Data {
		if found := repo.FindBy(entry.Title); found != nil {
			out = append(out, *found)
			continue
		}

		created, err := repo.Create(payload.GetProjectAttrs(entry, i))

		if err != nil {
			return nil, fmt.Errorf("seeding project [%s]: %w", entry.Title, err)
		}

		out = append(out, *created)
	}

	return out, nil
}
