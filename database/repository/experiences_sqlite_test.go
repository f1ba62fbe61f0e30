package repository_test

import (
	"testing"

	"github.com/devfolio/database"
	"github.com/devfolio/database/repository"
)

func TestExperiencesCreateSQLite(t *testing.T) {
	conn := newSQLiteConnection(t, experienceModels()...)
	repo := repository.Experiences{DB: conn}

	created, err := repo.Create(database.ExperienceAttrs{
		Title:   "Engineer",
		Company: "Acme",
		Period:  "2020 - 2022",
		Roles: []database.RoleAttrs{
			{Name: "Lead", Description: "owned delivery"},
			{Name: "Mentor", Description: "ran onboarding"},
		},
		Highlights: []database.HighlightAttrs{
			{Category: "Platform", Item: "built the API"},
		},
		Technologies: []string{"Go", "Postgres"},
		Sort:         0,
	})

	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if created.UUID == "" || created.ID == 0 {
		t.Fatalf("unexpected experience: %+v", created)
	}

	if len(created.Roles) != 2 || created.Roles[1].Sort != 1 {
		t.Fatalf("unexpected roles: %+v", created.Roles)
	}
}

func TestExperiencesGetAllOrderSQLite(t *testing.T) {
	conn := newSQLiteConnection(t, experienceModels()...)
	repo := repository.Experiences{DB: conn}

	seed := []database.ExperienceAttrs{
		{Title: "Recent", Company: "B", Period: "2023", Sort: 0},
		{Title: "Older", Company: "A", Period: "2019", Sort: 1,
			Roles: []database.RoleAttrs{
				{Name: "Second", Description: ""},
				{Name: "First", Description: ""},
			},
			Highlights: []database.HighlightAttrs{
				{Category: "Zulu", Item: "z1"},
				{Category: "Alpha", Item: "a1"},
				{Category: "Zulu", Item: "z2"},
			},
		},
	}

	for _, attrs := range seed {
		if _, err := repo.Create(attrs); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	all, err := repo.GetAll()
	if err != nil {
		t.Fatalf("get all: %v", err)
	}

	if len(all) != 2 || all[0].Title != "Recent" || all[1].Title != "Older" {
		t.Fatalf("unexpected order: %+v", all)
	}

	older := all[1]

	if len(older.Roles) != 2 || older.Roles[0].Name != "Second" {
		t.Fatalf("role order broken: %+v", older.Roles)
	}

	if len(older.Highlights) != 3 || older.Highlights[0].Category != "Zulu" || older.Highlights[1].Category != "Alpha" {
		t.Fatalf("highlight order broken: %+v", older.Highlights)
	}
}

func TestExperiencesFindBySQLite(t *testing.T) {
	conn := newSQLiteConnection(t, experienceModels()...)
	repo := repository.Experiences{DB: conn}

	if _, err := repo.Create(database.ExperienceAttrs{Title: "t", Company: "Northwind Cloud", Period: "p"}); err != nil {
		t.Fatalf("seed: %v", err)
	}

	if found := repo.FindBy("northwind cloud"); found == nil || found.Company != "Northwind Cloud" {
		t.Fatalf("expected case-insensitive company match")
	}

	if found := repo.FindBy("  NORTHWIND CLOUD  "); found == nil || found.Company != "Northwind Cloud" {
		t.Fatalf("expected padded company lookup to match")
	}

	if found := repo.FindBy("missing"); found != nil {
		t.Fatalf("expected missing lookup to return nil")
	}
}
