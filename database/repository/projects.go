package repository

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/devfolio/database"
	"github.com/devfolio/pkg/gorm"
	"github.com/devfolio/pkg/portal"
)

type Projects struct {
	DB *database.Connection
}

func (p Projects) Create(attrs database.ProjectAttrs) (*database.Project, error) {
	project := database.Project{
		UUID:         uuid.NewString(),
		Title:        attrs.Title,
		Description:  attrs.Description,
		Technologies: attrs.Technologies,
		GithubURL:    attrs.GithubURL,
		Link:         attrs.Link,
		Featured:     attrs.Featured,
		Sort:         attrs.Sort,
	}

	if result := p.DB.Sql().Create(&project); gorm.HasDbIssues(result.Error) {
		return nil, fmt.Errorf("issue creating project [%s]: %s", attrs.Title, result.Error)
	}

	return &project, nil
}

// GetAll returns every project in authoring order. Partitioning into featured
// and other groups is a presentation concern and happens in the renderer.
func (p Projects) GetAll() ([]database.Project, error) {
	var projects []database.Project

	err := p.DB.Sql().
		Order("projects.sort asc").
		Find(&projects).Error

	if err != nil {
		return nil, fmt.Errorf("issue fetching projects: %w", err)
	}

	return projects, nil
}

func (p Projects) FindBy(title string) *database.Project {
	project := database.Project{}

	result := p.DB.Sql().
		Where("LOWER(title) = ?", portal.NewStringable(title).ToLower()).
		First(&project)

	if gorm.HasDbIssues(result.Error) {
		return nil
	}

	if result.RowsAffected > 0 {
		return &project
	}

	return nil
}
