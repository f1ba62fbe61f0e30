package repository

import (
	"fmt"

	"github.com/google/uuid"
	baseGorm "gorm.io/gorm"

	"github.com/devfolio/database"
	"github.com/devfolio/pkg/gorm"
	"github.com/devfolio/pkg/portal"
)

type Experiences struct {
	DB *database.Connection
}

func (e Experiences) Create(attrs database.ExperienceAttrs) (*database.Experience, error) {
	experience := database.Experience{
		UUID:             uuid.NewString(),
		Title:            attrs.Title,
		Company:          attrs.Company,
		Period:           attrs.Period,
		Overview:         attrs.Overview,
		Responsibilities: attrs.Responsibilities,
		Technologies:     attrs.Technologies,
		Sort:             attrs.Sort,
	}

	for i, role := range attrs.Roles {
		experience.Roles = append(experience.Roles, database.ExperienceRole{
			Name:        role.Name,
			Description: role.Description,
			Sort:        i,
		})
	}

	for i, highlight := range attrs.Highlights {
		experience.Highlights = append(experience.Highlights, database.ExperienceHighlight{
			Category: highlight.Category,
			Item:     highlight.Item,
			Sort:     i,
		})
	}

	if result := e.DB.Sql().Create(&experience); gorm.HasDbIssues(result.Error) {
		return nil, fmt.Errorf("issue creating experience [%s]: %s", attrs.Title, result.Error)
	}

	return &experience, nil
}

// GetAll returns every entry in authoring order, roles and highlights
// included, each in their own authoring order.
func (e Experiences) GetAll() ([]database.Experience, error) {
	var experiences []database.Experience

	err := e.DB.Sql().
		Preload("Roles", func(db *baseGorm.DB) *baseGorm.DB {
			return db.Order("experience_roles.sort asc")
		}).
		Preload("Highlights", func(db *baseGorm.DB) *baseGorm.DB {
			return db.Order("experience_highlights.sort asc")
		}).
		Order("experiences.sort asc").
		Find(&experiences).Error

	if err != nil {
		return nil, fmt.Errorf("issue fetching experiences: %w", err)
	}

	return experiences, nil
}

func (e Experiences) FindBy(company string) *database.Experience {
	experience := database.Experience{}

	result := e.DB.Sql().
		Where("LOWER(company) = ?", portal.NewStringable(company).ToLower()).
		First(&experience)

	if gorm.HasDbIssues(result.Error) {
		return nil
	}

	if result.RowsAffected > 0 {
		return &experience
	}

	return nil
}
