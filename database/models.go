package database

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Experience is one timeline entry. Optional content blocks (overview, roles,
// highlights, responsibilities) may be empty; the renderer simply omits the
// matching section.
type Experience struct {
	ID               uint64                `gorm:"primaryKey"`
	UUID             string                `gorm:"type:uuid;uniqueIndex;not null"`
	Title            string                `gorm:"not null"`
	Company          string                `gorm:"not null"`
	Period           string                `gorm:"not null"`
	Overview         string                ``
	Responsibilities pq.StringArray        `gorm:"type:text[]"`
	Technologies     pq.StringArray        `gorm:"type:text[]"`
	Sort             int                   `gorm:"not null;default:0;index"`
	Roles            []ExperienceRole      `gorm:"foreignKey:ExperienceID"`
	Highlights       []ExperienceHighlight `gorm:"foreignKey:ExperienceID"`
	CreatedAt        time.Time             ``
	UpdatedAt        time.Time             ``
	DeletedAt        gorm.DeletedAt        `gorm:"index"`
}

// ExperienceRole holds the already-split "<name> - <description>" convention
// as two explicit fields.
type ExperienceRole struct {
	ID           uint64 `gorm:"primaryKey"`
	ExperienceID uint64 `gorm:"not null;index"`
	Name         string `gorm:"not null"`
	Description  string ``
	Sort         int    `gorm:"not null;default:0"`
}

// ExperienceHighlight is a grouped bullet. Category order and item order both
// follow Sort, which mirrors authoring order.
type ExperienceHighlight struct {
	ID           uint64 `gorm:"primaryKey"`
	ExperienceID uint64 `gorm:"not null;index"`
	Category     string `gorm:"not null"`
	Item         string `gorm:"not null"`
	Sort         int    `gorm:"not null;default:0"`
}

type Project struct {
	ID           uint64         `gorm:"primaryKey"`
	UUID         string         `gorm:"type:uuid;uniqueIndex;not null"`
	Title        string         `gorm:"not null"`
	Description  string         `gorm:"not null"`
	Technologies pq.StringArray `gorm:"type:text[]"`
	GithubURL    string         `gorm:"not null"`
	Link         string         `gorm:"not null"`
	Featured     bool           `gorm:"not null;default:false"`
	Sort         int            `gorm:"not null;default:0;index"`
	CreatedAt    time.Time      ``
	UpdatedAt    time.Time      ``
	DeletedAt    gorm.DeletedAt `gorm:"index"`
}

// GetSchemaTables lists the owned tables in creation order. Truncation walks
// it backwards.
func GetSchemaTables() []string {
	return []string{
		"experiences",
		"experience_roles",
		"experience_highlights",
		"projects",
	}
}

func isValidTable(name string) bool {
	for _, table := range GetSchemaTables() {
		if table == name {
			return true
		}
	}

	return false
}
