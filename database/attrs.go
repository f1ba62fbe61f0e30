package database

type ExperienceAttrs struct {
	Title            string
	Company          string
	Period           string
	Overview         string
	Roles            []RoleAttrs
	Highlights       []HighlightAttrs
	Responsibilities []string
	Technologies     []string
	Sort             int
}

type RoleAttrs struct {
	Name        string
	Description string
}

type HighlightAttrs struct {
	Category string
	Item     string
}

type ProjectAttrs struct {
	Title        string
	Description  string
	Technologies []string
	GithubURL    string
	Link         string
	Featured     bool
	Sort         int
}
