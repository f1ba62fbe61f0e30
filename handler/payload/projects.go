package payload

import "strings"

const gitLabLabel = "View on GitLab"
const gitHubLabel = "View on GitHub"

type ProjectsResponse struct {
	Version string        `json:"version"`
	Data    []ProjectData `json:"data"`
}

type ProjectData struct {
	UUID         string   `json:"uuid,omitempty"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
	GithubURL    string   `json:"github_url"`
	Link         string   `json:"link"`
	Featured     bool     `json:"featured"`
}

// RepoLabel picks the visible label for the external repository link. It is a
// deliberate substring test, not URL-host parsing: a "gitlab.com" anywhere in
// the URL wins.
func (p ProjectData) RepoLabel() string {
	if strings.Contains(p.GithubURL, "gitlab.com") {
		return gitLabLabel
	}

	return gitHubLabel
}
