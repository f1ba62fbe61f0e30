package boost

import "fmt"

const fixtureProfile = "profile"
const fixtureProjects = "projects"
const fixtureExperience = "experience"

type Fixture struct {
	basePath string
	mime     string
}

func NewFixture(basePath string) Fixture {
	return Fixture{
		basePath: basePath,
		mime:     "json",
	}
}

func (f Fixture) GetProfile() string {
	return f.getFileFor(fixtureProfile)
}

func (f Fixture) GetProjects() string {
	return f.getFileFor(fixtureProjects)
}

func (f Fixture) GetExperience() string {
	return f.getFileFor(fixtureExperience)
}

func (f Fixture) getFileFor(slug string) string {
	return fmt.Sprintf("%s/%s.%s", f.basePath, slug, f.mime)
}
