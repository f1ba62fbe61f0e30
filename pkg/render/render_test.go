package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/devfolio/handler/payload"
)

var testChrome = SiteChrome{
	SiteName:   "devfolio",
	OwnerName:  "Gus",
	Tagline:    "Software Engineer",
	Lang:       "en",
	ResumePath: "/files/resume.pdf",
}

func newTestRenderer(t *testing.T) *Renderer {
	t.Helper()

	r, err := New()
	if err != nil {
		t.Fatalf("renderer: %v", err)
	}

	return r
}

func renderExperience(t *testing.T, entries []payload.ExperienceData) string {
	t.Helper()

	var buf bytes.Buffer
	r := newTestRenderer(t)

	if err := r.ExperiencePage(&buf, ExperiencePage{Site: testChrome, Entries: entries}); err != nil {
		t.Fatalf("render: %v", err)
	}

	return buf.String()
}

func renderProjects(t *testing.T, entries []payload.ProjectData) string {
	t.Helper()

	var buf bytes.Buffer
	r := newTestRenderer(t)

	if err := r.ProjectsPage(&buf, NewProjectsPage(testChrome, entries)); err != nil {
		t.Fatalf("render: %v", err)
	}

	return buf.String()
}

func TestExperienceBareEntryRendersHeaderAndBadgesOnly(t *testing.T) {
	html := renderExperience(t, []payload.ExperienceData{
		{
			Title:        "Engineer",
			Company:      "Acme",
			Period:       "2020 - 2022",
			Technologies: []string{"Go"},
		},
	})

	for _, want := range []string{"<h2>Engineer</h2>", "Acme", "2020 - 2022", `<li class="badge">Go</li>`} {
		if !strings.Contains(html, want) {
			t.Fatalf("missing %q in:\n%s", want, html)
		}
	}

	for _, absent := range []string{"overview", "roles", "details", "responsibilities", "<h3>"} {
		if strings.Contains(html, absent) {
			t.Fatalf("unexpected %q in:\n%s", absent, html)
		}
	}
}

func TestExperienceOptionalBlocksRender(t *testing.T) {
	html := renderExperience(t, []payload.ExperienceData{
		{
			Title:    "Lead",
			Company:  "Acme",
			Period:   "2022 - Present",
			Overview: "Ran the platform group.",
			Roles: []payload.RoleData{
				{Name: "Tech Lead", Description: "owned delivery"},
				{Name: "Mentor", Description: "ran onboarding"},
			},
			Responsibilities: []string{"On-call rota"},
			Technologies:     []string{"Go", "Postgres"},
		},
	})

	for _, want := range []string{
		`<p class="overview">Ran the platform group.</p>`,
		"<li><strong>Tech Lead</strong> owned delivery</li>",
		"<li><strong>Mentor</strong> ran onboarding</li>",
		"<li>On-call rota</li>",
	} {
		if !strings.Contains(html, want) {
			t.Fatalf("missing %q in:\n%s", want, html)
		}
	}

	lead := strings.Index(html, "<strong>Tech Lead</strong>")
	mentor := strings.Index(html, "<strong>Mentor</strong>")

	if lead < 0 || mentor < 0 || lead > mentor {
		t.Fatalf("role order broken at %d/%d:\n%s", lead, mentor, html)
	}
}

func TestExperienceDetailsKeepAuthoringOrder(t *testing.T) {
	html := renderExperience(t, []payload.ExperienceData{
		{
			Title:   "Engineer",
			Company: "Acme",
			Period:  "2019",
			Details: []payload.DetailGroup{
				{Category: "Zulu Work", Items: []string{"z1", "z2"}},
				{Category: "Alpha Work", Items: []string{"a1"}},
			},
			Technologies: []string{"Go"},
		},
	})

	zulu := strings.Index(html, "<h3>Zulu Work</h3>")
	alpha := strings.Index(html, "<h3>Alpha Work</h3>")

	if zulu < 0 || alpha < 0 || zulu > alpha {
		t.Fatalf("category order broken at %d/%d:\n%s", zulu, alpha, html)
	}

	if !strings.Contains(html, "<li>z1</li>\n<li>z2</li>") {
		t.Fatalf("item order broken:\n%s", html)
	}
}

func TestExperienceEntriesKeepInputOrder(t *testing.T) {
	html := renderExperience(t, []payload.ExperienceData{
		{Title: "Second Job", Company: "B", Period: "2021"},
		{Title: "First Job", Company: "A", Period: "2018"},
	})

	second := strings.Index(html, "Second Job")
	first := strings.Index(html, "First Job")

	if second < 0 || first < 0 || second > first {
		t.Fatalf("entry order broken:\n%s", html)
	}
}

func TestProjectsStablePartition(t *testing.T) {
	page := NewProjectsPage(testChrome, []payload.ProjectData{
		{Title: "f1", Featured: true},
		{Title: "o1"},
		{Title: "f2", Featured: true},
		{Title: "o2"},
	})

	if len(page.Featured) != 2 || len(page.Other) != 2 {
		t.Fatalf("unexpected partition: %+v", page)
	}

	if page.Featured[0].Title != "f1" || page.Featured[1].Title != "f2" {
		t.Fatalf("featured order broken: %+v", page.Featured)
	}

	if page.Other[0].Title != "o1" || page.Other[1].Title != "o2" {
		t.Fatalf("other order broken: %+v", page.Other)
	}
}

func TestProjectsRepoLabels(t *testing.T) {
	html := renderProjects(t, []payload.ProjectData{
		{Title: "hub", GithubURL: "https://github.com/x/hub", Link: "/projects/hub"},
		{Title: "lab", GithubURL: "https://gitlab.com/x/lab", Link: "/projects/lab"},
	})

	if !strings.Contains(html, ">View on GitHub</a>") {
		t.Fatalf("missing GitHub label:\n%s", html)
	}

	if !strings.Contains(html, ">View on GitLab</a>") {
		t.Fatalf("missing GitLab label:\n%s", html)
	}
}

func TestProjectsSectionsOnlyWhenPopulated(t *testing.T) {
	onlyFeatured := renderProjects(t, []payload.ProjectData{
		{Title: "f1", Featured: true},
	})

	if !strings.Contains(onlyFeatured, "Featured Projects") {
		t.Fatalf("missing featured section:\n%s", onlyFeatured)
	}

	if strings.Contains(onlyFeatured, "Other Projects") {
		t.Fatalf("unexpected other section:\n%s", onlyFeatured)
	}

	onlyOther := renderProjects(t, []payload.ProjectData{
		{Title: "o1"},
	})

	if strings.Contains(onlyOther, "Featured Projects") {
		t.Fatalf("unexpected featured section:\n%s", onlyOther)
	}
}

func TestEmptyListsKeepStaticChrome(t *testing.T) {
	experience := renderExperience(t, nil)
	projects := renderProjects(t, nil)

	for _, html := range []string{experience, projects} {
		if !strings.Contains(html, "devfolio") || !strings.Contains(html, "Download Resume") {
			t.Fatalf("chrome missing on empty page:\n%s", html)
		}

		if strings.Contains(html, "timeline-item") || strings.Contains(html, `class="card"`) {
			t.Fatalf("unexpected entries on empty page:\n%s", html)
		}
	}
}

func TestRenderingIsPure(t *testing.T) {
	entries := []payload.ProjectData{
		{Title: "f1", GithubURL: "https://github.com/x/f1", Featured: true},
		{Title: "o1", GithubURL: "https://gitlab.com/x/o1"},
	}

	first := renderProjects(t, entries)
	second := renderProjects(t, entries)

	if first != second {
		t.Fatalf("renders differ:\n%s\n---\n%s", first, second)
	}
}

func TestHomePageRendersChrome(t *testing.T) {
	var buf bytes.Buffer
	r := newTestRenderer(t)

	if err := r.HomePage(&buf, HomePage{Site: testChrome}); err != nil {
		t.Fatalf("render: %v", err)
	}

	if !strings.Contains(buf.String(), "Gus") || !strings.Contains(buf.String(), "Software Engineer") {
		t.Fatalf("missing owner chrome:\n%s", buf.String())
	}
}
