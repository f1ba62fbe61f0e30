package payload

import "github.com/devfolio/database"

func GetExperienceData(e database.Experience) ExperienceData {
	data := ExperienceData{
		UUID:             e.UUID,
		Title:            e.Title,
		Company:          e.Company,
		Period:           e.Period,
		Overview:         e.Overview,
		Responsibilities: e.Responsibilities,
		Technologies:     e.Technologies,
	}

	for _, role := range e.Roles {
		data.Roles = append(data.Roles, RoleData{
			Name:        role.Name,
			Description: role.Description,
		})
	}

	data.Details = groupHighlights(e.Highlights)

	return data
}

func GetExperiencesData(items []database.Experience) []ExperienceData {
	out := make([]ExperienceData, 0, len(items))

	for _, item := range items {
		out = append(out, GetExperienceData(item))
	}

	return out
}

// groupHighlights folds flat highlight rows into ordered category groups.
// Category order is first-seen order, which mirrors authoring order because
// rows arrive sorted.
func groupHighlights(rows []database.ExperienceHighlight) []DetailGroup {
	var groups []DetailGroup
	index := make(map[string]int)

	for _, row := range rows {
		at, seen := index[row.Category]

		if !seen {
			index[row.Category] = len(groups)
			groups = append(groups, DetailGroup{Category: row.Category})
			at = index[row.Category]
		}

		groups[at].Items = append(groups[at].Items, row.Item)
	}

	return groups
}

// GetExperienceAttrs turns a wire entry back into creation attributes, used
// by the seeder and the content sync job. Grouped details flatten into
// highlight rows; authoring order is carried by slice position.
func GetExperienceAttrs(data ExperienceData, sort int) database.ExperienceAttrs {
	attrs := database.ExperienceAttrs{
		Title:            data.Title,
		Company:          data.Company,
		Period:           data.Period,
		Overview:         data.Overview,
		Responsibilities: data.Responsibilities,
		Technologies:     data.Technologies,
		Sort:             sort,
	}

	for _, role := range data.Roles {
		attrs.Roles = append(attrs.Roles, database.RoleAttrs{
			Name:        role.Name,
			Description: role.Description,
		})
	}

	for _, group := range data.Details {
		for _, item := range group.Items {
			attrs.Highlights = append(attrs.Highlights, database.HighlightAttrs{
				Category: group.Category,
				Item:     item,
			})
		}
	}

	return attrs
}

func GetProjectAttrs(data ProjectData, sort int) database.ProjectAttrs {
	return database.ProjectAttrs{
		Title:        data.Title,
		Description:  data.Description,
		Technologies: data.Technologies,
		GithubURL:    data.GithubURL,
		Link:         data.Link,
		Featured:     data.Featured,
		Sort:         sort,
	}
}

func GetProjectData(p database.Project) ProjectData {
	return ProjectData{
		UUID:         p.UUID,
		Title:        p.Title,
		Description:  p.Description,
		Technologies: p.Technologies,
		GithubURL:    p.GithubURL,
		Link:         p.Link,
		Featured:     p.Featured,
	}
}

func GetProjectsData(items []database.Project) []ProjectData {
	out := make([]ProjectData, 0, len(items))

	for _, item := range items {
		out = append(out, GetProjectData(item))
	}

	return out
}
