package payload

import (
	"encoding/json"
	"strings"
)

// RoleSeparator is the literal token that splits an authored role string into
// its name and description. Only the first occurrence counts.
const RoleSeparator = " - "

type ExperienceResponse struct {
	Version string           `json:"version"`
	Data    []ExperienceData `json:"data"`
}

type ExperienceData struct {
	UUID             string        `json:"uuid,omitempty"`
	Title            string        `json:"title"`
	Company          string        `json:"company"`
	Period           string        `json:"period"`
	Overview         string        `json:"overview,omitempty"`
	Roles            []RoleData    `json:"roles,omitempty"`
	Details          []DetailGroup `json:"details,omitempty"`
	Responsibilities []string      `json:"responsibilities,omitempty"`
	Technologies     []string      `json:"technologies"`
}

// RoleData is the two-field form of the authored "<name> - <description>"
// convention. The split happens once, when content is loaded.
type RoleData struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// DetailGroup keeps category headings in authoring order. A plain map would
// lose that order, so grouped bullets are modelled as a slice.
type DetailGroup struct {
	Category string   `json:"category"`
	Items    []string `json:"items"`
}

// SplitRole breaks an authored role string on the first separator occurrence.
// A string without the separator yields an empty description rather than an
// error.
func SplitRole(raw string) RoleData {
	name, description, _ := strings.Cut(raw, RoleSeparator)

	return RoleData{
		Name:        name,
		Description: description,
	}
}

// UnmarshalJSON accepts both the authored string form ("name - description")
// and the explicit object form, so fixtures can stay in the original
// single-string convention.
func (r *RoleData) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err == nil {
		*r = SplitRole(raw)

		return nil
	}

	type alias RoleData

	var parsed alias
	if err := json.Unmarshal(data, &parsed); err != nil {
		return err
	}

	*r = RoleData(parsed)

	return nil
}
