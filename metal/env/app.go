package env

const local = "local"
const staging = "staging"
const production = "production"

// BCP-47 tag, this feeds the <html lang> attribute.
const defaultLanguage = "en-GB"

type AppEnvironment struct {
	Name string `validate:"required,min=4"`
	URL  string `validate:"required,url"`
	Type string `validate:"required,lowercase,oneof=local production staging"`
}

func (e AppEnvironment) IsProduction() bool {
	return e.Type == production
}

func (e AppEnvironment) IsStaging() bool {
	return e.Type == staging
}

func (e AppEnvironment) IsLocal() bool {
	return e.Type == local
}

func (e AppEnvironment) Lang() string {
	return defaultLanguage
}
