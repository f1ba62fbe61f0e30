package env

// SiteEnvironment holds the static chrome rendered around every HTML page,
// plus the directory the downloadable assets (resume) are served from.
type SiteEnvironment struct {
	OwnerName string `validate:"required,min=2"`
	Tagline   string `validate:"omitempty"`
	FilesDir  string `validate:"required,min=2"`
}
