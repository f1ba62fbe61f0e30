package env

// ContentEnvironment describes where the canonical JSON fixtures live and how
// often the database mirror is refreshed from them.
type ContentEnvironment struct {
	FixturesDir string `validate:"required,min=2"`
	SyncCron    string `validate:"required,cron"`
}
