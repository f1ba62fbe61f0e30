package boost

import (
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/getsentry/sentry-go"
	sentryhttp "github.com/getsentry/sentry-go/http"

	"github.com/devfolio/database"
	"github.com/devfolio/metal/env"
	"github.com/devfolio/pkg/llogs"
	"github.com/devfolio/pkg/portal"
)

func MakeSentry(env *env.Environment) *portal.Sentry {
	cOptions := sentry.ClientOptions{
		Dsn:         env.Sentry.DSN,
		Environment: env.App.Type,
	}

	if err := sentry.Init(cOptions); err != nil {
		log.Fatalf("sentry.Init: %s", err)
	}

	defer sentry.Flush(2 * time.Second)

	options := sentryhttp.Options{}
	handler := sentryhttp.New(options)

	return &portal.Sentry{
		Handler: handler,
		Options: &options,
		Env:     env,
	}
}

func MakeDbConnection(env *env.Environment) *database.Connection {
	dbConn, err := database.MakeConnection(env)

	if err != nil {
		panic("Sql: error connecting to PostgreSQL: " + err.Error())
	}

	return dbConn
}

func MakeLogs(env *env.Environment) *llogs.Driver {
	lDriver, err := llogs.MakeFilesLogs(env)

	if err != nil {
		panic("logs: error opening logs file: " + err.Error())
	}

	return &lDriver
}

func MakeEnv(values map[string]string, validate *portal.Validator) *env.Environment {
	errorSufix := "Environment: "

	port, _ := strconv.Atoi(values["ENV_DB_PORT"])

	app := env.AppEnvironment{
		Name: strings.TrimSpace(values["ENV_APP_NAME"]),
		URL:  strings.TrimSpace(values["ENV_APP_URL"]),
		Type: strings.TrimSpace(values["ENV_APP_ENV_TYPE"]),
	}

	db := env.DBEnvironment{
		UserName:     env.GetSecretOrEnv("db_user", "ENV_DB_USER_NAME"),
		UserPassword: env.GetSecretOrEnv("db_password", "ENV_DB_USER_PASSWORD"),
		DatabaseName: strings.TrimSpace(values["ENV_DB_DATABASE_NAME"]),
		Port:         port,
		Host:         strings.TrimSpace(values["ENV_DB_HOST"]),
		DriverName:   "postgres",
		SSLMode:      strings.TrimSpace(values["ENV_DB_SSL_MODE"]),
		TimeZone:     strings.TrimSpace(values["ENV_DB_TIMEZONE"]),
	}

	logsCreds := env.LogsEnvironment{
		Level:      strings.TrimSpace(values["ENV_APP_LOG_LEVEL"]),
		Dir:        strings.TrimSpace(values["ENV_APP_LOGS_DIR"]),
		DateFormat: strings.TrimSpace(values["ENV_APP_LOGS_DATE_FORMAT"]),
	}

	net := env.NetEnvironment{
		HttpHost: strings.TrimSpace(values["ENV_HTTP_HOST"]),
		HttpPort: strings.TrimSpace(values["ENV_HTTP_PORT"]),
	}

	sentryEnvironment := env.SentryEnvironment{
		DSN: strings.TrimSpace(values["ENV_SENTRY_DSN"]),
		CSP: strings.TrimSpace(values["ENV_SENTRY_CSP"]),
	}

	ping := env.PingEnvironment{
		Username: env.GetSecretOrEnv("ping_username", "ENV_PING_USERNAME"),
		Password: env.GetSecretOrEnv("ping_password", "ENV_PING_PASSWORD"),
	}

	site := env.SiteEnvironment{
		OwnerName: strings.TrimSpace(values["ENV_SITE_OWNER_NAME"]),
		Tagline:   strings.TrimSpace(values["ENV_SITE_TAGLINE"]),
		FilesDir:  strings.TrimSpace(values["ENV_SITE_FILES_DIR"]),
	}

	content := env.ContentEnvironment{
		FixturesDir: strings.TrimSpace(values["ENV_CONTENT_FIXTURES_DIR"]),
		SyncCron:    strings.TrimSpace(values["ENV_CONTENT_SYNC_CRON"]),
	}

	if _, err := validate.Rejects(app); err != nil {
		panic(errorSufix + "invalid [APP] model: " + validate.GetErrorsAsJson())
	}

	if _, err := validate.Rejects(db); err != nil {
		panic(errorSufix + "invalid [Sql] model: " + validate.GetErrorsAsJson())
	}

	if _, err := validate.Rejects(logsCreds); err != nil {
		panic(errorSufix + "invalid [Logs Creds] model: " + validate.GetErrorsAsJson())
	}

	if _, err := validate.Rejects(net); err != nil {
		panic(errorSufix + "invalid [NETWORK] model: " + validate.GetErrorsAsJson())
	}

	if _, err := validate.Rejects(sentryEnvironment); err != nil {
		panic(errorSufix + "invalid [SENTRY] model: " + validate.GetErrorsAsJson())
	}

	if _, err := validate.Rejects(ping); err != nil {
		panic(errorSufix + "invalid [PING] model: " + validate.GetErrorsAsJson())
	}

	if _, err := validate.Rejects(site); err != nil {
		panic(errorSufix + "invalid [SITE] model: " + validate.GetErrorsAsJson())
	}

	if _, err := validate.Rejects(content); err != nil {
		panic(errorSufix + "invalid [CONTENT] model: " + validate.GetErrorsAsJson())
	}

	environment := &env.Environment{
		App:     app,
		DB:      db,
		Logs:    logsCreds,
		Network: net,
		Sentry:  sentryEnvironment,
		Ping:    ping,
		Site:    site,
		Content: content,
	}

	if _, err := validate.Rejects(environment); err != nil {
		panic(errorSufix + "invalid [ENVIRONMENT] model: " + validate.GetErrorsAsJson())
	}

	return environment
}
