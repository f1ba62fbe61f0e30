package main

import (
	"fmt"

	"github.com/devfolio/boost"
	"github.com/devfolio/database/seeder/seeds"
	"github.com/devfolio/metal/env"
	"github.com/devfolio/pkg/cli"
	"github.com/devfolio/pkg/portal"
)

var environment *env.Environment

func init() {
	environment = boost.Ignite("./.env", portal.GetDefaultValidator())
}

func main() {
	cli.ClearScreen()

	dbConnection := boost.MakeDbConnection(environment)
	logs := boost.MakeLogs(environment)

	defer (*logs).Close()
	defer (*dbConnection).Close()

	seeder := seeds.MakeSeeder(dbConnection, environment)

	if err := seeder.Migrate(); err != nil {
		panic(err)
	}

	cli.Successln("db migrated successfully ...")

	if err := seeder.TruncateDB(); err != nil {
		panic(err)
	}

	cli.Successln("db truncated successfully ...")

	cli.Warningln("Seeding experiences ...")
	experiences, err := seeder.SeedExperiences()
	if err != nil {
		panic(err)
	}

	cli.Magentaln("Seeding projects ...")
	projects, err := seeder.SeedProjects()
	if err != nil {
		panic(err)
	}

	cli.Blueln(fmt.Sprintf("Seeded %d experiences and %d projects.", len(experiences), len(projects)))
	cli.Successln("All done!")
}
