package boost

import (
	"github.com/joho/godotenv"

	"github.com/devfolio/metal/env"
	"github.com/devfolio/pkg/portal"
)

func Ignite(envPath string, validate *portal.Validator) *env.Environment {
	envMap, err := godotenv.Read(envPath)

	if err != nil {
		panic("failed to read the .env file: " + err.Error())
	}

	return MakeEnv(envMap, validate)
}
