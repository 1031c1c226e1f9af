package config

import (
	"os"
)

type Config struct {
	Port         string
	SeedDemoData bool
}

func ProcessEnvironmentVariables() (*Config, error) {
	// Defaults run the server standalone with the demo dataset loaded.
	env := Config{
		Port:         "9446",
		SeedDemoData: true,
	}

	envPort := os.Getenv("LEDGER_PORT")
	envSeedDemoData := os.Getenv("LEDGER_SEED_DEMO_DATA")

	if len(envPort) != 0 {
		env.Port = envPort
	}

	if len(envSeedDemoData) != 0 {
		env.SeedDemoData = envSeedDemoData != "false" && envSeedDemoData != "0"
	}

	return &env, nil
}
