package commands

import (
	"errors"
	"os"

	"gallery/config"
	"gallery/pkg/logger"
)

func ExitOnError(err error) {
	logger.Error("gallery error", "err", err.Error())
	_ = logger.Sync()
	os.Exit(1)
}

// loadConfig reads the config file named by the command's first argument and
// starts the global logger from it.
func loadConfig(args []string) *config.Config {
	if len(args) < 3 {
		ExitOnError(errors.New("at least 1 arguments expected\nuse help command for more information"))
	}

	cfg, err := config.Load(args[2])
	if err != nil {
		ExitOnError(err)
	}

	logger.InitGlobalLogger(&cfg.Logger)

	return cfg
}
