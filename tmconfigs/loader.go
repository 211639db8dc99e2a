package tmconfigs

import (
	_ "embed"
	"os"
	"path/filepath"

	"github.com/reusee/turing/configs"
	"github.com/reusee/turing/logs"
	"github.com/reusee/turing/modes"
)

//go:embed schema.cue
var schema string

var filenames = []string{
	"turing.cue",
	".turing.cue",
}

func (Module) ConfigsLoader(
	logger logs.Logger,
	mode modes.Mode,
) configs.Loader {

	var paths []string
	defer func() {
		if len(paths) > 0 {
			logger.Info("config file",
				"paths", paths,
			)
		}
	}()

	if *configFile != "" {
		paths = append(paths, *configFile)
	}

	// only explicit files in development mode
	if mode == modes.ModeDevelopment {
		return configs.NewLoader(paths, schema)
	}

	// working directory
	workingDir, err := os.Getwd()
	if err == nil {
		paths = appendExisting(paths, workingDir)
	}

	// user config dir
	configDir, err := os.UserConfigDir()
	if err == nil {
		paths = appendExisting(paths, configDir)
	}

	// system wide dir
	paths = appendExisting(paths, "/etc")

	return configs.NewLoader(paths, schema)
}

func appendExisting(paths []string, dir string) []string {
	for _, filename := range filenames {
		path := filepath.Join(dir, filename)
		if _, err := os.Stat(path); err == nil {
			paths = append(paths, path)
		}
	}
	return paths
}
