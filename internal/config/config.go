// Package config holds the fixed names of the project layout and the
// settings read from the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/Masterminds/semver/v3"

	"github.com/DobbiKov/translate-dir-lib/internal/util"
)

const (
	// ConfigFile is the project document kept at the project root.
	ConfigFile = "trans_conf.json"

	SchemaVersion    = "1.0.0"
	schemaConstraint = "^1"
)

const (
	EnvLogLevel  = "TRANSDIR_LOG_LEVEL"
	EnvLogFormat = "TRANSDIR_LOG_FORMAT"
	EnvWorkers   = "TRANSDIR_WORKERS"
)

var ErrUnsupportedVersion = errors.New("unsupported config version")

// Settings are the process-wide knobs taken from the environment.
type Settings struct {
	LogLevel  string
	LogFormat string
	Workers   int
}

// Load reads Settings from the environment with defaults.
func Load() Settings {
	return Settings{
		LogLevel:  envOr(EnvLogLevel, "info"),
		LogFormat: envOr(EnvLogFormat, "console"),
		Workers:   envInt(EnvWorkers, util.WorkerCount()),
	}
}

// CheckVersion accepts any 1.x document. An empty version is taken as
// SchemaVersion, as written by tools that predate the field.
func CheckVersion(v string) error {
	if v == "" {
		v = SchemaVersion
	}
	ver, err := semver.NewVersion(v)
	if err != nil {
		return fmt.Errorf("%w: %q: %w", ErrUnsupportedVersion, v, err)
	}
	c, err := semver.NewConstraint(schemaConstraint)
	if err != nil {
		return err
	}
	if !c.Check(ver) {
		return fmt.Errorf("%w: %s (want %s)", ErrUnsupportedVersion, v, schemaConstraint)
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	i, err := strconv.Atoi(v)
	if err != nil || i < 1 {
		return fallback
	}
	return i
}
