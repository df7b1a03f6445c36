package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// PathEnv names the environment variable holding the YAML file path.
const PathEnv = "CONFIG_PATH"

const defaultPath = "config.yaml"

// Load reads the configuration named by CONFIG_PATH, or config.yaml in the
// working directory when that exists, and validates it. Environment
// variables override the file; env-default tags fill the rest.
func Load() (*Config, error) {
	if path := os.Getenv(PathEnv); path != "" {
		return LoadFile(path)
	}
	if _, err := os.Stat(defaultPath); err == nil {
		return LoadFile(defaultPath)
	}
	return LoadFile("")
}

// LoadFile reads the configuration from path, or from the environment alone
// when path is empty. A named file must exist.
func LoadFile(path string) (*Config, error) {
	var cfg Config

	if path == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("config: read env: %w", err)
		}
	} else {
		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("config: file %s: %w", path, err)
		}
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return &cfg, nil
}

// Describe writes the environment variables the configuration reads, with
// their defaults.
func Describe(w io.Writer) error {
	var cfg Config
	header := fmt.Sprintf("Settings are read from the YAML file named by %s, then from these variables:", PathEnv)
	text, err := cleanenv.GetDescription(&cfg, &header)
	if err != nil {
		return fmt.Errorf("config: describe: %w", err)
	}
	_, err = fmt.Fprintln(w, text)
	return err
}
