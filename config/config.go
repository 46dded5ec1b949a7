// Package config loads the server's YAML configuration file, in the same
// style as the teacher's cli/cmd/config.go: a plain struct, yaml.v3 tags, and
// a Load function that reports a clear error when the file is absent.
package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the server's on-disk configuration. It carries none of the
// database connectivity fields the teacher's Config had (Databases,
// ServiceName's DSN use) since DB connectivity is out of scope.
type Config struct {
	// LogLevel is parsed with logrus.ParseLevel; empty defaults to "info".
	LogLevel string `yaml:"loglevel"`

	// MaxDocumentBytes rejects documents larger than this size outright
	// rather than attempting to lex/split them. Zero means unlimited.
	MaxDocumentBytes int `yaml:"max_document_bytes"`

	// Debug makes the splitter panic on an ambiguous statement match
	// instead of logging it and recovering; see splitter.Options.Debug.
	Debug bool `yaml:"debug"`
}

// Default returns the configuration used when no file is found.
func Default() Config {
	return Config{LogLevel: "info"}
}

// Load reads and parses the YAML file at path. A missing file is reported
// as an error the caller can choose to treat as "use Default()".
func Load(path string) (Config, error) {
	result := Default()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Config{}, errors.New("no config file found at " + filepath.Clean(path))
	}

	contents, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	if err := yaml.Unmarshal(contents, &result); err != nil {
		return Config{}, err
	}
	return result, nil
}
