package config

import (
	_ "embed"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"sigs.k8s.io/yaml"
)

//go:embed default/config.yaml
var defaultConfigData []byte

const (
	// ConfigurationName is the file name looked up inside the config
	// directory.
	ConfigurationName = "config.yaml"

	// DefaultDirName is the config directory under the user's home.
	DefaultDirName = ".minishell"
)

// Configuration holds the shell's user-tunable settings. Paths may start
// with ~ and are expanded against the user's home directory at startup.
type Configuration struct {
	configurationDir string

	// PromptSuffix trails the current directory in the prompt.
	PromptSuffix string `json:"prompt_suffix" validate:"required"`
	// Color toggles ANSI colors in prompts and messages.
	Color bool `json:"color"`
	// PosixShell runs command lines on non-Windows hosts.
	PosixShell string `json:"posix_shell" validate:"required"`
	// HistoryFile persists the command history between sessions.
	HistoryFile string `json:"history_file" validate:"required"`
	// HistoryMax caps the persisted history; 0 means the built-in default.
	HistoryMax int `json:"history_max" validate:"gte=0"`
	// LogFile receives the JSON-lines event log.
	LogFile string `json:"log_file" validate:"required"`
}

// Validate the configuration for basic semantic errors.
func (c *Configuration) Validate() error {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		return name
	})

	return validate.Struct(c)
}

// Dir returns the directory the configuration was loaded from.
func (c *Configuration) Dir() string {
	return c.configurationDir
}

// Default returns the embedded default configuration. It panics on parse
// failure because that should never happen at runtime.
func Default() *Configuration {
	var out Configuration
	if err := yaml.UnmarshalStrict(defaultConfigData, &out); err != nil {
		panic(err)
	}
	return &out
}

// ExpandHome substitutes a leading ~ in path with home.
func ExpandHome(path, home string) string {
	switch {
	case path == "~":
		return home
	case strings.HasPrefix(path, "~/"):
		return filepath.Join(home, path[2:])
	default:
		return path
	}
}
