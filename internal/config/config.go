package config

import (
	"os"

	"gopkg.in/yaml.v3"

	eserrors "github.com/sergioamr/esniper/internal/errors"
	"github.com/sergioamr/esniper/internal/logging"
	"github.com/sergioamr/esniper/internal/proxy"
)

// Config holds the runtime configuration
type Config struct {
	Path           string
	Logger         *logging.Logger
	NonInteractive bool
	Settings       *Settings

	// Proxy is populated from Settings.Proxy during Load. The zero value
	// means direct connection.
	Proxy proxy.Spec
}

// Settings represents the esniper.yaml structure.
//
// Password is optional and discouraged: when empty the password comes
// from the OS keyring or an interactive prompt instead of sitting in a
// plaintext file.
type Settings struct {
	Username string `yaml:"username"`
	Password string `yaml:"password,omitempty"`
	Proxy    string `yaml:"proxy,omitempty"`
	LogDir   string `yaml:"logdir,omitempty"`
	Debug    bool   `yaml:"debug,omitempty"`
	Quantity int    `yaml:"quantity,omitempty"`
	Seconds  int    `yaml:"seconds,omitempty"`
}

// Environment variables honored by applyEnv. ESNIPER_DEBUG accepts the
// historical boolean words (see ParseBool); set with no value means true.
const (
	envUsername = "ESNIPER_USERNAME"
	envProxy    = "ESNIPER_PROXY"
	envDebug    = "ESNIPER_DEBUG"
)

// Load reads and parses the esniper.yaml file, applies environment
// overrides, and validates the proxy setting.
func (c *Config) Load() error {
	data, err := os.ReadFile(c.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return eserrors.ConfigError{
				Field:      "path",
				Value:      c.Path,
				Message:    "configuration file not found",
				Suggestion: "Create an esniper.yaml with at least a 'username' entry",
			}
		}
		return eserrors.UserError{
			Message:    "Failed to read configuration file",
			Details:    err.Error(),
			Suggestion: "Check file permissions and path",
			Err:        err,
		}
	}

	var settings Settings
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return eserrors.ConfigError{
			Message:    "invalid YAML syntax in configuration file",
			Suggestion: "Check for indentation errors, missing quotes, or invalid characters. Use a YAML validator",
		}
	}

	applyDefaults(&settings)
	if err := applyEnv(&settings); err != nil {
		return err
	}

	if settings.Username == "" {
		return eserrors.ConfigError{
			Field:      "username",
			Message:    "username is required",
			Suggestion: "Add 'username: <ebay user>' to " + c.Path,
		}
	}
	if settings.Quantity < 1 {
		return eserrors.ConfigError{
			Field:      "quantity",
			Value:      settings.Quantity,
			Message:    "quantity must be at least 1",
			Suggestion: "Remove the entry to bid for a single item",
		}
	}
	if settings.Seconds < 0 {
		return eserrors.ConfigError{
			Field:   "seconds",
			Value:   settings.Seconds,
			Message: "snipe lead time cannot be negative",
		}
	}

	// A rejected proxy string is surfaced, never coerced into a guess;
	// previously stored proxy state stays untouched.
	if err := c.Proxy.Set(settings.Proxy); err != nil {
		return eserrors.ConfigError{
			Field:      "proxy",
			Value:      settings.Proxy,
			Message:    err.Error(),
			Suggestion: "Use format: [http://]host[:port][/], or leave empty for a direct connection",
		}
	}

	c.Settings = &settings
	return nil
}

func applyDefaults(s *Settings) {
	if s.Quantity == 0 {
		s.Quantity = 1
	}
	if s.Seconds == 0 {
		s.Seconds = 10
	}
}

func applyEnv(s *Settings) error {
	if v, ok := os.LookupEnv(envUsername); ok && v != "" {
		s.Username = v
	}
	if v, ok := os.LookupEnv(envProxy); ok {
		s.Proxy = v
	}
	if v, ok := os.LookupEnv(envDebug); ok {
		if v == "" {
			// Variable present with no value counts as enabled.
			s.Debug = true
			return nil
		}
		b, err := ParseBool(v)
		if err != nil {
			return eserrors.ConfigError{
				Field:      envDebug,
				Value:      v,
				Message:    "not a recognized boolean",
				Suggestion: "Use one of: 0/1, n/y, no/yes, off/on, false/true, disabled/enabled",
			}
		}
		s.Debug = b
	}
	return nil
}
