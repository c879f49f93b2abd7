package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/arthur-debert/skillhook/pkg/errors"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	gotoml "github.com/pelletier/go-toml/v2"
)

const (
	// EnvPrefix prefixes every settings environment variable
	EnvPrefix = "SKILLHOOK_"

	// ProjectConfigFile is the optional per-project settings file
	ProjectConfigFile = ".claude/skillhook.toml"
)

// Config holds the hook settings
type Config struct {
	Project ProjectConfig `koanf:"project"`
	Rules   RulesConfig   `koanf:"rules"`
	Match   MatchConfig   `koanf:"match"`
	Logging LoggingConfig `koanf:"logging"`

	// Source is the project settings file that was merged, if any
	Source string `koanf:"-"`
}

// ProjectConfig controls project directory resolution
type ProjectConfig struct {
	EnvVar string `koanf:"env_var"`
	Marker string `koanf:"marker"`
}

// RulesConfig locates the rule file
type RulesConfig struct {
	Path string `koanf:"path"`
}

// MatchConfig tunes intent pattern evaluation
type MatchConfig struct {
	RegexTimeout time.Duration `koanf:"regex_timeout"`
}

// LoggingConfig controls zerolog output
type LoggingConfig struct {
	Verbosity int  `koanf:"verbosity"`
	File      bool `koanf:"file"`
}

// Load builds the settings for a project. projectDir may be empty, in which
// case the project settings file is skipped. overrides uses dotted keys
// ("rules.path") and wins over every other layer.
func Load(projectDir string, overrides map[string]interface{}) (*Config, error) {
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}

	// 2. Project settings file
	var source string
	if projectDir != "" {
		path := filepath.Join(projectDir, filepath.FromSlash(ProjectConfigFile))
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, errors.Wrapf(err, errors.ErrConfigParse,
					"failed to load project settings from %s", path).WithDetail("path", path)
			}
			source = path
		}
	}

	// 3. Environment
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load env vars")
	}

	// 4. Flags
	if len(overrides) > 0 {
		if err := k.Load(confmap.Provider(overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load overrides")
		}
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal settings")
	}
	cfg.Source = source

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// envKey maps SKILLHOOK_MATCH_REGEX_TIMEOUT to match.regex_timeout.
// Only the first underscore separates section from key.
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.Replace(key, "_", ".", 1)
}

// Validate checks settings that would make every invocation fail
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Rules.Path) == "" {
		return errors.New(errors.ErrConfigParse, "rules.path must not be empty")
	}
	if filepath.IsAbs(c.Rules.Path) {
		return errors.Newf(errors.ErrConfigParse, "rules.path must be relative to the project: %s", c.Rules.Path)
	}
	if c.Match.RegexTimeout < 0 {
		return errors.Newf(errors.ErrConfigParse, "match.regex_timeout must not be negative: %s", c.Match.RegexTimeout)
	}
	return nil
}

// RulesPath returns the rule file location for a project
func (c *Config) RulesPath(projectDir string) string {
	return filepath.Join(projectDir, filepath.FromSlash(c.Rules.Path))
}

// MarshalTOML renders the effective settings as a TOML document
func (c *Config) MarshalTOML() ([]byte, error) {
	doc := map[string]interface{}{
		"project": map[string]interface{}{
			"env_var": c.Project.EnvVar,
			"marker":  c.Project.Marker,
		},
		"rules": map[string]interface{}{
			"path": c.Rules.Path,
		},
		"match": map[string]interface{}{
			"regex_timeout": c.Match.RegexTimeout.String(),
		},
		"logging": map[string]interface{}{
			"verbosity": c.Logging.Verbosity,
			"file":      c.Logging.File,
		},
	}
	return gotoml.Marshal(doc)
}
