// Package config layers luagmpdoc settings from flags, environment variables
// and an optional YAML file.
package config

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/phobologic/luagmpdoc/internal/discover"
)

// EnvPrefix prefixes every environment variable, e.g. LUAGMPDOC_OUT.
const EnvPrefix = "LUAGMPDOC"

// DefaultMaxFileSize is the largest file scanned unless configured otherwise.
const DefaultMaxFileSize = 50 << 20

// Config holds the resolved settings for one run.
type Config struct {
	Project     string `mapstructure:"project"`
	Out         string `mapstructure:"out"`
	Templates   string `mapstructure:"templates"`
	Ext         string `mapstructure:"ext"`
	Verbose     bool   `mapstructure:"verbose"`
	Workers     int    `mapstructure:"workers"`
	Gitignore   bool   `mapstructure:"gitignore"`
	SyntaxAware bool   `mapstructure:"syntax_aware"`
	MaxFileSize int64  `mapstructure:"max_file_size"`
}

// Extensions returns the parsed extension filter. Nil means every file.
func (c *Config) Extensions() []string {
	return ParseExtensions(c.Ext)
}

// flagKeys maps flag names onto config keys.
var flagKeys = map[string]string{
	"project":       "project",
	"out":           "out",
	"templates":     "templates",
	"ext":           "ext",
	"verbose":       "verbose",
	"workers":       "workers",
	"gitignore":     "gitignore",
	"syntax-aware":  "syntax_aware",
	"max-file-size": "max_file_size",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("project", ".")
	v.SetDefault("out", "docs")
	v.SetDefault("templates", "")
	v.SetDefault("ext", "")
	v.SetDefault("verbose", false)
	v.SetDefault("workers", 0)
	v.SetDefault("gitignore", false)
	v.SetDefault("syntax_aware", false)
	v.SetDefault("max_file_size", DefaultMaxFileSize)
}

// Load resolves the configuration. Flags set on the command line win over
// environment variables, which win over the config file, which wins over the
// defaults. An empty configPath looks for luagmpdoc.yaml in the working
// directory and ignores it when absent.
func Load(flags *pflag.FlagSet, configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, errors.Wrapf(err, "binding flag %s", name)
				}
			}
		}
	}

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("luagmpdoc")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, errors.Wrap(err, "reading config file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "decoding config")
	}
	return &cfg, nil
}

// ParseExtensions parses a comma-separated extension list. An empty list
// selects the defaults and "*" selects every file (nil). Entries are
// lower-cased and given a leading dot.
func ParseExtensions(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return append([]string(nil), discover.DefaultExtensions...)
	}
	if raw == "*" {
		return nil
	}
	var exts []string
	for _, part := range strings.Split(raw, ",") {
		part = strings.ToLower(strings.TrimSpace(part))
		if part == "" {
			continue
		}
		if !strings.HasPrefix(part, ".") {
			part = "." + part
		}
		exts = append(exts, part)
	}
	if len(exts) == 0 {
		return append([]string(nil), discover.DefaultExtensions...)
	}
	return exts
}
