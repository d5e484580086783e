// Package config resolves the runtime configuration from flags, environment,
// an optional config file and the local token file.
//
// Precedence, highest first: flags, environment (GH_API_TOKEN and PR_REMINDER_*),
// config file, defaults. A .env file in the working directory is loaded into the
// environment without overriding variables that are already set.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	// TokenEnvVar holds the API access token.
	TokenEnvVar = "GH_API_TOKEN"
	// TokenFileName is the token file looked up next to the executable.
	TokenFileName = "api_token"

	envPrefix = "PR_REMINDER"
)

// Config is the resolved runtime configuration.
type Config struct {
	Token            string
	APIURL           string
	Concurrency      int
	MaxPages         int
	MaxSecondaryWait time.Duration
	Verbose          bool
}

// RegisterFlags declares the configuration flags on the given flag set.
func RegisterFlags(flags *pflag.FlagSet) {
	flags.String("token-file", "", "File holding the API token (default: api_token next to the executable)")
	flags.String("api-url", "", "Base URL of the API, e.g. for GitHub Enterprise")
	flags.Int("concurrency", 1, "Number of repositories whose pull requests are fetched in parallel")
	flags.Int("max-pages", 1000, "Upper bound on repository pages fetched per organization")
	flags.Duration("max-secondary-wait", 0, "Longest single wait on a secondary rate limit (0 disables waiting)")
	flags.String("config", "", "Optional configuration file (yaml, json or toml)")
}

// Load builds the configuration. flags may be nil.
func Load(flags *pflag.FlagSet) (*Config, error) {
	_ = godotenv.Load(".env")

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	if err := v.BindEnv(KeyAPIToken, TokenEnvVar); err != nil {
		return nil, fmt.Errorf("failed to bind %s: %w", TokenEnvVar, err)
	}
	setDefaults(v)

	if flags != nil {
		if err := bindFlags(v, flags); err != nil {
			return nil, err
		}
	}

	if path := v.GetString(KeyConfigFile); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	token, err := ResolveToken(v.GetString(KeyAPIToken), v.GetString(KeyTokenFile))
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Token:            token,
		APIURL:           strings.TrimSpace(v.GetString(KeyAPIURL)),
		Concurrency:      v.GetInt(KeyConcurrency),
		MaxPages:         v.GetInt(KeyMaxPages),
		MaxSecondaryWait: v.GetDuration(KeyMaxSecondaryWait),
		Verbose:          v.GetBool(KeyVerbose),
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(KeyTokenFile, DefaultTokenFile())
	v.SetDefault(KeyConcurrency, 1)
	v.SetDefault(KeyMaxPages, 1000)
	v.SetDefault(KeyMaxSecondaryWait, time.Duration(0))
}

func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	for name, key := range flagKeys {
		flag := flags.Lookup(name)
		if flag == nil {
			continue
		}
		if err := v.BindPFlag(key, flag); err != nil {
			return fmt.Errorf("failed to bind flag %s: %w", name, err)
		}
	}
	return nil
}

func (c *Config) validate() error {
	if c.Concurrency < 1 {
		return fmt.Errorf("concurrency must be at least 1, got %d", c.Concurrency)
	}
	if c.MaxPages < 1 {
		return fmt.Errorf("max pages must be at least 1, got %d", c.MaxPages)
	}
	if c.MaxSecondaryWait < 0 {
		return fmt.Errorf("max secondary wait must not be negative, got %s", c.MaxSecondaryWait)
	}
	return nil
}

// DefaultTokenFile returns the path of the token file next to the running executable.
func DefaultTokenFile() string {
	exe, err := os.Executable()
	if err != nil {
		return TokenFileName
	}
	return filepath.Join(filepath.Dir(exe), TokenFileName)
}

// ResolveToken returns envToken when set, otherwise the content of tokenFile with
// the trailing newline removed. A missing file yields an empty token, which means
// requests are sent unauthenticated.
func ResolveToken(envToken, tokenFile string) (string, error) {
	if envToken != "" {
		return envToken, nil
	}
	if tokenFile == "" {
		return "", nil
	}
	data, err := os.ReadFile(tokenFile)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("failed to read token file %s: %w", tokenFile, err)
	}
	return strings.TrimRight(string(data), "\r\n"), nil
}
