package cfg

import (
	"os"
	"strings"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"github.com/rpaste-cli/rpaste/pasteerr"
	"github.com/rpaste-cli/rpaste/printer"
)

// Config can be set in 3 ways, later ones overriding earlier ones:
//
//  1. Via a TOML file, by default ~/.rustypaste/config.toml:
//
//     ```toml
//     [server]
//     address = "https://paste.example.com"
//     auth_token_file = "~/.rustypaste/token"
//
//     [paste]
//     oneshot = false
//     expire = "1h"
//
//     [style]
//     prettify = true
//     ```
//
//  2. Via environment variables `RPASTE_SERVER_ADDRESS`,
//     `RPASTE_SERVER_AUTH_TOKEN` and `RPASTE_SERVER_DELETE_TOKEN`.
//
//  3. Via command line flags, see Overrides.
type Config struct {
	Server ServerConfig `mapstructure:"server"`
	Paste  PasteConfig  `mapstructure:"paste"`
	Style  StyleConfig  `mapstructure:"style"`
}

type ServerConfig struct {
	// Base URL of the rustypaste server.
	Address string `mapstructure:"address"`

	// Sent verbatim as the Authorization header of uploads and queries.
	AuthToken string `mapstructure:"auth_token"`

	// Sent verbatim as the Authorization header of deletes.
	DeleteToken string `mapstructure:"delete_token"`

	// Files holding the tokens above. Read once at load time.
	AuthTokenFile   string `mapstructure:"auth_token_file"`
	DeleteTokenFile string `mapstructure:"delete_token_file"`
}

type PasteConfig struct {
	// If set, uploads disappear after being viewed once.
	Oneshot bool `mapstructure:"oneshot"`

	// Expiration time for uploads, e.g. "10min".
	Expire string `mapstructure:"expire"`

	// Overrides the file name inferred by the server. Only settable from the
	// command line.
	Filename string `mapstructure:"-"`
}

type StyleConfig struct {
	Prettify bool `mapstructure:"prettify"`
}

// Load reads the config file at path, or the first one found in the default
// locations when path is empty. A missing default file yields an empty
// Config.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("toml")

	v.SetEnvPrefix("rpaste")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	for _, key := range []string{"server.address", "server.auth_token", "server.delete_token"} {
		v.BindEnv(key)
	}

	if file := findConfigFile(path); file != "" {
		expanded, err := homedir.Expand(file)
		if err != nil {
			return nil, pasteerr.Wrap(pasteerr.IO, errors.Wrapf(err, "failed to expand %s", file))
		}
		printer.Debugf("Loading config from %s\n", expanded)

		v.SetConfigFile(expanded)
		if err := v.ReadInConfig(); err != nil {
			var parseErr viper.ConfigParseError
			if errors.As(err, &parseErr) {
				return nil, pasteerr.Wrap(pasteerr.TOML, err)
			}
			return nil, pasteerr.Wrap(pasteerr.IO, errors.Wrapf(err, "failed to read %s", expanded))
		}
	}

	c := &Config{}
	if err := v.Unmarshal(c); err != nil {
		return nil, pasteerr.Wrap(pasteerr.TOML, err)
	}
	c.Paste.Filename = ""
	if err := c.readTokenFiles(); err != nil {
		return nil, err
	}
	return c, nil
}

// Token files take precedence over inline tokens.
func (c *Config) readTokenFiles() error {
	if c.Server.AuthTokenFile != "" {
		token, err := readTokenFile(c.Server.AuthTokenFile)
		if err != nil {
			return err
		}
		c.Server.AuthToken = token
	}
	if c.Server.DeleteTokenFile != "" {
		token, err := readTokenFile(c.Server.DeleteTokenFile)
		if err != nil {
			return err
		}
		c.Server.DeleteToken = token
	}
	return nil
}

func readTokenFile(path string) (string, error) {
	expanded, err := homedir.Expand(path)
	if err != nil {
		return "", pasteerr.Wrap(pasteerr.IO, errors.Wrapf(err, "failed to expand %s", path))
	}
	content, err := os.ReadFile(expanded)
	if err != nil {
		return "", pasteerr.Wrap(pasteerr.IO, errors.Wrapf(err, "failed to read token file %s", expanded))
	}
	return strings.TrimSpace(string(content)), nil
}

// Values from the command line. Zero values leave the config untouched.
type Overrides struct {
	Server   string
	Auth     string
	Oneshot  bool
	Expire   string
	Filename string
	Prettify bool

	// Set when the invocation deletes files. The auth value then also becomes
	// the delete token, so that a single --auth flag authorizes the delete.
	Delete bool
}

func (c *Config) Apply(o Overrides) {
	if o.Server != "" {
		c.Server.Address = o.Server
	}
	if o.Auth != "" {
		c.Server.AuthToken = o.Auth
		if o.Delete {
			c.Server.DeleteToken = o.Auth
		}
	}
	if o.Oneshot {
		c.Paste.Oneshot = true
	}
	if o.Expire != "" {
		c.Paste.Expire = o.Expire
	}
	if o.Filename != "" {
		c.Paste.Filename = o.Filename
	}
	if o.Prettify {
		c.Style.Prettify = true
	}
}
