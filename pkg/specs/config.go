/*
Copyright © 2025 AppOptics
See AUTHORS and LICENSE for the license details and contributors.
*/
package specs

import (
	rg "github.com/geaaru/rest-guard/pkg/specs"
	v "github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const (
	AOPDEVKIT_CONFIGNAME = "appoptics-devkit"
	AOPDEVKIT_ENV_PREFIX = "APPOPTICS"
	AOPDEVKIT_VERSION    = `0.1.0`
)

type AopDevkitConfig struct {
	Viper *v.Viper `yaml:"-" json:"-"`

	General  AopDevkitGeneral    `mapstructure:"general" json:"general,omitempty" yaml:"general,omitempty"`
	Logging  AopDevkitLogging    `mapstructure:"logging" json:"logging,omitempty" yaml:"logging,omitempty"`
	Api      AopDevkitApi        `mapstructure:"api" json:"api,omitempty" yaml:"api,omitempty"`
	RgConfig *rg.RestGuardConfig `mapstructure:"rest" json:"rest,omitempty" yaml:"rest,omitempty"`
}

type AopDevkitGeneral struct {
	Debug bool `mapstructure:"debug,omitempty" json:"debug,omitempty" yaml:"debug,omitempty"`
}

type AopDevkitLogging struct {
	// Path of the logfile
	Path string `mapstructure:"path,omitempty" json:"path,omitempty" yaml:"path,omitempty"`
	// Enable/Disable logging to file
	EnableLogFile bool `mapstructure:"enable_logfile,omitempty" json:"enable_logfile,omitempty" yaml:"enable_logfile,omitempty"`
	// Enable JSON format logging in file
	JsonFormat bool `mapstructure:"json_format,omitempty" json:"json_format,omitempty" yaml:"json_format,omitempty"`

	// Log level
	Level string `mapstructure:"level,omitempty" json:"level,omitempty" yaml:"level,omitempty"`

	// Enable emoji
	EnableEmoji bool `mapstructure:"enable_emoji,omitempty" json:"enable_emoji,omitempty" yaml:"enable_emoji,omitempty"`
	// Enable/Disable color in logging
	Color bool `mapstructure:"color,omitempty" json:"color,omitempty" yaml:"color,omitempty"`
}

type AopDevkitApi struct {
	// API token used as basic auth username
	Token string `mapstructure:"token,omitempty" json:"token,omitempty" yaml:"token,omitempty"`

	Hostname string `mapstructure:"hostname,omitempty" json:"hostname,omitempty" yaml:"hostname,omitempty"`
	BasePath string `mapstructure:"base_path,omitempty" json:"base_path,omitempty" yaml:"base_path,omitempty"`
	Protocol string `mapstructure:"protocol,omitempty" json:"protocol,omitempty" yaml:"protocol,omitempty"`

	// Custom User-Agent. When empty the devkit agent is used.
	UserAgent string `mapstructure:"user_agent,omitempty" json:"user_agent,omitempty" yaml:"user_agent,omitempty"`

	// Retries on server errors
	Retries         int `mapstructure:"retries,omitempty" json:"retries,omitempty" yaml:"retries,omitempty"`
	RetryIntervalMs int `mapstructure:"retry_interval_ms,omitempty" json:"retry_interval_ms,omitempty" yaml:"retry_interval_ms,omitempty"`

	// Enable the metric names sanitizer
	SanitizeNames bool `mapstructure:"sanitize_names,omitempty" json:"sanitize_names,omitempty" yaml:"sanitize_names,omitempty"`

	// Top-level tag set applied to all posted measurements
	Tags map[string]string `mapstructure:"tags,omitempty" json:"tags,omitempty" yaml:"tags,omitempty"`
}

func NewAopDevkitConfig(viper *v.Viper) *AopDevkitConfig {
	if viper == nil {
		viper = v.New()
	}

	GenDefault(viper)
	return &AopDevkitConfig{Viper: viper}
}

func (c *AopDevkitConfig) GetGeneral() *AopDevkitGeneral {
	return &c.General
}

func (c *AopDevkitConfig) GetLogging() *AopDevkitLogging {
	return &c.Logging
}

func (c *AopDevkitConfig) GetApi() *AopDevkitApi {
	return &c.Api
}

func (c *AopDevkitConfig) GetRest() *rg.RestGuardConfig {
	if c.RgConfig == nil {
		c.RgConfig = rg.NewConfig()
	}
	return c.RgConfig
}

func (c *AopDevkitConfig) Unmarshal() error {
	var err error

	err = c.Viper.ReadInConfig()
	if err != nil {
		if _, ok := err.(v.ConfigFileNotFoundError); !ok {
			return err
		}
		// else: Config file not found; ignore error
	}

	err = c.Viper.Unmarshal(&c)

	return err
}

func (c *AopDevkitConfig) Yaml() ([]byte, error) {
	return yaml.Marshal(c)
}

func GenDefault(viper *v.Viper) {
	viper.SetDefault("general.debug", false)

	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.enable_logfile", false)
	viper.SetDefault("logging.path", "/var/log/appoptics/appoptics-devkit.log")
	viper.SetDefault("logging.json_format", false)
	viper.SetDefault("logging.enable_emoji", true)
	viper.SetDefault("logging.color", true)

	viper.SetDefault("api.token", "")
	viper.SetDefault("api.hostname", "api.appoptics.com")
	viper.SetDefault("api.base_path", "/v1/")
	viper.SetDefault("api.protocol", "https")
	viper.SetDefault("api.retries", 3)
	viper.SetDefault("api.retry_interval_ms", 1000)
	viper.SetDefault("api.sanitize_names", false)

	viper.SetDefault("rest.reqs_timeout", 10)
	viper.SetDefault("rest.user_agent", "")
}

func (g *AopDevkitGeneral) HasDebug() bool {
	return g.Debug
}
