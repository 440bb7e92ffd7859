package configs

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/n0rdy/palindromes/logging"
	"github.com/n0rdy/palindromes/types/loglevels"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of the environment variables that override the configuration,
// following the PALINDROMES_<SECTION>_<OPTION> pattern, e.g. PALINDROMES_SEARCH_MODE.
const EnvPrefix = "PALINDROMES"

const (
	SearchModeSequential = "sequential"
	SearchModeParallel   = "parallel"
	SearchModePipeline   = "pipeline"
)

const (
	LogFormatConsole = "console"
	LogFormatJSON    = "json"
	LogFormatNone    = "none"
)

const (
	DefaultPort          = 3000
	DefaultMaxConcurrent = 8
)

var ErrInvalidConfig = errors.New("invalid configuration")

// AppConfig is the configuration of the CLI and the adapters.
type AppConfig struct {
	Server ServerConfig `mapstructure:"server"`
	Search SearchConfig `mapstructure:"search"`
	Log    LogConfig    `mapstructure:"log"`
}

// ServerConfig configures the HTTP adapter.
//
// [ServerConfig.MaxConcurrent] bounds the number of searches that run at the same time,
// requests above the limit wait for a free slot.
type ServerConfig struct {
	Port          int `mapstructure:"port"`
	MaxConcurrent int `mapstructure:"max_concurrent"`
}

// SearchConfig selects and tunes the search strategy.
//
// [SearchConfig.Mode] is one of "sequential", "parallel" or "pipeline".
// [SearchConfig.Workers] is the number of goroutines for the parallel and the pipeline modes,
// 0 means one per CPU.
// [SearchConfig.Timeout] limits a single search, 0 or less means no timeout.
type SearchConfig struct {
	Mode    string        `mapstructure:"mode"`
	Workers int           `mapstructure:"workers"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// LogConfig configures the application logger.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// NewViper creates a viper instance with the defaults and the environment bindings of [AppConfig].
// The port can also be provided the way the serverless custom handlers receive it: via FUNCTIONS_CUSTOMHANDLER_PORT.
func NewViper() *viper.Viper {
	v := viper.New()
	SetDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// explicit bindings win over AutomaticEnv, so the prefixed variable has to be listed as well
	_ = v.BindEnv("server.port", EnvPrefix+"_SERVER_PORT", "FUNCTIONS_CUSTOMHANDLER_PORT")

	return v
}

func SetDefaults(v *viper.Viper) {
	v.SetDefault("server.port", DefaultPort)
	v.SetDefault("server.max_concurrent", DefaultMaxConcurrent)
	v.SetDefault("search.mode", SearchModeSequential)
	v.SetDefault("search.workers", 0)
	v.SetDefault("search.timeout", time.Duration(0))
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", LogFormatConsole)
}

// Load reads the configuration from v and validates it.
func Load(v *viper.Viper) (*AppConfig, error) {
	var conf AppConfig
	if err := v.Unmarshal(&conf); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	conf.Search.Mode = strings.ToLower(strings.TrimSpace(conf.Search.Mode))
	conf.Log.Format = strings.ToLower(strings.TrimSpace(conf.Log.Format))
	if conf.Search.Mode == "" {
		conf.Search.Mode = SearchModeSequential
	}
	if conf.Log.Format == "" {
		conf.Log.Format = LogFormatConsole
	}

	if err := conf.Validate(); err != nil {
		return nil, err
	}
	return &conf, nil
}

func (c *AppConfig) Validate() error {
	var errs []error

	if c.Server.Port < 1 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port must be between 1 and 65535, got %d", c.Server.Port))
	}
	if c.Server.MaxConcurrent < 0 {
		errs = append(errs, fmt.Errorf("server.max_concurrent must not be negative, got %d", c.Server.MaxConcurrent))
	}
	if err := c.Search.Validate(); err != nil {
		errs = append(errs, err)
	}
	if _, err := loglevels.Parse(c.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("log.level: %w", err))
	}
	switch c.Log.Format {
	case LogFormatConsole, LogFormatJSON, LogFormatNone:
	default:
		errs = append(errs, fmt.Errorf("log.format must be one of console, json, none, got %q", c.Log.Format))
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
	}
	return nil
}

func (c SearchConfig) Validate() error {
	switch c.Mode {
	case SearchModeSequential, SearchModeParallel, SearchModePipeline:
	default:
		return fmt.Errorf("search.mode must be one of sequential, parallel, pipeline, got %q", c.Mode)
	}
	if c.Workers < 0 {
		return fmt.Errorf("search.workers must not be negative, got %d", c.Workers)
	}
	if c.Timeout < 0 {
		return fmt.Errorf("search.timeout must not be negative, got %s", c.Timeout)
	}
	return nil
}

// NewLogger builds the logger described by the config.
// The console format writes to out, the json format uses the zap production encoder on stderr.
func (c LogConfig) NewLogger(out io.Writer) (logging.Logger, error) {
	level, err := loglevels.Parse(c.Level)
	if err != nil {
		return nil, err
	}

	switch c.Format {
	case LogFormatNone:
		return logging.NewNoOpsLogger(), nil
	case LogFormatJSON:
		return logging.NewZapLogger(level, false)
	case LogFormatConsole, "":
		return logging.NewConsoleLoggerTo(out, level), nil
	default:
		return nil, fmt.Errorf("%w: unknown log format %q", ErrInvalidConfig, c.Format)
	}
}
