// internal/platform/config/config.go
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"bucketx/internal/core/domain"
	"bucketx/internal/platform/errors"
	"bucketx/internal/platform/validator"
)

// Modos de presentación soportados.
const (
	UIModePTerm = "pterm"
	UIModeRaw   = "raw"
	UIModeQuiet = "quiet"
)

// EnvPrefix precede a todas las variables de entorno.
const EnvPrefix = "BUCKETX_"

type Config struct {
	Core   CoreConfig   `yaml:"core"`
	Probe  ProbeConfig  `yaml:"probe"`
	Output OutputConfig `yaml:"output"`
	UI     UIConfig     `yaml:"ui"`

	// File es el YAML de configuración usado, si hubo alguno
	File string `yaml:"-"`

	PrintVersion bool `yaml:"-"`
}

type CoreConfig struct {
	// Wordlist ruta de la lista; relativa al directorio del programa
	Wordlist string `yaml:"wordlist"`
	Workers  int    `yaml:"threads"`
	Dedupe   bool   `yaml:"dedupe"`
}

type ProbeConfig struct {
	Host      string        `yaml:"host"`
	Timeout   time.Duration `yaml:"timeout"`
	RateLimit float64       `yaml:"rate"`
	ProxyURL  string        `yaml:"proxy"`
	UserAgent string        `yaml:"user_agent"`
}

type OutputConfig struct {
	// Dir vacío significa el directorio del programa
	Dir   string `yaml:"dir"`
	XLSX  bool   `yaml:"xlsx"`
	JSONL bool   `yaml:"jsonl"`
	DB    string `yaml:"db"`
}

type UIConfig struct {
	Mode     string `yaml:"mode"`
	LogLevel string `yaml:"log_level"`
}

// DefaultConfig retorna una configuración por defecto.
func DefaultConfig() Config {
	return Config{
		Core: CoreConfig{
			Wordlist: "wordlist.txt",
			Workers:  5,
		},
		Probe: ProbeConfig{
			Host:      domain.DefaultStorageHost,
			Timeout:   5 * time.Second,
			UserAgent: "bucketx/1.0",
		},
		UI: UIConfig{
			Mode:     UIModePTerm,
			LogLevel: "warn",
		},
	}
}

// Load lee os.Args y resuelve help y version antes de retornar.
func Load(version, commit, date string) (Config, error) {
	cfg, err := Parse(os.Args[1:])
	if errors.Is(err, pflag.ErrHelp) {
		PrintHelp()
	}
	if err != nil {
		return cfg, err
	}
	if cfg.PrintVersion {
		PrintVersion(version, commit, date)
	}
	return cfg, nil
}

// Parse aplica, en orden de prioridad creciente: defaults, archivo YAML,
// variables de entorno y flags. Luego normaliza y valida.
func Parse(args []string) (Config, error) {
	flagged := DefaultConfig()
	fs := newFlagSet(&flagged)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return flagged, err
		}
		return flagged, errors.Wrap(errors.ErrConfiguration, err.Error())
	}
	if fs.NArg() > 0 {
		return flagged, errors.Wrapf(errors.ErrConfiguration, "unexpected arguments: %v", fs.Args())
	}

	cfg := DefaultConfig()
	cfg.PrintVersion = flagged.PrintVersion

	cfg.File = flagged.File
	if cfg.File == "" {
		cfg.File = getenv(EnvPrefix+"CONFIG", "")
	}
	if cfg.File != "" {
		if err := loadFromFile(&cfg, cfg.File); err != nil {
			return cfg, err
		}
	}

	loadFromEnv(&cfg)

	// Solo los flags presentes en la línea de comandos pisan lo anterior
	fs.Visit(func(f *pflag.Flag) {
		applyFlag(&cfg, &flagged, f.Name)
	})

	normalize(&cfg)

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func newFlagSet(cfg *Config) *pflag.FlagSet {
	fs := pflag.NewFlagSet("bucketx", pflag.ContinueOnError)
	fs.Usage = func() {}
	fs.SetOutput(discard{})

	fs.StringVarP(&cfg.Core.Wordlist, "wordlist", "w", cfg.Core.Wordlist, "Wordlist path")
	fs.IntVarP(&cfg.Core.Workers, "threads", "t", cfg.Core.Workers, "Concurrent workers")
	fs.BoolVar(&cfg.Core.Dedupe, "dedupe", cfg.Core.Dedupe, "Drop repeated candidates")

	fs.StringVar(&cfg.Probe.Host, "host", cfg.Probe.Host, "Storage host")
	fs.DurationVar(&cfg.Probe.Timeout, "timeout", cfg.Probe.Timeout, "Per-probe timeout")
	fs.Float64Var(&cfg.Probe.RateLimit, "rate", cfg.Probe.RateLimit, "Max requests per second (0 = unlimited)")
	fs.StringVarP(&cfg.Probe.ProxyURL, "proxy", "p", cfg.Probe.ProxyURL, "Proxy URL")
	fs.StringVar(&cfg.Probe.UserAgent, "user-agent", cfg.Probe.UserAgent, "User-Agent header")

	fs.StringVarP(&cfg.Output.Dir, "out", "o", cfg.Output.Dir, "Output directory")
	fs.BoolVar(&cfg.Output.XLSX, "xlsx", cfg.Output.XLSX, "Also write an XLSX report")
	fs.BoolVar(&cfg.Output.JSONL, "jsonl", cfg.Output.JSONL, "Also write NDJSON records")
	fs.StringVar(&cfg.Output.DB, "db", cfg.Output.DB, "SQLite results database")

	fs.StringVar(&cfg.UI.Mode, "ui", cfg.UI.Mode, "Console mode: pterm, raw or quiet")
	fs.StringVar(&cfg.UI.LogLevel, "log-level", cfg.UI.LogLevel, "Log level: debug, info, warn, error")

	fs.StringVarP(&cfg.File, "config", "c", cfg.File, "YAML config file")
	fs.BoolVarP(&cfg.PrintVersion, "version", "v", false, "Print version and exit")
	return fs
}

func applyFlag(cfg, flagged *Config, name string) {
	switch name {
	case "wordlist":
		cfg.Core.Wordlist = flagged.Core.Wordlist
	case "threads":
		cfg.Core.Workers = flagged.Core.Workers
	case "dedupe":
		cfg.Core.Dedupe = flagged.Core.Dedupe
	case "host":
		cfg.Probe.Host = flagged.Probe.Host
	case "timeout":
		cfg.Probe.Timeout = flagged.Probe.Timeout
	case "rate":
		cfg.Probe.RateLimit = flagged.Probe.RateLimit
	case "proxy":
		cfg.Probe.ProxyURL = flagged.Probe.ProxyURL
	case "user-agent":
		cfg.Probe.UserAgent = flagged.Probe.UserAgent
	case "out":
		cfg.Output.Dir = flagged.Output.Dir
	case "xlsx":
		cfg.Output.XLSX = flagged.Output.XLSX
	case "jsonl":
		cfg.Output.JSONL = flagged.Output.JSONL
	case "db":
		cfg.Output.DB = flagged.Output.DB
	case "ui":
		cfg.UI.Mode = flagged.UI.Mode
	case "log-level":
		cfg.UI.LogLevel = flagged.UI.LogLevel
	}
}

// loadFromFile mezcla el YAML sobre cfg; las claves ausentes no se tocan.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(errors.ErrConfiguration, "read config file %s: %v", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return errors.Wrapf(errors.ErrConfiguration, "parse config file %s: %v", path, err)
	}
	return nil
}

// loadFromEnv carga configuración desde variables de entorno.
func loadFromEnv(cfg *Config) {
	if v := getenv(EnvPrefix+"WORDLIST", ""); v != "" {
		cfg.Core.Wordlist = v
	}
	if v := getenv(EnvPrefix+"THREADS", ""); v != "" {
		cfg.Core.Workers = parseInt(v, cfg.Core.Workers)
	}
	if v := getenv(EnvPrefix+"DEDUPE", ""); v != "" {
		cfg.Core.Dedupe = parseBool(v)
	}
	if v := getenv(EnvPrefix+"HOST", ""); v != "" {
		cfg.Probe.Host = v
	}
	if v := getenv(EnvPrefix+"TIMEOUT", ""); v != "" {
		cfg.Probe.Timeout = parseDuration(v, cfg.Probe.Timeout)
	}
	if v := getenv(EnvPrefix+"RATE", ""); v != "" {
		cfg.Probe.RateLimit = parseFloat(v, cfg.Probe.RateLimit)
	}
	if v := getenv(EnvPrefix+"PROXY", ""); v != "" {
		cfg.Probe.ProxyURL = v
	}
	if v := getenv(EnvPrefix+"USER_AGENT", ""); v != "" {
		cfg.Probe.UserAgent = v
	}
	if v := getenv(EnvPrefix+"OUT", ""); v != "" {
		cfg.Output.Dir = v
	}
	if v := getenv(EnvPrefix+"XLSX", ""); v != "" {
		cfg.Output.XLSX = parseBool(v)
	}
	if v := getenv(EnvPrefix+"JSONL", ""); v != "" {
		cfg.Output.JSONL = parseBool(v)
	}
	if v := getenv(EnvPrefix+"DB", ""); v != "" {
		cfg.Output.DB = v
	}
	if v := getenv(EnvPrefix+"UI", ""); v != "" {
		cfg.UI.Mode = v
	}
	if v := getenv(EnvPrefix+"LOG_LEVEL", ""); v != "" {
		cfg.UI.LogLevel = v
	}
}

func normalize(c *Config) {
	c.Core.Wordlist = strings.TrimSpace(c.Core.Wordlist)
	if c.Core.Workers < 1 {
		c.Core.Workers = 1
	}
	c.Probe.Host = validator.NormalizeHost(c.Probe.Host)
	if c.Probe.Host == "" {
		c.Probe.Host = domain.DefaultStorageHost
	}
	if c.Probe.RateLimit < 0 {
		c.Probe.RateLimit = 0
	}
	c.Probe.ProxyURL = strings.TrimSpace(c.Probe.ProxyURL)
	c.Output.Dir = strings.TrimSpace(c.Output.Dir)
	c.Output.DB = strings.TrimSpace(c.Output.DB)
	c.UI.Mode = strings.ToLower(strings.TrimSpace(c.UI.Mode))
	if c.UI.Mode == "" {
		c.UI.Mode = UIModePTerm
	}
	c.UI.LogLevel = strings.ToLower(strings.TrimSpace(c.UI.LogLevel))
}

// Validate retorna ErrConfiguration con el primer problema encontrado.
func (c Config) Validate() error {
	if c.Core.Wordlist == "" {
		return errors.Wrap(errors.ErrConfiguration, "wordlist path is required")
	}
	if !validator.IsStorageHost(c.Probe.Host) {
		return errors.Wrapf(errors.ErrConfiguration, "invalid storage host %q", c.Probe.Host)
	}
	if c.Probe.Timeout <= 0 {
		return errors.Wrapf(errors.ErrConfiguration, "timeout must be positive, got %s", c.Probe.Timeout)
	}
	if c.Probe.ProxyURL != "" && !validator.IsProxyURL(c.Probe.ProxyURL) {
		return errors.Wrapf(errors.ErrConfiguration, "invalid proxy url %q", c.Probe.ProxyURL)
	}
	switch c.UI.Mode {
	case UIModePTerm, UIModeRaw, UIModeQuiet:
	default:
		return errors.Wrapf(errors.ErrConfiguration, "unknown ui mode %q", c.UI.Mode)
	}
	switch c.UI.LogLevel {
	case "", "debug", "info", "warn", "warning", "error":
	default:
		return errors.Wrapf(errors.ErrConfiguration, "unknown log level %q", c.UI.LogLevel)
	}
	return nil
}

// String resume la configuración efectiva para logs.
func (c Config) String() string {
	return fmt.Sprintf("wordlist=%s threads=%d host=%s timeout=%s rate=%.1f proxy=%t ui=%s",
		c.Core.Wordlist, c.Core.Workers, c.Probe.Host, c.Probe.Timeout, c.Probe.RateLimit,
		c.Probe.ProxyURL != "", c.UI.Mode)
}

// Helpers

type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }

func getenv(k, def string) string {
	if v, ok := os.LookupEnv(k); ok && v != "" {
		return v
	}
	return def
}

func parseBool(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "t", "true", "y", "yes", "on":
		return true
	default:
		return false
	}
}

func parseInt(v string, def int) int {
	i, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return def
	}
	return i
}

func parseFloat(v string, def float64) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return def
	}
	return f
}

// parseDuration acepta "5s" o un número de segundos.
func parseDuration(v string, def time.Duration) time.Duration {
	v = strings.TrimSpace(v)
	if d, err := time.ParseDuration(v); err == nil {
		return d
	}
	if s, err := strconv.Atoi(v); err == nil {
		return time.Duration(s) * time.Second
	}
	return def
}
