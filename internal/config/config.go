package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix namespaces every environment variable, e.g. STUMPED_REDIS_ADDR
const EnvPrefix = "STUMPED"

const (
	DefaultHTTPAddr        = ":8080"
	DefaultRedisAddr       = "localhost:6379"
	DefaultIdleTimeout     = 45 * time.Second
	DefaultLockTTL         = 5 * time.Second
	DefaultLockWait        = 2 * time.Second
	DefaultRateLimit       = 5.0
	DefaultRateBurst       = 10
	DefaultShutdownTimeout = 10 * time.Second
	DefaultLogLevel        = "info"
)

var (
	ErrEmptyHTTPAddr  = errors.New("http address cannot be empty")
	ErrEmptyRedisAddr = errors.New("redis address cannot be empty")
)

// Config is everything the server process reads from flags and environment
type Config struct {
	HTTPAddr string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// PostgresURL enables the results archive when set
	PostgresURL string

	// DiscordToken enables the Discord bot when set
	DiscordToken   string
	DiscordAppID   string
	DiscordGuildID string

	IdleTimeout time.Duration
	LockTTL     time.Duration
	LockWait    time.Duration

	AllowedOrigins []string
	PublicURL      string
	RateLimit      float64
	RateBurst      int

	ShutdownTimeout time.Duration

	LogLevel  string
	LogPretty bool
}

// RegisterFlags binds every setting to a flag on fs with its default
func (c *Config) RegisterFlags(fs *pflag.FlagSet) {
	fs.SetNormalizeFunc(func(_ *pflag.FlagSet, name string) pflag.NormalizedName {
		return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
	})

	fs.StringVar(&c.HTTPAddr, "http-addr", DefaultHTTPAddr, "address the HTTP API listens on (env: STUMPED_HTTP_ADDR)")

	fs.StringVar(&c.RedisAddr, "redis-addr", DefaultRedisAddr, "redis host:port (env: STUMPED_REDIS_ADDR)")
	fs.StringVar(&c.RedisPassword, "redis-password", "", "redis password (env: STUMPED_REDIS_PASSWORD)")
	fs.IntVar(&c.RedisDB, "redis-db", 0, "redis database number (env: STUMPED_REDIS_DB)")

	fs.StringVar(&c.PostgresURL, "postgres-url", "", "postgres connection string; enables the results archive (env: STUMPED_POSTGRES_URL)")

	fs.StringVar(&c.DiscordToken, "discord-token", "", "discord bot token; enables the bot (env: STUMPED_DISCORD_TOKEN)")
	fs.StringVar(&c.DiscordAppID, "discord-app-id", "", "discord application id (env: STUMPED_DISCORD_APP_ID)")
	fs.StringVar(&c.DiscordGuildID, "discord-guild-id", "", "register commands in one guild only (env: STUMPED_DISCORD_GUILD_ID)")

	fs.DurationVar(&c.IdleTimeout, "idle-timeout", DefaultIdleTimeout, "silence before a player is removed mid-round (env: STUMPED_IDLE_TIMEOUT)")
	fs.DurationVar(&c.LockTTL, "lock-ttl", DefaultLockTTL, "lifetime of a room lock held by a crashed process (env: STUMPED_LOCK_TTL)")
	fs.DurationVar(&c.LockWait, "lock-wait", DefaultLockWait, "how long an action waits for a busy room (env: STUMPED_LOCK_WAIT)")

	fs.StringSliceVar(&c.AllowedOrigins, "allowed-origins", nil, "browser origins allowed by CORS and websockets; empty allows all (env: STUMPED_ALLOWED_ORIGINS)")
	fs.StringVar(&c.PublicURL, "public-url", "", "base URL encoded in join QR codes (env: STUMPED_PUBLIC_URL)")
	fs.Float64Var(&c.RateLimit, "rate-limit", DefaultRateLimit, "sustained actions per second per session (env: STUMPED_RATE_LIMIT)")
	fs.IntVar(&c.RateBurst, "rate-burst", DefaultRateBurst, "action burst per session (env: STUMPED_RATE_BURST)")

	fs.DurationVar(&c.ShutdownTimeout, "shutdown-timeout", DefaultShutdownTimeout, "grace period for in-flight requests on exit (env: STUMPED_SHUTDOWN_TIMEOUT)")

	fs.StringVar(&c.LogLevel, "log-level", DefaultLogLevel, "debug, info, warn or error (env: STUMPED_LOG_LEVEL)")
	fs.BoolVar(&c.LogPretty, "log-pretty", false, "human readable logs (env: STUMPED_LOG_PRETTY)")
}

// ApplyEnv fills every flag the command line left unset from its
// STUMPED_* environment variable
func ApplyEnv(fs *pflag.FlagSet) error {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	var errs []error
	fs.VisitAll(func(f *pflag.Flag) {
		if err := v.BindPFlag(f.Name, f); err != nil {
			errs = append(errs, err)
			return
		}
		if err := v.BindEnv(f.Name); err != nil {
			errs = append(errs, err)
			return
		}
		if !f.Changed && v.IsSet(f.Name) {
			if err := fs.Set(f.Name, fmt.Sprintf("%v", v.Get(f.Name))); err != nil {
				errs = append(errs, fmt.Errorf("invalid value for %s: %w", f.Name, err))
			}
		}
	})

	return errors.Join(errs...)
}

// Validate checks the settings are usable together
func (c *Config) Validate() error {
	if c.HTTPAddr == "" {
		return ErrEmptyHTTPAddr
	}

	if c.RedisAddr == "" {
		return ErrEmptyRedisAddr
	}

	if c.RedisDB < 0 {
		return fmt.Errorf("invalid redis db: %d", c.RedisDB)
	}

	for name, d := range map[string]time.Duration{
		"idle-timeout":     c.IdleTimeout,
		"lock-ttl":         c.LockTTL,
		"lock-wait":        c.LockWait,
		"shutdown-timeout": c.ShutdownTimeout,
	} {
		if d <= 0 {
			return fmt.Errorf("%s must be positive, got %s", name, d)
		}
	}

	if c.LockWait > c.LockTTL {
		return fmt.Errorf("lock-wait (%s) cannot exceed lock-ttl (%s)", c.LockWait, c.LockTTL)
	}

	if c.RateLimit <= 0 || c.RateBurst < 1 {
		return fmt.Errorf("rate limit must be positive with a burst of at least 1")
	}

	if c.PublicURL != "" {
		u, err := url.Parse(c.PublicURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("invalid public url: %q", c.PublicURL)
		}
	}

	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level: %q", c.LogLevel)
	}

	return nil
}

// ArchiveEnabled reports whether results are stored in Postgres
func (c *Config) ArchiveEnabled() bool {
	return c.PostgresURL != ""
}

// DiscordEnabled reports whether the Discord bot runs
func (c *Config) DiscordEnabled() bool {
	return c.DiscordToken != ""
}
