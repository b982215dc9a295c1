package config

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultConfigPath is used when --config is not provided.
	DefaultConfigPath = "config.yml"
	defaultPort       = 3180
	defaultEnv        = "development"

	defaultDBHost     = "127.0.0.1"
	defaultDBPort     = 3306
	defaultDBUser     = "root"
	defaultDBPassword = "password"
	defaultDBName     = "revpilot"
	defaultDBCharset  = "utf8mb4"
	defaultDBLoc      = "Local"

	defaultRedisHost = "localhost"
	defaultRedisPort = 6379
	defaultRedisDB   = 0
)

// AppConfig holds runtime startup configuration loaded from YAML.
type AppConfig struct {
	Port           int                   `yaml:"port"`
	DSN            string                `yaml:"dsn"` // MySQL DSN
	RedisURL       string                `yaml:"redis_url"`
	Database       DatabaseRuntimeConfig `yaml:"database"`
	Redis          RedisRuntimeConfig    `yaml:"redis"`
	Env            string                `yaml:"env"` // "development" | "production"
	Paths          RuntimePathsConfig    `yaml:"paths"`
	AllowedOrigins []string              `yaml:"allowed_origins"`
	JWTSecret      string                `yaml:"jwt_secret"`
	Timezone       string                `yaml:"timezone"`
	Backup         BackupRuntimeConfig   `yaml:"backup"`
}

type DatabaseRuntimeConfig struct {
	DSN       string            `yaml:"dsn"`
	URL       string            `yaml:"url"`
	Host      string            `yaml:"host"`
	Port      int               `yaml:"port"`
	User      string            `yaml:"user"`
	Username  string            `yaml:"username"`
	Password  string            `yaml:"password"`
	Name      string            `yaml:"name"`
	DBName    string            `yaml:"db_name"`
	Charset   string            `yaml:"charset"`
	ParseTime bool              `yaml:"parse_time"`
	Loc       string            `yaml:"loc"`
	Params    map[string]string `yaml:"params"`
}

type RedisRuntimeConfig struct {
	URL      string            `yaml:"url"`
	Host     string            `yaml:"host"`
	Port     int               `yaml:"port"`
	Username string            `yaml:"username"`
	Password string            `yaml:"password"`
	DB       int               `yaml:"db"`
	TLS      bool              `yaml:"tls"`
	Scheme   string            `yaml:"scheme"`
	Params   map[string]string `yaml:"params"`
}

type RuntimePathsConfig struct {
	Logs    string `yaml:"logs"`
	Backups string `yaml:"backups"`
}

// BackupRuntimeConfig controls the nightly table dump and optional S3 upload.
type BackupRuntimeConfig struct {
	Enable          bool   `yaml:"enable"`
	S3Enable        bool   `yaml:"s3_enable"`
	S3Endpoint      string `yaml:"s3_endpoint"`
	S3Region        string `yaml:"s3_region"`
	S3Bucket        string `yaml:"s3_bucket"`
	S3AccessKeyID   string `yaml:"s3_access_key_id"`
	S3SecretKey     string `yaml:"s3_secret_key"`
	S3Prefix        string `yaml:"s3_prefix"`
	S3UsePathStyle  bool   `yaml:"s3_use_path_style"`
	KeepLocalCopies int    `yaml:"keep_local_copies"`
}

// The raw structs accept the accepted-but-deprecated aliases (database_url,
// log_dir, tz, ...) that the exported config no longer carries. Pointer
// fields distinguish "absent" from a zero value.
type rawAppConfig struct {
	Port               int                 `yaml:"port"`
	DSN                string              `yaml:"dsn"`
	DatabaseURL        string              `yaml:"database_url"`
	RedisURL           string              `yaml:"redis_url"`
	Database           rawDatabaseConfig   `yaml:"database"`
	Redis              rawRedisConfig      `yaml:"redis"`
	Env                string              `yaml:"env"`
	Paths              rawPathsConfig      `yaml:"paths"`
	LogDir             string              `yaml:"log_dir"`
	BackupDir          string              `yaml:"backup_dir"`
	AllowedOrigins     []string            `yaml:"allowed_origins"`
	CORSAllowedOrigins []string            `yaml:"cors_allowed_origins"`
	JWTSecret          string              `yaml:"jwt_secret"`
	Timezone           string              `yaml:"timezone"`
	TZ                 string              `yaml:"tz"`
	Backup             BackupRuntimeConfig `yaml:"backup"`
}

type rawDatabaseConfig struct {
	DSN       string            `yaml:"dsn"`
	URL       string            `yaml:"url"`
	Host      string            `yaml:"host"`
	Port      int               `yaml:"port"`
	User      string            `yaml:"user"`
	Username  string            `yaml:"username"`
	Password  string            `yaml:"password"`
	Name      string            `yaml:"name"`
	DBName    string            `yaml:"db_name"`
	Charset   string            `yaml:"charset"`
	ParseTime *bool             `yaml:"parse_time"`
	Loc       string            `yaml:"loc"`
	Params    map[string]string `yaml:"params"`
}

type rawRedisConfig struct {
	URL      string            `yaml:"url"`
	Host     string            `yaml:"host"`
	Port     int               `yaml:"port"`
	Username string            `yaml:"username"`
	Password string            `yaml:"password"`
	DB       *int              `yaml:"db"`
	TLS      *bool             `yaml:"tls"`
	Scheme   string            `yaml:"scheme"`
	Params   map[string]string `yaml:"params"`
}

type rawPathsConfig struct {
	Logs    string `yaml:"logs"`
	Backups string `yaml:"backups"`
}

// setStr assigns each non-empty candidate in order, so the last alias listed
// wins over the earlier ones.
func setStr(dst *string, candidates ...string) {
	for _, v := range candidates {
		if s := strings.TrimSpace(v); s != "" {
			*dst = s
		}
	}
}

func setInt(dst *int, v int) {
	if v != 0 {
		*dst = v
	}
}

// Load reads and validates the YAML config at configPath. Unknown keys are
// rejected so typos fail loudly at startup.
func Load(configPath string) (*AppConfig, error) {
	path := strings.TrimSpace(configPath)
	if path == "" {
		path = DefaultConfigPath
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file %q: %w", path, err)
	}

	decoder := yaml.NewDecoder(bytes.NewReader(content))
	decoder.KnownFields(true)
	raw := rawAppConfig{}
	if err := decoder.Decode(&raw); err != nil {
		return nil, fmt.Errorf("parse config file %q: %w", path, err)
	}

	cfg := defaultAppConfig()
	applyRawAppConfig(&cfg, raw)

	for _, check := range []struct {
		name string
		port int
	}{
		{"port", cfg.Port},
		{"database.port", cfg.Database.Port},
		{"redis.port", cfg.Redis.Port},
	} {
		if check.port < 1 || check.port > 65535 {
			return nil, fmt.Errorf("invalid %s %d in %q, expected 1-65535", check.name, check.port, path)
		}
	}
	if cfg.Redis.DB < 0 {
		return nil, fmt.Errorf("invalid redis.db %d in %q, expected >= 0", cfg.Redis.DB, path)
	}
	return &cfg, nil
}

func defaultAppConfig() AppConfig {
	cfg := AppConfig{
		Port:     defaultPort,
		Env:      defaultEnv,
		Database: normalizeDatabaseConfig(DatabaseRuntimeConfig{ParseTime: true}),
		Redis:    normalizeRedisConfig(RedisRuntimeConfig{}),
	}
	cfg.DSN = cfg.Database.DSNValue()
	cfg.RedisURL = cfg.Redis.URLValue()
	return cfg
}

func applyRawAppConfig(cfg *AppConfig, raw rawAppConfig) {
	setInt(&cfg.Port, raw.Port)
	cfg.Database = applyRawDatabaseConfig(cfg.Database, raw)
	cfg.Redis = applyRawRedisConfig(cfg.Redis, raw)

	setStr(&cfg.Env, raw.Env)
	setStr(&cfg.Paths.Logs, raw.Paths.Logs, raw.LogDir)
	setStr(&cfg.Paths.Backups, raw.Paths.Backups, raw.BackupDir)
	setStr(&cfg.JWTSecret, raw.JWTSecret, os.Getenv("REVPILOT_JWT_SECRET"))
	setStr(&cfg.Timezone, raw.Timezone, raw.TZ)

	switch {
	case raw.AllowedOrigins != nil:
		cfg.AllowedOrigins = normalizeOrigins(raw.AllowedOrigins)
	case raw.CORSAllowedOrigins != nil:
		cfg.AllowedOrigins = normalizeOrigins(raw.CORSAllowedOrigins)
	}

	cfg.Backup = raw.Backup
	if cfg.Backup.KeepLocalCopies <= 0 {
		cfg.Backup.KeepLocalCopies = 7
	}

	cfg.DSN = cfg.Database.DSNValue()
	cfg.RedisURL = cfg.Redis.URLValue()
	cfg.Env = normalizeEnv(cfg.Env)
	cfg.Paths = normalizeRuntimePaths(cfg.Paths)
}

func applyRawDatabaseConfig(cfg DatabaseRuntimeConfig, raw rawAppConfig) DatabaseRuntimeConfig {
	db := raw.Database
	setStr(&cfg.DSN, db.DSN, db.URL, raw.DSN, raw.DatabaseURL)
	setStr(&cfg.Host, db.Host)
	setInt(&cfg.Port, db.Port)
	setStr(&cfg.User, db.User, db.Username)
	setStr(&cfg.Password, db.Password)
	setStr(&cfg.Name, db.Name, db.DBName)
	setStr(&cfg.Charset, db.Charset)
	setStr(&cfg.Loc, db.Loc)
	if db.ParseTime != nil {
		cfg.ParseTime = *db.ParseTime
	}
	if db.Params != nil {
		cfg.Params = copyStringMap(db.Params)
	}
	return normalizeDatabaseConfig(cfg)
}

func applyRawRedisConfig(cfg RedisRuntimeConfig, raw rawAppConfig) RedisRuntimeConfig {
	rd := raw.Redis
	setStr(&cfg.URL, rd.URL, raw.RedisURL)
	setStr(&cfg.Host, rd.Host)
	setInt(&cfg.Port, rd.Port)
	setStr(&cfg.Username, rd.Username)
	setStr(&cfg.Password, rd.Password)
	setStr(&cfg.Scheme, rd.Scheme)
	if rd.DB != nil {
		cfg.DB = *rd.DB
	}
	if rd.TLS != nil {
		cfg.TLS = *rd.TLS
	}
	if rd.Params != nil {
		cfg.Params = copyStringMap(rd.Params)
	}
	return normalizeRedisConfig(cfg)
}

func (c *AppConfig) IsDev() bool {
	return strings.EqualFold(c.Env, defaultEnv)
}

func (c *AppConfig) LogDir() string {
	if c == nil {
		return ResolveRuntimePath("", "logs")
	}
	return ResolveRuntimePath(c.Paths.Logs, "logs")
}

func (c *AppConfig) BackupDir() string {
	if c == nil {
		return ResolveRuntimePath("", "backups")
	}
	return ResolveRuntimePath(c.Paths.Backups, "backups")
}
