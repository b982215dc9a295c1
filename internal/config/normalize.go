package config

import "strings"

// trimAll trims every string field passed by pointer. Saves a page of
// repeated strings.TrimSpace assignments in the normalizers below.
func trimAll(fields ...*string) {
	for _, f := range fields {
		*f = strings.TrimSpace(*f)
	}
}

func normalizeDatabaseConfig(cfg DatabaseRuntimeConfig) DatabaseRuntimeConfig {
	trimAll(&cfg.DSN, &cfg.URL, &cfg.Host, &cfg.User, &cfg.Username,
		&cfg.Password, &cfg.Name, &cfg.DBName, &cfg.Charset, &cfg.Loc)

	// "username"/"dbname" are accepted as aliases of "user"/"name".
	if cfg.User == "" {
		cfg.User = cfg.Username
	}
	if cfg.Name == "" {
		cfg.Name = cfg.DBName
	}

	cfg.Host = firstNonEmpty(cfg.Host, defaultDBHost)
	cfg.User = firstNonEmpty(cfg.User, defaultDBUser)
	cfg.Password = firstNonEmpty(cfg.Password, defaultDBPassword)
	cfg.Name = firstNonEmpty(cfg.Name, defaultDBName)
	cfg.Charset = firstNonEmpty(cfg.Charset, defaultDBCharset)
	cfg.Loc = firstNonEmpty(cfg.Loc, defaultDBLoc)
	if cfg.Port == 0 {
		cfg.Port = defaultDBPort
	}
	cfg.Params = copyStringMap(cfg.Params)
	return cfg
}

func normalizeRedisConfig(cfg RedisRuntimeConfig) RedisRuntimeConfig {
	cfg.URL = normalizeRedisRawURL(cfg.URL)
	trimAll(&cfg.Host, &cfg.Username, &cfg.Password, &cfg.Scheme)
	cfg.Scheme = strings.ToLower(cfg.Scheme)

	if cfg.Host == "" && cfg.URL == "" {
		cfg.Host = defaultRedisHost
	}
	if cfg.Port == 0 {
		cfg.Port = defaultRedisPort
	}
	if cfg.DB < 0 {
		cfg.DB = defaultRedisDB
	}
	if cfg.Scheme == "" {
		cfg.Scheme = "redis"
		if cfg.TLS {
			cfg.Scheme = "rediss"
		}
	}
	cfg.Params = copyStringMap(cfg.Params)
	return cfg
}

func normalizeRedisRawURL(raw string) string {
	trimmed := strings.TrimSpace(raw)
	switch {
	case trimmed == "":
		return ""
	case strings.HasPrefix(trimmed, "redis://"), strings.HasPrefix(trimmed, "rediss://"):
		return trimmed
	default:
		return "redis://" + trimmed
	}
}

func normalizeOrigins(origins []string) []string {
	out := make([]string, 0, len(origins))
	for _, origin := range origins {
		if trimmed := strings.TrimSpace(origin); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func normalizeEnv(env string) string {
	if trimmed := strings.ToLower(strings.TrimSpace(env)); trimmed != "" {
		return trimmed
	}
	return defaultEnv
}

func normalizeRuntimePaths(paths RuntimePathsConfig) RuntimePathsConfig {
	trimAll(&paths.Logs, &paths.Backups)
	return paths
}

func copyStringMap(input map[string]string) map[string]string {
	if input == nil {
		return nil
	}
	out := make(map[string]string, len(input))
	for key, value := range input {
		k, v := strings.TrimSpace(key), strings.TrimSpace(value)
		if k != "" && v != "" {
			out[k] = v
		}
	}
	return out
}
