package config

import (
	"fmt"
	"net"
	neturl "net/url"
	"strconv"
	"strings"
)

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if s := strings.TrimSpace(v); s != "" {
			return s
		}
	}
	return ""
}

func cleanParams(raw map[string]string) neturl.Values {
	params := neturl.Values{}
	for key, value := range raw {
		k, v := strings.TrimSpace(key), strings.TrimSpace(value)
		if k != "" && v != "" {
			params.Set(k, v)
		}
	}
	return params
}

// DSNValue builds the MySQL DSN from discrete fields unless an explicit
// dsn/url was configured.
func (c DatabaseRuntimeConfig) DSNValue() string {
	if v := firstNonEmpty(c.DSN, c.URL); v != "" {
		return v
	}

	host := firstNonEmpty(c.Host, defaultDBHost)
	port := c.Port
	if port == 0 {
		port = defaultDBPort
	}
	user := firstNonEmpty(c.User, c.Username, defaultDBUser)
	password := firstNonEmpty(c.Password, defaultDBPassword)
	name := firstNonEmpty(c.Name, c.DBName, defaultDBName)

	params := cleanParams(c.Params)
	if params.Get("charset") == "" {
		params.Set("charset", firstNonEmpty(c.Charset, defaultDBCharset))
	}
	if params.Get("parseTime") == "" {
		params.Set("parseTime", strconv.FormatBool(c.ParseTime))
	}
	if params.Get("loc") == "" {
		params.Set("loc", firstNonEmpty(c.Loc, defaultDBLoc))
	}

	auth := user
	if password != "" {
		auth += ":" + password
	}
	if auth != "" {
		auth += "@"
	}

	dsn := fmt.Sprintf("%stcp(%s)/%s", auth, net.JoinHostPort(host, strconv.Itoa(port)), name)
	if query := params.Encode(); query != "" {
		dsn += "?" + query
	}
	return dsn
}

// URLValue builds the redis URL from discrete fields unless an explicit url
// was configured.
func (c RedisRuntimeConfig) URLValue() string {
	if u := normalizeRedisRawURL(c.URL); u != "" {
		return u
	}

	host := firstNonEmpty(c.Host, defaultRedisHost)
	port := c.Port
	if port == 0 {
		port = defaultRedisPort
	}
	db := c.DB
	if db < 0 {
		db = defaultRedisDB
	}

	scheme := strings.ToLower(strings.TrimSpace(c.Scheme))
	switch scheme {
	case "redis", "rediss":
	case "":
		scheme = "redis"
		if c.TLS {
			scheme = "rediss"
		}
	default:
		scheme = "redis"
	}

	u := &neturl.URL{
		Scheme: scheme,
		Host:   net.JoinHostPort(host, strconv.Itoa(port)),
		Path:   "/" + strconv.Itoa(db),
	}

	username := strings.TrimSpace(c.Username)
	password := strings.TrimSpace(c.Password)
	switch {
	case username != "" && password != "":
		u.User = neturl.UserPassword(username, password)
	case username != "":
		u.User = neturl.User(username)
	case password != "":
		u.User = neturl.UserPassword("", password)
	}

	if params := cleanParams(c.Params); len(params) > 0 {
		u.RawQuery = params.Encode()
	}
	return u.String()
}
