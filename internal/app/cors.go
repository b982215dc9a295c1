package app

import (
	"net/url"
	"strings"
)

// originAllowed checks a request origin against the configured patterns.
// Patterns may be exact hosts, "*.domain" suffixes or "host:*" port
// wildcards.
func originAllowed(patterns []string, origin string) bool {
	host := origin
	if u, err := url.Parse(origin); err == nil && u.Host != "" {
		host = u.Host
	}

	for _, pattern := range patterns {
		if pattern == "*" || pattern == host {
			return true
		}
		if suffix, ok := strings.CutPrefix(pattern, "*."); ok {
			if host == suffix || strings.HasSuffix(host, "."+suffix) {
				return true
			}
			continue
		}
		if prefix, ok := strings.CutSuffix(pattern, ":*"); ok {
			if strings.HasPrefix(host, prefix+":") {
				return true
			}
		}
	}
	return false
}
