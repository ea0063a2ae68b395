package util

import (
	"net/url"
	"strings"
)

// WithQuery merges params into base's query string. Empty values are dropped.
func WithQuery(base string, params url.Values) (string, error) {
	u, err := url.Parse(strings.TrimSpace(base))
	if err != nil {
		return "", err
	}
	q := u.Query()
	for k, vals := range params {
		for _, v := range vals {
			if strings.TrimSpace(v) == "" {
				continue
			}
			q.Add(k, v)
		}
	}
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// Origin returns scheme://host of raw, or "" when raw is not absolute.
func Origin(raw string) string {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || u.Scheme == "" || u.Host == "" {
		return ""
	}
	return u.Scheme + "://" + u.Host
}

// SiteRoot returns the origin with a trailing slash.
func SiteRoot(raw string) string {
	if o := Origin(raw); o != "" {
		return o + "/"
	}
	return ""
}

// Resolve joins a site-relative path onto origin. Blank path yields "".
func Resolve(origin, path string) string {
	path = strings.TrimSpace(path)
	if path == "" {
		return ""
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return strings.TrimRight(origin, "/") + path
}
