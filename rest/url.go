package rest

import (
	"net/url"
	"strings"

	"github.com/rpaste-cli/rpaste/pasteerr"
)

// ResolveURL joins endpoint onto base. The base path is treated as a
// directory even without a trailing slash, so "https://host/paste" and
// "https://host/paste/" both resolve "list" to "https://host/paste/list".
func ResolveURL(base, endpoint string) (*url.URL, error) {
	u, err := parseAbsoluteURL(base)
	if err != nil {
		return nil, err
	}
	if !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
		if u.RawPath != "" {
			u.RawPath += "/"
		}
	}

	ref, err := url.Parse(endpoint)
	if err != nil {
		return nil, pasteerr.Wrap(pasteerr.URLParse, err)
	}
	return u.ResolveReference(ref), nil
}

func parseAbsoluteURL(raw string) (*url.URL, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, pasteerr.Wrap(pasteerr.URLParse, err)
	}
	if u.Scheme == "" {
		return nil, pasteerr.Errorf(pasteerr.URLParse, "relative URL without a base: %q", raw)
	}
	switch strings.ToLower(u.Scheme) {
	case "http", "https":
		if u.Host == "" {
			return nil, pasteerr.Errorf(pasteerr.URLParse, "empty host: %q", raw)
		}
	}
	return u, nil
}

// Reports whether raw is a well-formed absolute URL.
func validateURL(raw string) error {
	_, err := parseAbsoluteURL(raw)
	return err
}
