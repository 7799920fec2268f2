// Package share validates share links and extracts conversation
// identifiers. All checks fail closed: any parse error means "not a
// share link", never an error to the caller.
package share

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/gaurav-prasanna/convopdf/config"
)

// Ref is a validated share reference. It is only ever constructed from
// input that passed full shape validation.
type Ref struct {
	Raw string
	ID  string
}

// Rules decides whether a string is a well-formed share link. The
// domain, path prefix, and token shape all come from configuration.
type Rules struct {
	domain string
	prefix string
	token  *regexp.Regexp
}

// NewRules compiles the link rules from the configuration.
func NewRules(cfg *config.Config) (*Rules, error) {
	token, err := regexp.Compile(cfg.TokenPattern)
	if err != nil {
		return nil, fmt.Errorf("compiling token pattern: %w", err)
	}
	return &Rules{
		domain: cfg.ServiceDomain,
		prefix: cfg.SharePathPrefix,
		token:  token,
	}, nil
}

// Validate reports whether raw is a well-formed share link.
func (r *Rules) Validate(raw string) bool {
	_, ok := r.ExtractID(raw)
	return ok
}

// ExtractID returns the conversation identifier from a share link, or
// false when the link does not match the expected shape.
func (r *Rules) ExtractID(raw string) (string, bool) {
	parsed, err := url.Parse(raw)
	if err != nil {
		return "", false
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", false
	}
	if !strings.Contains(parsed.Host, r.domain) {
		return "", false
	}
	if !strings.HasPrefix(parsed.Path, r.prefix) {
		return "", false
	}
	id := strings.TrimPrefix(parsed.Path, r.prefix)
	if !r.token.MatchString(id) {
		return "", false
	}
	return id, true
}

// Parse returns a Ref for raw, or false when validation fails.
func (r *Rules) Parse(raw string) (Ref, bool) {
	id, ok := r.ExtractID(raw)
	if !ok {
		return Ref{}, false
	}
	return Ref{Raw: raw, ID: id}, true
}

// ShareURL reconstructs the canonical share link for an identifier.
func (r *Rules) ShareURL(id string) string {
	return "https://" + r.domain + r.prefix + id
}
