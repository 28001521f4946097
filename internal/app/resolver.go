package app

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/net/http/httpguts"

	"github.com/bft-labs/apiq/internal/domain"
)

// Resolver merges command-line overrides, the selected profile and built-in
// defaults into one ResolvedRequest. Precedence: flag > profile > default.
type Resolver struct {
	bodies *BodyResolver
}

// NewResolver creates a Resolver that reads @file bodies through bodies.
func NewResolver(bodies *BodyResolver) *Resolver {
	return &Resolver{bodies: bodies}
}

// SelectProfile returns the profile named by the --profile override, else the
// config default. An unknown or absent name yields an empty profile.
func SelectProfile(cfg domain.Config, override string) domain.Profile {
	name := override
	if name == "" {
		name = cfg.Default
	}
	if p, ok := cfg.Profile(name); ok {
		return p
	}
	return domain.Profile{}
}

// Resolve builds the request for opts against cfg.
func (r *Resolver) Resolve(opts domain.RequestOptions, cfg domain.Config) (domain.ResolvedRequest, error) {
	profile := SelectProfile(cfg, opts.Profile)

	method, err := resolveMethod(opts.Method)
	if err != nil {
		return domain.ResolvedRequest{}, err
	}

	baseURL := firstNonEmpty(opts.BaseURL, profile.Get(domain.FieldBaseURL), domain.DefaultBaseURL)
	path := firstNonEmpty(opts.Path, domain.DefaultPath)
	target, err := JoinURL(baseURL, path)
	if err != nil {
		return domain.ResolvedRequest{}, err
	}

	timeout, err := resolveTimeout(opts.TimeoutSeconds, profile)
	if err != nil {
		return domain.ResolvedRequest{}, err
	}

	headers, err := resolveHeaders(opts, profile)
	if err != nil {
		return domain.ResolvedRequest{}, err
	}

	req := domain.ResolvedRequest{
		Method:  method,
		URL:     target,
		Headers: headers,
		Timeout: timeout,
	}
	if opts.HasData {
		body, err := r.bodies.Resolve(opts.Data)
		if err != nil {
			return domain.ResolvedRequest{}, err
		}
		req.Body = body
		req.HasBody = true
	}
	return req, nil
}

// JoinURL resolves path against base as an RFC 3986 reference: an absolute
// path replaces the base path, a relative one is merged with it.
func JoinURL(base, path string) (string, error) {
	b, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("%w: invalid base URL %q: %w", domain.ErrUsage, base, err)
	}
	if (b.Scheme != "http" && b.Scheme != "https") || b.Host == "" {
		return "", fmt.Errorf("%w: base URL %q must be an absolute http or https URL", domain.ErrUsage, base)
	}
	ref, err := url.Parse(path)
	if err != nil {
		return "", fmt.Errorf("%w: invalid path %q: %w", domain.ErrUsage, path, err)
	}
	return b.ResolveReference(ref).String(), nil
}

// resolveMethod uppercases m. Any valid HTTP token passes through; an empty
// method is GET and anything else is rejected.
func resolveMethod(m string) (string, error) {
	m = strings.ToUpper(strings.TrimSpace(m))
	if m == "" {
		return domain.DefaultMethod, nil
	}
	if !httpguts.ValidHeaderFieldName(m) {
		return "", fmt.Errorf("%w: invalid HTTP method %q", domain.ErrUsage, m)
	}
	return m, nil
}

func resolveTimeout(flagSeconds int, profile domain.Profile) (time.Duration, error) {
	if flagSeconds > 0 {
		return time.Duration(flagSeconds) * time.Second, nil
	}
	raw := strings.TrimSpace(profile.Get(domain.FieldTimeout))
	if raw == "" {
		return 0, nil
	}
	secs, err := strconv.Atoi(raw)
	if err != nil || secs <= 0 {
		return 0, fmt.Errorf("%w: profile %q: timeout %q must be a positive number of seconds", domain.ErrInvalidProfile, profile.Name, raw)
	}
	return time.Duration(secs) * time.Second, nil
}

// resolveHeaders appends, in order: Authorization, Cookie, Content-Type, then
// every --header flag. Nothing is deduplicated.
func resolveHeaders(opts domain.RequestOptions, profile domain.Profile) ([]domain.Header, error) {
	headers := make([]domain.Header, 0, 3+len(opts.Headers))

	if token := firstNonEmpty(opts.Token, profile.Get(domain.FieldToken)); token != "" {
		headers = append(headers, domain.Header{Name: "Authorization", Value: "Bearer " + token})
	}
	if cookie := firstNonEmpty(opts.Cookie, profile.Get(domain.FieldCookie)); cookie != "" {
		headers = append(headers, domain.Header{Name: "Cookie", Value: cookie})
	}
	headers = append(headers, domain.Header{
		Name:  "Content-Type",
		Value: firstNonEmpty(opts.ContentType, profile.Get(domain.FieldContentType), domain.DefaultContentType),
	})

	for _, raw := range opts.Headers {
		h, err := ParseHeader(raw)
		if err != nil {
			return nil, err
		}
		headers = append(headers, h)
	}
	return headers, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
