package introspect

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"

	gophers "github.com/graph-gophers/graphql-go"
	graphqlgo "github.com/graphql-go/graphql"
	"github.com/vektah/gqlparser/v2/ast"
)

// DefaultMaxResponseBytes bounds the size of a fetched introspection response.
const DefaultMaxResponseBytes int64 = 32 << 20

// Introspector dispatches a schema source to the matching introspection path.
type Introspector struct {
	client           *http.Client
	headers          http.Header
	userAgent        string
	maxResponseBytes int64
}

// Option configures an Introspector.
type Option func(*Introspector)

// WithHTTPClient sets the client used for URL sources.
func WithHTTPClient(client *http.Client) Option {
	return func(i *Introspector) {
		if client != nil {
			i.client = client
		}
	}
}

// WithTimeout sets a timeout for URL sources. Zero disables it.
func WithTimeout(d time.Duration) Option {
	return func(i *Introspector) {
		c := *i.client
		c.Timeout = d
		i.client = &c
	}
}

// WithHeader adds a request header sent to URL sources.
func WithHeader(key, value string) Option {
	return func(i *Introspector) {
		i.headers.Add(key, value)
	}
}

// WithUserAgent sets the User-Agent sent to URL sources.
func WithUserAgent(ua string) Option {
	return func(i *Introspector) {
		i.userAgent = ua
	}
}

// WithMaxResponseBytes bounds the accepted response size for URL sources.
func WithMaxResponseBytes(n int64) Option {
	return func(i *Introspector) {
		if n > 0 {
			i.maxResponseBytes = n
		}
	}
}

// New creates an Introspector.
func New(opts ...Option) *Introspector {
	i := &Introspector{
		client:           &http.Client{},
		headers:          make(http.Header),
		userAgent:        "workbook-generator",
		maxResponseBytes: DefaultMaxResponseBytes,
	}

	for _, opt := range opts {
		opt(i)
	}

	return i
}

// Introspect produces the raw introspection document for source.
//
// Strings that parse as absolute URLs are fetched over HTTP; any other
// non-blank string is treated as SDL. Schema instances are introspected in
// process. Every other value fails with an *InvalidSourceError.
func (i *Introspector) Introspect(ctx context.Context, source any) (*Document, error) {
	switch src := source.(type) {
	case string:
		if strings.TrimSpace(src) == "" {
			return nil, &InvalidSourceError{Source: src, Reason: "empty source string"}
		}

		if IsURL(src) {
			return i.fetch(ctx, src)
		}

		return FromSDL(src)

	case *ast.Schema:
		if src == nil {
			return nil, &InvalidSourceError{Source: src, Reason: "nil schema"}
		}

		return FromAST(src), nil

	case *gophers.Schema:
		if src == nil {
			return nil, &InvalidSourceError{Source: src, Reason: "nil schema"}
		}

		return FromGraphGophers(src)

	case *graphqlgo.Schema:
		if src == nil {
			return nil, &InvalidSourceError{Source: src, Reason: "nil schema"}
		}

		return FromGraphQLGo(*src)

	case graphqlgo.Schema:
		return FromGraphQLGo(src)

	case []byte:
		if len(src) == 0 {
			return nil, &InvalidSourceError{Source: src, Reason: "empty introspection result"}
		}

		return Decode(src)

	case *Document:
		if src == nil {
			return nil, &InvalidSourceError{Source: src, Reason: "nil document"}
		}

		return src, nil

	case Document:
		return &src, nil

	default:
		return nil, &InvalidSourceError{Source: source}
	}
}

// IsURL reports whether s is a syntactically valid absolute URL.
func IsURL(s string) bool {
	u, err := url.Parse(strings.TrimSpace(s))
	if err != nil {
		return false
	}

	return u.IsAbs() && (u.Host != "" || u.Opaque != "")
}
