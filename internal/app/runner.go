package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/bft-labs/apiq/internal/domain"
	"github.com/bft-labs/apiq/internal/ports"
)

// DispatcherFactory builds the dispatcher for one request with the resolved
// timeout (zero means no timeout).
type DispatcherFactory func(timeout time.Duration) ports.RequestDispatcher

// Runner executes one REST or GraphQL invocation end to end.
type Runner struct {
	store     ports.ProfileStore
	dispatch  DispatcherFactory
	readFile  FileReader
	logger    ports.Logger
	out       io.Writer
	highlight bool
}

// Option configures optional behavior of a Runner.
type Option func(*Runner)

// WithFileReader replaces os.ReadFile for @file bodies and query files.
func WithFileReader(f FileReader) Option {
	return func(r *Runner) {
		r.readFile = f
	}
}

// WithLogger sets the diagnostics logger. The default discards everything.
func WithLogger(l ports.Logger) Option {
	return func(r *Runner) {
		r.logger = l
	}
}

// WithHighlight enables colouring of JSON bodies.
func WithHighlight(on bool) Option {
	return func(r *Runner) {
		r.highlight = on
	}
}

// NewRunner creates a Runner that loads profiles from store, sends through
// dispatchers built by dispatch and writes all user-facing output to out.
func NewRunner(store ports.ProfileStore, dispatch DispatcherFactory, out io.Writer, opts ...Option) *Runner {
	r := &Runner{
		store:    store,
		dispatch: dispatch,
		readFile: os.ReadFile,
		logger:   noopLogger{},
		out:      out,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run resolves opts against the stored profiles, sends the request once and
// renders the response.
func (r *Runner) Run(ctx context.Context, opts domain.RequestOptions) error {
	cfg, err := r.store.Load(ctx)
	if err != nil {
		return err
	}

	resolver := NewResolver(NewBodyResolver(r.readFile))
	req, err := resolver.Resolve(opts, cfg)
	if err != nil {
		return err
	}
	r.logger.Debug("request resolved",
		ports.String("method", req.Method),
		ports.String("url", req.URL),
		ports.Int("headers", len(req.Headers)),
		ports.Duration("timeout", req.Timeout),
	)

	if opts.Verbose {
		if err := WriteTrace(r.out, req); err != nil {
			return fmt.Errorf("write trace: %w", err)
		}
	}

	resp, err := r.dispatch(req.Timeout).Dispatch(ctx, req)
	if err != nil {
		return err
	}

	return NewRenderer(r.out).Render(resp, RenderOptions{
		OnlyStatus:  opts.OnlyStatus,
		ShowHeaders: opts.ShowHeaders,
		OutFile:     opts.OutFile,
		Highlight:   r.highlight,
	})
}

// RunGraphQL rewrites a gql invocation into POST /graphql and runs it.
func (r *Runner) RunGraphQL(ctx context.Context, opts GraphQLOptions) error {
	reqOpts, err := GraphQLRequest(opts, r.readFile)
	if err != nil {
		return err
	}
	return r.Run(ctx, reqOpts)
}

// noopLogger discards all log messages.
type noopLogger struct{}

func (noopLogger) Debug(msg string, fields ...ports.Field) {}
func (noopLogger) Info(msg string, fields ...ports.Field)  {}
func (noopLogger) Warn(msg string, fields ...ports.Field)  {}
func (noopLogger) Error(msg string, fields ...ports.Field) {}
