package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	fsAdapter "github.com/bft-labs/apiq/internal/adapters/fs"
	httpAdapter "github.com/bft-labs/apiq/internal/adapters/http"
	logAdapter "github.com/bft-labs/apiq/internal/adapters/log"
	"github.com/bft-labs/apiq/internal/app"
	"github.com/bft-labs/apiq/internal/cliconfig"
	"github.com/bft-labs/apiq/internal/domain"
	"github.com/bft-labs/apiq/internal/ports"
)

const longHelp = `apiq - Simple and powerful API CLI for developers.

Sends one REST or GraphQL request per invocation. Connection defaults
(base_url, token, cookie, content_type, timeout) come from named profiles
stored in ~/.apiq/config.yml; flags override the selected profile, which
overrides the built-in defaults (http://localhost:3000, application/json).`

var exampleUsage = strings.TrimSpace(`
  apiq GET /users
  apiq post /users --data='{"name":"ada"}' --header="X-Request-Id: 42"
  apiq PUT /users/1 --data=@user.json --profile=prod --show-headers
  apiq DELETE /users/1 --only-status
  apiq gql --file=query.graphql --profile=github
  apiq config set prod base_url=https://api.example.com token=secret
  apiq config use prod
`)

// environment carries the process handles the commands write to.
type environment struct {
	stdout     io.Writer
	stderr     io.Writer
	isTerminal func() bool
	version    string

	// dispatchers overrides the net/http dispatcher in tests.
	dispatchers app.DispatcherFactory
}

// cli holds parsed flag values and the state built in PersistentPreRunE.
type cli struct {
	env *environment

	settings     cliconfig.Settings
	settingsPath string
	envFile      string

	logger ports.Logger
}

func newRootCmd(env *environment) *cobra.Command {
	c := &cli{
		env:      env,
		settings: cliconfig.DefaultSettings(),
		logger:   logAdapter.NewNoopLogger(),
	}
	var req domain.RequestOptions

	root := &cobra.Command{
		Use:           "apiq METHOD PATH [flags]",
		Short:         "Simple and powerful API CLI for developers",
		Long:          longHelp,
		Example:       exampleUsage,
		Version:       env.version,
		Args:          usageArgs(cobra.MaximumNArgs(2)),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			req.Method = args[0]
			if len(args) > 1 {
				req.Path = args[1]
			}
			req.HasData = cmd.Flags().Changed("data")
			return c.runner().Run(cmd.Context(), req)
		},
	}
	root.SetOut(env.stdout)
	root.SetErr(env.stderr)
	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return fmt.Errorf("%w: %w", domain.ErrUsage, err)
	})

	pf := root.PersistentFlags()
	pf.StringVar(&c.settings.ConfigPath, cliconfig.FlagConfig, c.settings.ConfigPath, "path to the profile document")
	pf.StringVar(&c.settings.LogLevel, cliconfig.FlagLogLevel, c.settings.LogLevel, "diagnostic log level (debug, info, warn, error)")
	pf.StringVar(&c.settings.Color, cliconfig.FlagColor, c.settings.Color, "colour JSON output: auto, always or never")
	pf.StringVar(&c.settingsPath, "settings", "", "path to settings file (default: $HOME/.apiq/settings.toml)")
	pf.StringVar(&c.envFile, "env-file", "", "load APIQ_* variables from a dotenv file")

	f := root.Flags()
	f.StringVar(&req.Data, "data", "", "request body, or @FILE to send a file's contents")
	f.StringArrayVar(&req.Headers, "header", nil, `extra header "Name: value" (repeatable)`)
	f.StringVar(&req.Cookie, "cookie", "", `cookie string, e.g. "a=b; c=d"`)
	f.StringVar(&req.ContentType, "content-type", "", "Content-Type header (default application/json)")
	f.BoolVar(&req.ShowHeaders, "show-headers", false, "print the status line and response headers")
	f.StringVar(&req.Profile, "profile", "", "profile to use instead of the default")
	f.StringVar(&req.Token, "token", "", "bearer token")
	f.StringVar(&req.BaseURL, "base", "", "base URL")
	f.IntVar(&req.TimeoutSeconds, "timeout", 0, "connect and read timeout in seconds")
	f.BoolVar(&req.Verbose, "verbose", false, "print the request before sending it")
	f.BoolVar(&req.OnlyStatus, "only-status", false, "print only the HTTP status code")
	f.StringVar(&req.OutFile, "out", "", "write the response body to FILE")

	root.AddCommand(newGraphQLCmd(c), newConfigCmd(c))
	return root
}

// setup layers settings (file < env < flags) and builds the logger.
func (c *cli) setup(cmd *cobra.Command) error {
	changed := map[string]bool{}
	cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

	if err := cliconfig.Load(&c.settings, c.settingsPath, c.envFile, changed); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrUsage, err)
	}

	zl := logAdapter.NewConsoleLogger(c.env.stderr, c.settings.Level())
	c.logger = logAdapter.NewZerologAdapterWithLogger(zl)
	c.logger.Debug("settings loaded",
		ports.String("config", c.settings.ConfigPath),
		ports.String("color", c.settings.Color),
	)
	return nil
}

func (c *cli) store() *fsAdapter.ProfileFileStore {
	return fsAdapter.NewProfileFileStore(c.settings.ConfigPath)
}

func (c *cli) runner() *app.Runner {
	dispatchers := c.env.dispatchers
	if dispatchers == nil {
		dispatchers = func(timeout time.Duration) ports.RequestDispatcher {
			return httpAdapter.NewDispatcher(httpAdapter.NewClient(timeout), c.logger)
		}
	}
	return app.NewRunner(c.store(), dispatchers, c.env.stdout,
		app.WithLogger(c.logger),
		app.WithHighlight(c.settings.UseColor(c.env.isTerminal())),
	)
}

// usageArgs marks argument validation failures as usage errors.
func usageArgs(validate cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := validate(cmd, args); err != nil {
			return fmt.Errorf("%w: %w", domain.ErrUsage, err)
		}
		return nil
	}
}
