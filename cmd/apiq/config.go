package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bft-labs/apiq/internal/app"
	"github.com/bft-labs/apiq/internal/domain"
)

func newConfigCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config COMMAND",
		Short: "Manage connection profiles",
		Long: `Manage the connection profiles stored in the profile document.

Profiles are free-form key=value bags. The keys base_url, token, cookie,
content_type and timeout are used when sending requests. Tokens are stored
and shown in plaintext.`,
		Args: usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			return fmt.Errorf("%w: config requires a subcommand (set, use, show, clear)", domain.ErrUsage)
		},
	}

	service := func() *app.ProfileService {
		return app.NewProfileService(c.store(), c.logger)
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "set NAME key=value [key=value ...]",
			Short: "Create or update a profile",
			Args:  usageArgs(cobra.MinimumNArgs(1)),
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := service().Set(cmd.Context(), args[0], args[1:]...); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Profile '%s' updated.\n", args[0])
				return nil
			},
		},
		&cobra.Command{
			Use:   "use NAME",
			Short: "Make a profile the default",
			Args:  usageArgs(cobra.ExactArgs(1)),
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := service().Use(cmd.Context(), args[0]); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Default profile set to '%s'.\n", args[0])
				return nil
			},
		},
		&cobra.Command{
			Use:   "show",
			Short: "Print the profile document, tokens included",
			Args:  usageArgs(cobra.NoArgs),
			RunE: func(cmd *cobra.Command, args []string) error {
				return service().Show(cmd.Context(), cmd.OutOrStdout())
			},
		},
		&cobra.Command{
			Use:   "clear",
			Short: "Delete the profile document",
			Args:  usageArgs(cobra.NoArgs),
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := service().Clear(cmd.Context()); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Config cleared.")
				return nil
			},
		},
	)
	return cmd
}
