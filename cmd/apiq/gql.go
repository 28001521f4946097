package main

import (
	"github.com/spf13/cobra"

	"github.com/bft-labs/apiq/internal/app"
)

func newGraphQLCmd(c *cli) *cobra.Command {
	var opts app.GraphQLOptions

	cmd := &cobra.Command{
		Use:   "gql --file=QUERY.graphql [--profile=PROFILE]",
		Short: "Send a GraphQL query file as POST /graphql",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runner().RunGraphQL(cmd.Context(), opts)
		},
	}
	cmd.Flags().StringVar(&opts.File, "file", "", "GraphQL query file (required)")
	cmd.Flags().StringVar(&opts.Profile, "profile", "", "profile to use instead of the default")
	return cmd
}
