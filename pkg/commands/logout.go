package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/redline/pkg/runner/logout"
	"tableflip.dev/redline/pkg/store"
)

func addLogout(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "logout",
		Short: "Delete the cached credential",
		Example: `
redline logout
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			creds, err := store.OpenCredentials(nil)
			if err != nil {
				return err
			}
			n := logout.Logout{Creds: creds}
			return n.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}
