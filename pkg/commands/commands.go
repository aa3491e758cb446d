// Package commands builds the redline command tree.
package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/redline/pkg/auth"
	"tableflip.dev/redline/pkg/gateway"
	"tableflip.dev/redline/pkg/store"
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "redline",
		Short: "Index-addressed editing of remote rich-text documents.",
		Long: `redline edits remote rich-text documents by character index.

Basic workflow:
  1. read the document to get structure and indices
  2. find sections or calculate target indices
  3. insert, delete, or replace text at specific indices
  4. re-read if you need updated indices after edits

By default, edits fail if the document was modified since your last
read. Use --force to bypass.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addRead(topLevel)
	addFind(topLevel)
	addInsert(topLevel)
	addDelete(topLevel)
	addReplace(topLevel)
	addBatch(topLevel)
	addLogout(topLevel)
	addVersion(topLevel)
}

// newGateway assembles the per-invocation context: config, credential
// cache, token provider, gateway client. Nothing here is global.
func newGateway() (gateway.Gateway, error) {
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil, err
	}
	creds, err := store.OpenCredentials(cfg)
	if err != nil {
		return nil, err
	}
	tokens, err := auth.FromConfig(cfg, creds)
	if err != nil {
		return nil, err
	}
	return gateway.NewClient(cfg.BaseURL(), tokens), nil
}
