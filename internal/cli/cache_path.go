package cli

import (
	"github.com/spf13/cobra"
)

// NewCachePathCmd creates the cache path command.
func NewCachePathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the cache document path",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.Println(openCacheStore(cmd).Path())
			return nil
		},
	}
}
