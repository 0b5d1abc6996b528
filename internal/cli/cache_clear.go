package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/akiselev/datasheet/internal/tui"
)

// NewCacheClearCmd creates the cache clear command.
func NewCacheClearCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Forget every cached upload",
		Long: `Drops all local upload records. Remote files are not deleted; the file
store expires them on its own after the retention period. The next
extraction of each PDF uploads it again.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCacheClear(cmd, force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "clear without confirmation")

	return cmd
}

func runCacheClear(cmd *cobra.Command, force bool) error {
	store := openCacheStore(cmd)
	if store.Len() == 0 {
		cmd.Println("Upload cache is empty.")
		return nil
	}

	if !force {
		cmd.Println(tui.WarningStyle.Render("This forgets every cached upload; the next extraction re-uploads from scratch."))
		result := Confirm(cmd.OutOrStdout(), cmd.InOrStdin(),
			fmt.Sprintf("Remove all %d cached upload(s)?", store.Len()))
		if !result.Accepted {
			cmd.Println("Aborted.")
			return nil
		}
	}

	store.Clear()
	if err := store.Save(); err != nil {
		return err
	}

	cmd.Println("Upload cache cleared.")
	return nil
}
