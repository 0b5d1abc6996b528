package cli

import (
	"time"

	"github.com/spf13/cobra"
)

// NewCacheSweepCmd creates the cache sweep command.
func NewCacheSweepCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sweep",
		Short: "Remove expired entries from the upload cache",
		Long: `Removes every entry whose remote file has expired or is within the safety
margin of expiring. The remote store deletes files on its own schedule;
sweeping only drops the local records that no longer point anywhere.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			removed := openCacheStore(cmd).SweepExpired(time.Now())
			if removed == 0 {
				cmd.Println("No expired uploads to remove.")
				return nil
			}
			cmd.Printf("Removed %d expired upload(s).\n", removed)
			return nil
		},
	}
}
