package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/akiselev/datasheet/internal/release"
)

// GitHub coordinates of this tool's release repository.
const (
	releaseOwner = "akiselev"
	releaseRepo  = "datasheet"
)

// NewVersionCmd creates the version command.
func NewVersionCmd(ver string) *cobra.Command {
	var check bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version of the datasheet CLI",
		Example: `  # Show the running version
  datasheet version

  # Also check GitHub for a newer release
  datasheet version --check`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.Printf("datasheet %s\n", ver)
			if !check {
				return nil
			}
			return runReleaseCheck(cmd, ver)
		},
	}

	cmd.Flags().BoolVar(&check, "check", false, "check GitHub for a newer release")

	return cmd
}

func runReleaseCheck(cmd *cobra.Command, ver string) error {
	latest, err := release.NewClient().Latest(cmd.Context(), releaseOwner, releaseRepo)
	if err != nil {
		if errors.Is(err, release.ErrNoReleases) {
			cmd.Println("No releases published yet.")
			return nil
		}
		return fmt.Errorf("release check failed: %w", err)
	}

	newer, err := release.IsNewer(ver, latest.TagName)
	if err != nil {
		// Dev builds carry versions like "dev" that do not compare; still
		// show what the latest release is.
		cmd.Printf("Latest release: %s (%s)\n", latest.TagName, latest.HTMLURL)
		return nil
	}

	if newer {
		cmd.Printf("A newer release is available: %s (%s)\n", latest.TagName, latest.HTMLURL)
	} else {
		cmd.Println("You are on the latest release.")
	}
	return nil
}
