package cli

import (
	"github.com/spf13/cobra"

	"github.com/akiselev/datasheet/internal/config"
)

// NewConfigPathCmd creates the config path command.
func NewConfigPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the configuration file path",
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, err := config.FilePath()
			if err != nil {
				return err
			}
			cmd.Println(path)
			return nil
		},
	}
}
