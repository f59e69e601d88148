package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/intel/aipc-devkit-install/pkg/devkit"
)

const logExample = `  # Write "[AI-PC-DevKit] Installing OpenVINO" to stdout
  devkit log Installing OpenVINO
`

// NewLogCmd returns the log command.
func NewLogCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "log MESSAGE...",
		Short:   "Write a tagged installation message to stdout",
		Example: logExample,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cc *cobra.Command, args []string) error {
			devkit.NewLogger(cc.OutOrStdout()).LogMessage(strings.Join(args, " "))

			return nil
		},
	}
}
