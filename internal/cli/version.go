package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/intel/aipc-devkit-install/pkg/version"
)

// NewVersionCmd returns the version command.
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version of the devkit CLI",
		Run: func(cc *cobra.Command, _ []string) {
			fmt.Fprintln(cc.OutOrStdout(), version.String())
		},
	}
}
