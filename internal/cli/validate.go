package cli

import (
	"fmt"
	"log/slog"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"

	"github.com/intel/aipc-devkit-install/pkg/devkit"
	"github.com/intel/aipc-devkit-install/pkg/devkiterrors"
)

const validateExample = `  # Validate an installation directory
  devkit validate C:/devkit

  # Validate the paths listed in a configuration file
  devkit validate --config devkit.yaml
`

// NewValidateCmd returns the validate command.
func NewValidateCmd(arg *RootArgs) *cobra.Command {
	return &cobra.Command{
		Use:     "validate [PATH]...",
		Short:   "Check that candidate installation paths are non-empty text",
		Example: validateExample,
		RunE: func(cc *cobra.Command, args []string) error {
			candidates := make([]any, 0, len(args)+len(arg.GetConfig().Paths))
			for _, a := range args {
				candidates = append(candidates, a)
			}

			candidates = append(candidates, arg.GetConfig().Paths...)

			if len(candidates) == 0 {
				return fmt.Errorf("%w: no paths to validate", devkiterrors.ErrInvalidArguments)
			}

			return validatePaths(devkit.NewLogger(cc.OutOrStdout()), candidates)
		},
	}
}

func validatePaths(logger *devkit.Logger, candidates []any) error {
	var merr *multierror.Error

	for i, c := range candidates {
		valid := devkit.ValidatePath(c)
		slog.Debug("validated path", "index", i, "path", c, "valid", valid)

		if valid {
			logger.LogMessage(fmt.Sprintf("valid path: %v", c))

			continue
		}

		logger.LogMessage(fmt.Sprintf("invalid path: %#v", c))
		merr = multierror.Append(merr, fmt.Errorf("%w: %#v", devkiterrors.ErrInvalidPath, c))
	}

	return merr.ErrorOrNil() //nolint:wrapcheck // Each error is already wrapped.
}
