package cli

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"

	"github.com/intel/aipc-devkit-install/pkg/config"
	"github.com/intel/aipc-devkit-install/pkg/devkiterrors"
	"github.com/intel/aipc-devkit-install/pkg/log"
	"github.com/intel/aipc-devkit-install/pkg/version"
)

var ErrLogHandlerFailed = errors.New("log handler failed")

// RootArgs holds state resolved by the root command before a subcommand runs.
type RootArgs struct {
	config *config.Config
}

func NewRootArgs() *RootArgs {
	return &RootArgs{config: config.Default()}
}

func (a *RootArgs) GetConfig() *config.Config {
	return a.config
}

func NewRootCmd(name, shortDesc, longDesc string) *cobra.Command {
	args := NewRootArgs()

	cmd := &cobra.Command{
		Use:           name,
		Short:         shortDesc,
		Long:          longDesc,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version.String(),
	}

	cmd.PersistentFlags().String("log_level", config.DefaultLogLevel, "Set the log level (debug, info, warn, error)")
	cmd.PersistentFlags().String("log_format", config.DefaultLogFormat, "Set the log format (text, logfmt, json)")
	cmd.PersistentFlags().String("config", "", "Read settings and candidate paths from this YAML file")

	err := cmd.MarkPersistentFlagFilename("config", "yaml", "yml")
	if err != nil {
		panic(err)
	}

	cmd.PersistentPreRunE = func(cc *cobra.Command, _ []string) error {
		flags := cc.Flags()

		var merr error

		logLevel, err := flags.GetString("log_level")
		if err != nil {
			merr = multierror.Append(merr, err)
		}

		logFormat, err := flags.GetString("log_format")
		if err != nil {
			merr = multierror.Append(merr, err)
		}

		configPath, err := flags.GetString("config")
		if err != nil {
			merr = multierror.Append(merr, err)
		}

		if merr != nil {
			return fmt.Errorf("%w: %w", devkiterrors.ErrInvalidArguments, merr)
		}

		if configPath != "" {
			c, err := config.Load(configPath)
			if err != nil {
				return err //nolint:wrapcheck // Already wrapped.
			}

			args.config = c

			if !flags.Changed("log_level") {
				logLevel = c.LogLevel
			}

			if !flags.Changed("log_format") {
				logFormat = c.LogFormat
			}
		}

		h, err := log.CreateHandler(cc.ErrOrStderr(), logLevel, logFormat)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrLogHandlerFailed, err)
		}

		slog.SetDefault(slog.New(h))

		slog.Debug("ready to go", "config", configPath)

		return nil
	}

	cmd.AddCommand(NewLogCmd())
	cmd.AddCommand(NewValidateCmd(args))
	cmd.AddCommand(NewVersionCmd())

	return cmd
}
