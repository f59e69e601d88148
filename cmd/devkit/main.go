package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/intel/aipc-devkit-install/internal/cli"
	"github.com/intel/aipc-devkit-install/pkg/config"
	"github.com/intel/aipc-devkit-install/pkg/log"
)

func init() {
	h, err := log.CreateHandler(os.Stderr, config.DefaultLogLevel, config.DefaultLogFormat)
	if err != nil {
		panic(err)
	}

	slog.SetDefault(slog.New(h))
}

const (
	cmdName = "devkit"

	shortDesc = "The AI PC DevKit installation helper."
	longDesc  = `The AI PC DevKit installation helper.

Writes tagged installation messages and checks candidate installation paths.
Every message is written to stdout with the "[AI-PC-DevKit] " prefix.
`
)

func main() {
	cmd := cli.NewRootCmd(cmdName, shortDesc, longDesc)

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, strings.TrimLeft(err.Error(), "\n"))
		os.Exit(1)
	}
}
