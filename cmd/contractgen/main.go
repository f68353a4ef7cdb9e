// Command contractgen renders contracts and quotations from JSON or YAML
// trade records.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/goliatone/go-contractgen/internal/config"
	"github.com/goliatone/go-contractgen/pkg/orchestrator"
)

var version = "dev"

// app carries the state shared by subcommands once the root command has
// loaded configuration.
type app struct {
	configPath string
	verbose    bool

	cfg    config.Config
	logger *zap.Logger

	in     io.Reader
	out    io.Writer
	errOut io.Writer
}

func main() {
	a := &app{in: os.Stdin, out: os.Stdout, errOut: os.Stderr}
	cmd := newRootCmd(a)
	err := cmd.Execute()
	if a.logger != nil {
		_ = a.logger.Sync()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "contractgen:", err)
		os.Exit(1)
	}
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "contractgen",
		Short:         "Render legal documents from trade records",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup()
		},
	}
	root.SetIn(a.in)
	root.SetOut(a.out)
	root.SetErr(a.errOut)

	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "YAML configuration file")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		newRenderCmd(a),
		newTokensCmd(a),
		newTemplatesCmd(a),
		newWordsCmd(a),
		newFeeCmd(a),
		newQuoteCmd(a),
	)
	return root
}

func (a *app) setup() error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	a.cfg = cfg

	if a.logger == nil {
		logger, err := newLogger(cfg, a.verbose)
		if err != nil {
			return err
		}
		a.logger = logger
	}
	a.logger.Debug("configuration loaded",
		zap.String("config", a.configPath),
		zap.Float64("fee_rate", cfg.FeeRate),
		zap.String("hundreds", cfg.Hundreds),
	)
	return nil
}

func newLogger(cfg config.Config, verbose bool) (*zap.Logger, error) {
	level, err := cfg.Level()
	if err != nil {
		return nil, err
	}
	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(level)
	if verbose {
		zcfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	logger, err := zcfg.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return logger, nil
}

func (a *app) orchestrator(extra ...orchestrator.Option) (*orchestrator.Orchestrator, error) {
	options, err := a.cfg.OrchestratorOptions()
	if err != nil {
		return nil, err
	}
	options = append(options, orchestrator.WithLogger(a.logger))
	options = append(options, extra...)
	return orchestrator.New(options...), nil
}
