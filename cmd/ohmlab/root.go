// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/ohmlab/circuit"
	"github.com/katalvlaran/ohmlab/netlist"
)

// app carries the state shared by subcommands after PersistentPreRunE.
type app struct {
	configPath string
	flagCfg    Config
	cfg        Config
	log        *slog.Logger
	opts       []circuit.Option
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:               "ohmlab",
		Short:             "Solve resistive circuits: MNA, symbolic MNA and series/parallel reduction",
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}
	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", defaultConfigFile, "config file")
	pf.StringVar(&a.flagCfg.Backend, "backend", "", "numeric solver: gauss-jordan, elimination or gonum")
	pf.IntVar(&a.flagCfg.MaxFractionLen, "max-fraction-len", 0, "longest fraction printed before falling back to decimals")
	pf.IntVar(&a.flagCfg.Precision, "precision", 0, "decimal places of the fallback")
	pf.StringVarP(&a.flagCfg.Output, "output", "o", "", "output format: table or yaml")
	pf.StringVar(&a.flagCfg.LogLevel, "log-level", "", "debug, info, warn or error")
	pf.StringVar(&a.flagCfg.LogFormat, "log-format", "", "text or json")

	root.AddCommand(a.solveCmd(), a.symbolicCmd(), a.reduceCmd())
	return root
}

// setup loads the config file, applies flag overrides and builds the logger.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(a.configPath, cmd.Flags().Changed("config"))
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("backend") {
		cfg.Backend = a.flagCfg.Backend
	}
	if flags.Changed("max-fraction-len") {
		cfg.MaxFractionLen = a.flagCfg.MaxFractionLen
	}
	if flags.Changed("precision") {
		cfg.Precision = a.flagCfg.Precision
	}
	if flags.Changed("output") {
		cfg.Output = a.flagCfg.Output
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = a.flagCfg.LogLevel
	}
	if flags.Changed("log-format") {
		cfg.LogFormat = a.flagCfg.LogFormat
	}
	if cfg.Output != "table" && cfg.Output != "yaml" {
		return fmt.Errorf("output %q: want table or yaml", cfg.Output)
	}

	log, err := newLogger(cmd.ErrOrStderr(), cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}
	opts, err := cfg.circuitOptions(log)
	if err != nil {
		return err
	}
	a.cfg, a.log, a.opts = cfg, log, opts
	log.Debug("config loaded", slog.String("path", a.configPath), slog.Any("config", cfg))
	return nil
}

func (a *app) load(path string) (*netlist.Netlist, error) {
	n, err := netlist.LoadFile(path)
	if err != nil {
		return nil, err
	}
	a.log.Debug("netlist loaded", slog.String("path", path), slog.String("name", n.Name), slog.Int("components", len(n.Components)))
	return n, nil
}
