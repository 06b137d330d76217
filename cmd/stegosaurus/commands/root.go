// Package commands implements the stegosaurus command line interface.
package commands

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/yyyoichi/stegosaurus"
	"github.com/yyyoichi/stegosaurus/frame"
	"github.com/yyyoichi/stegosaurus/internal/config"
	"github.com/yyyoichi/stegosaurus/internal/logger"
)

var (
	// Version information injected at build time.
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// app is the state shared by subcommands once flags and configuration are resolved.
type app struct {
	v      *viper.Viper
	cfg    *config.Config
	log    *slog.Logger
	stego  *stegosaurus.Stego
	config string
}

// Execute runs the root command with the process arguments.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	root := &cobra.Command{
		Use:   "stegosaurus",
		Short: "Hide text in the pixel data of bitmap images",
		Long: `stegosaurus hides a text payload in the least significant bit of every
pixel-array byte of an uncompressed bitmap, and recovers it again.

Use "stegosaurus [command] --help" for more information about a command.`,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.config, "config", "", "Path to config file (yaml)")
	flags.String("framing", config.FramingMarkers, "Payload framing (markers|length)")
	flags.String("ecc", config.ECCNone, "Error correction for length framing (none|golay)")
	flags.Int64("seed", frame.DefaultShuffleSeed, "Shuffle seed for golay error correction")
	flags.String("log-level", "WARN", "Log level (DEBUG|INFO|WARN|ERROR)")
	flags.String("log-format", "text", "Log format (text|json)")
	flags.BoolP("verbose", "v", false, "Print container details")

	for key, name := range map[string]string{
		"framing":        "framing",
		"ecc":            "ecc",
		"seed":           "seed",
		"logging.level":  "log-level",
		"logging.format": "log-format",
		"verbose":        "verbose",
	} {
		_ = a.v.BindPFlag(key, flags.Lookup(name))
	}

	root.AddCommand(
		newEncodeCmd(a),
		newDecodeCmd(a),
		newInspectCmd(a),
		newVersionCmd(),
	)
	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	// arguments are valid by now; later failures are not usage errors
	cmd.SilenceUsage = true
	cfg, err := config.Load(a.v, a.config)
	if err != nil {
		return err
	}
	log, err := logger.New(cmd.ErrOrStderr(), logger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
	})
	if err != nil {
		return err
	}
	s, err := stegosaurus.New(
		stegosaurus.WithFraming(cfg.Framer()),
		stegosaurus.WithLogger(log),
	)
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}
	a.cfg, a.log, a.stego = cfg, log, s
	return nil
}

func (a *app) run(cmd *cobra.Command, m mode) error {
	a.log.Debug("running", "command", cmd.Name(), "mode", fmt.Sprintf("%+v", m))
	return m.run(a, cmd)
}

func readInput(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return b, nil
}
