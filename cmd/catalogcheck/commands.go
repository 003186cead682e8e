package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/sirkon/contract/internal/config"
)

// app holds the state shared by subcommands once persistent flags are parsed.
type app struct {
	configPath string
	verbose    bool

	cfg *config.Config
	log *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:           "catalogcheck",
		Short:         "Verify and regenerate the errcode offset table and the check family",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd.ErrOrStderr())
		},
	}
	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", "path to a YAML configuration file")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log debug details")

	var blobPath, offsetsOut string
	offsetsCmd := &cobra.Command{
		Use:   "offsets",
		Short: "Compute the offset table from the description blob and print it as Go source",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runOffsets(cmd.OutOrStdout(), blobPath, offsetsOut)
		},
	}
	offsetsCmd.Flags().StringVar(&blobPath, "blob", "", "read the blob from a file instead of the compiled catalog")
	offsetsCmd.Flags().StringVarP(&offsetsOut, "out", "o", "", "output file, stdout by default")

	verifyCmd := &cobra.Command{
		Use:   "verify",
		Short: "Check the compiled offset table against the description blob",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runVerify(cmd.OutOrStdout())
		},
	}

	var checksOut string
	checksCmd := &cobra.Command{
		Use:   "checks",
		Short: "Render the specialized check family from the check table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runChecks(cmd.OutOrStdout(), checksOut)
		},
	}
	checksCmd.Flags().StringVarP(&checksOut, "out", "o", "", "output file, stdout by default")

	lookupCmd := &cobra.Command{
		Use:   "lookup <code|name>...",
		Short: "Print catalog entries by numeric value or by name",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runLookup(cmd.OutOrStdout(), args)
		},
	}

	rootCmd.AddCommand(offsetsCmd, verifyCmd, checksCmd, lookupCmd)
	return rootCmd
}

func (a *app) setup(stderr io.Writer) error {
	level := slog.LevelInfo
	if a.verbose {
		level = slog.LevelDebug
	}
	a.log = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	if a.configPath == "" {
		a.cfg = config.Default()
		return nil
	}

	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.log.Debug("configuration loaded", slog.String("path", a.configPath))

	return nil
}

// writeOutput writes data to path, or to w when path is empty.
func (a *app) writeOutput(w io.Writer, path string, data []byte) error {
	if path == "" {
		_, err := w.Write(data)
		return err
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	a.log.Info("output written", slog.String("path", path), slog.Int("bytes", len(data)))

	return nil
}
