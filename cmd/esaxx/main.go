// Copyright (c) 2025 Nikita Kamenev
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package main provides the esaxx CLI entry point.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/nekitakamenev/esaxx/internal/config"
)

func main() {
	// Load .env file if present (ignore "file not found" errors)
	if err := godotenv.Load(); err != nil {
		if !os.IsNotExist(err) {
			fmt.Fprintf(os.Stderr, "Warning: failed to load .env file: %v\n", err)
		}
	}

	// A bad environment only fails commands that build something, so help
	// and completion still work.
	settings, envErr := config.New()
	if envErr != nil {
		settings = config.Defaults()
	}

	if err := rootCmd(settings, envErr).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd(settings config.Settings, envErr error) *cobra.Command {
	opts := &options{Settings: settings}

	cmd := &cobra.Command{
		Use:   "esaxx",
		Short: "Repeated substring frequencies from an enhanced suffix array",
		Long: `Builds the enhanced suffix array of a corpus and reports its maximal
repeated substrings with their occurrence counts.

Corpora ending in .gz, .zst, .bz2 or .xz are decompressed on the fly.
Defaults come from ESAXX_* environment variables and an optional .env file.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if envErr != nil {
				return fmt.Errorf("environment: %w", envErr)
			}
			return opts.Validate()
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.Backend, "backend", "b", settings.Backend, "Construction backend (wide, native)")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Show progress on stderr")

	cmd.AddCommand(substringsCmd(opts))
	cmd.AddCommand(statsCmd(opts))
	cmd.AddCommand(countCmd(opts))
	return cmd
}

func substringsCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "substrings [file]",
		Short: "List repeated substrings, best score first",
		Long: `List the repeated substrings of the corpus as "freq<TAB>substring" lines.

Substrings are scored by frequency times length; equal scores keep
suffix tree order. Reads standard input when no file is given.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSubstrings(cmd.OutOrStdout(), cmd.ErrOrStderr(), opts, fileArg(args))
		},
	}
	cmd.Flags().IntVar(&opts.MinFreq, "min-freq", opts.MinFreq, "Minimum occurrence count")
	cmd.Flags().IntVar(&opts.MinLen, "min-len", opts.MinLen, "Minimum length in code points")
	cmd.Flags().IntVar(&opts.MaxLen, "max-len", opts.MaxLen, "Maximum length in code points (0 = unbounded)")
	cmd.Flags().IntVarP(&opts.Top, "top", "n", opts.Top, "Keep the N best substrings (0 = all)")
	return cmd
}

func statsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "stats [file]",
		Short: "Print text length and node count",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStats(cmd.OutOrStdout(), cmd.ErrOrStderr(), opts, fileArg(args))
		},
	}
}

func countCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "count file pattern...",
		Short: "Print the occurrence count of each pattern",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCount(cmd.OutOrStdout(), cmd.ErrOrStderr(), opts, args[0], args[1:])
		},
	}
}

func fileArg(args []string) string {
	if len(args) == 0 {
		return "-"
	}
	return args[0]
}
