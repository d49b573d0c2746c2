// Package main provides the semcrate binary entry point. Semcrate
// inspects RO-Crate style JSON-LD documents produced by the semcrate
// library: it validates entries against their declared schema, prints
// canonical N-Quads, and compares documents for graph isomorphism.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/c360studio/semcrate/codec"
	"github.com/c360studio/semcrate/crate"
)

const (
	Version   = "0.1.0"
	BuildTime = "dev"
	appName   = "semcrate"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var logLevel string

	cmd := &cobra.Command{
		Use:   "semcrate",
		Short: "Inspect RO-Crate JSON-LD documents",
		Long: `Semcrate inspects RO-Crate style JSON-LD documents.

It provides:
- schema validation of metadata entries (cardinality, dangling references)
- URDNA2015 canonical N-Quads output
- graph isomorphism comparison between two documents`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			configureLogging(logLevel)
		},
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")

	cmd.AddCommand(validateCmd())
	cmd.AddCommand(canonCmd())
	cmd.AddCommand(diffCmd())
	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("%s version %s (build: %s)\n", appName, Version, BuildTime)
		},
	})

	return cmd
}

func configureLogging(logLevel string) {
	level := slog.LevelInfo
	switch strings.ToLower(logLevel) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
}

func loadDocument(path string) (*codec.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return codec.ParseDocument(data)
}

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <crate.json>",
		Short: "Validate a crate document against its declared schema",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := loadDocument(args[0])
			if err != nil {
				return err
			}
			c, err := crate.FromDocument(doc, nil)
			if err != nil {
				return err
			}

			report := c.Validate()
			for _, v := range report.Violations {
				fmt.Println(v)
			}
			for _, u := range report.Unresolved {
				fmt.Println(u)
			}
			if !report.OK() {
				return fmt.Errorf("%d violations, %d unresolved references",
					len(report.Violations), len(report.Unresolved))
			}
			fmt.Printf("%s: %d entries ok\n", args[0], len(c.Entries()))
			return nil
		},
	}
}

func canonCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "canon <crate.json>",
		Short: "Print the URDNA2015 canonical N-Quads form",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := loadDocument(args[0])
			if err != nil {
				return err
			}
			quads, err := codec.Canonicalize(doc)
			if err != nil {
				return err
			}
			fmt.Print(quads)
			return nil
		},
	}
}

func diffCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "diff <a.json> <b.json>",
		Short: "Compare two documents for RDF graph isomorphism",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadDocument(args[0])
			if err != nil {
				return err
			}
			b, err := loadDocument(args[1])
			if err != nil {
				return err
			}
			same, err := codec.Isomorphic(a, b)
			if err != nil {
				return err
			}
			if !same {
				return fmt.Errorf("documents describe different graphs")
			}
			fmt.Println("documents are isomorphic")
			return nil
		},
	}
}
