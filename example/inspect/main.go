// Copyright (c) 2025 Strataconf and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Command inspect loads one or more configuration files into a pool
// and prints either the whole resolved table or the values of the
// requested keys. It exists to demonstrate the engine's data flow:
// cursors feed the pool, callers read through it.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/strataconf/strata"
	"github.com/strataconf/strata/parse"

	"github.com/spf13/cobra"
)

func main() {
	var files []string
	var section string
	var verbose bool

	cmd := &cobra.Command{
		Use:   "inspect [keys...]",
		Short: "resolve configuration values across layered files",
		RunE: func(cmd *cobra.Command, args []string) error {
			pool := strata.New()
			if err := load(pool, files, verbose); err != nil {
				return err
			}

			if len(args) == 0 {
				for _, e := range pool.Entries() {
					fmt.Fprintf(cmd.OutOrStdout(), "[%s] %s = %s\n", e.Section, e.Key, e.Value)
				}
				return nil
			}

			for _, k := range args {
				v, err := pool.Get(k, section)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), v)
			}
			return nil
		},
	}
	cmd.Flags().StringArrayVarP(&files, "file", "f", nil, "config file; repeat to layer, later files win")
	cmd.Flags().StringVarP(&section, "section", "s", strata.SectionFromKey, "section to look keys up in")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "read every file as INI and log skipped lines")

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// load fills the pool file by file so the INI skipped-line policy can
// be wired to a logger; strata.LoadFiles covers the non-verbose path.
func load(pool *strata.Pool, files []string, verbose bool) error {
	if !verbose {
		return strata.LoadFiles(pool, files...)
	}

	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))

	for _, f := range files {
		buf, err := parse.OpenFile(f)
		if err != nil {
			return err
		}
		if err := pool.Fill(parse.NewINI(buf, parse.LogSkipped(log.With("file", f)))); err != nil {
			return err
		}
	}
	return nil
}
