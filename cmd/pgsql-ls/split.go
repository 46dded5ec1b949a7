package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/alecthomas/repr"
	"github.com/spf13/cobra"

	"github.com/pgsql-ls/core/splitter"
)

var splitCmd = &cobra.Command{
	Use:   "split <file>",
	Short: "Split a SQL file into top-level statement ranges and print them",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) != 1 {
			_ = cmd.Help()
			return errors.New("need to specify argument <file>")
		}

		cfg := loadConfig()
		contents, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		if cfg.MaxDocumentBytes > 0 && len(contents) > cfg.MaxDocumentBytes {
			return fmt.Errorf("%s is %d bytes, exceeds max_document_bytes %d", args[0], len(contents), cfg.MaxDocumentBytes)
		}

		result := splitter.SplitWithOptions(string(contents), splitter.Options{Debug: cfg.Debug, Logger: log})
		for _, d := range result.Diagnostics {
			fmt.Fprintln(os.Stderr, d.String())
		}
		for _, r := range result.Ranges {
			if debugFlag {
				fmt.Println(repr.String(r))
				continue
			}
			fmt.Printf("%s [%d:%d]\n", r.Kind, r.Range.Start, r.Range.End)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(splitCmd)
}
