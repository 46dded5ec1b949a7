package main

import (
	"errors"
	"os"

	"github.com/alecthomas/repr"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/pgsql-ls/core/document"
	"github.com/pgsql-ls/core/splitter"
	"github.com/pgsql-ls/core/token"
)

// scriptedEdit is one entry of a --script YAML file: a byte range and its
// replacement text, or a bare "text" field for a full-document replace.
type scriptedEdit struct {
	Start *int   `yaml:"start"`
	End   *int   `yaml:"end"`
	Text  string `yaml:"text"`
}

var scriptPath string

var watchCmd = &cobra.Command{
	Use:   "watch <file>",
	Short: "Open a file, apply a scripted edit sequence, and print the resulting diff events",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) != 1 {
			_ = cmd.Help()
			return errors.New("need to specify argument <file>")
		}
		if scriptPath == "" {
			return errors.New("--script is required")
		}

		cfg := loadConfig()
		contents, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		scriptRaw, err := os.ReadFile(scriptPath)
		if err != nil {
			return err
		}
		var scripted []scriptedEdit
		if err := yaml.Unmarshal(scriptRaw, &scripted); err != nil {
			return err
		}

		opts := splitter.Options{Debug: cfg.Debug, Logger: log}
		doc := document.Open(args[0], string(contents), 1, opts)

		for i, se := range scripted {
			edit := document.Edit{Text: se.Text}
			if se.Start != nil && se.End != nil {
				edit.Range = &token.Span{Start: *se.Start, End: *se.End}
			}
			events := doc.Apply(document.ChangeFileParams{
				Path:    args[0],
				Version: i + 2,
				Changes: []document.Edit{edit},
			})
			for _, ev := range events {
				if debugFlag {
					repr.Println(ev)
					continue
				}
				printChange(ev)
			}
		}
		return nil
	},
}

func printChange(ev document.StatementChange) {
	switch ev.Kind {
	case document.ChangeAdded:
		os.Stdout.WriteString("added " + ev.AddedStmt.Path + "\n")
	case document.ChangeDeleted:
		os.Stdout.WriteString("deleted " + ev.DeletedStmt.Path + "\n")
	case document.ChangeModified:
		os.Stdout.WriteString("modified " + ev.OldStmt.Path + "\n")
	}
}

func init() {
	watchCmd.Flags().StringVar(&scriptPath, "script", "", "path to a YAML file listing edits to apply in order")
	rootCmd.AddCommand(watchCmd)
}
