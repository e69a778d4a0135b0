// Command schemadoc loads a YAML schema declaration and prints the
// JSON-Schema document emitted for it, optionally checking the result for
// draft-07 structural compliance.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/mcpkit/schema/internal/compliance"
	"github.com/mcpkit/schema/yamlschema"
)

func main() {
	var (
		check  bool
		indent int
	)

	rootCmd := &cobra.Command{
		Use:           "schemadoc [flags] <file.yaml>",
		Short:         "Emit the JSON-Schema document for a YAML schema declaration",
		Args:          cobra.ExactArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(_ *cobra.Command, args []string) error {
			return run(args[0], check, indent)
		},
	}

	rootCmd.Flags().BoolVar(&check, "check", false, "verify the emitted schema is draft-07 structurally valid")
	rootCmd.Flags().IntVar(&indent, "indent", 2, "number of spaces to indent the JSON output")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func run(path string, check bool, indent int) error {
	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	s, err := yamlschema.Load(data)
	if err != nil {
		return err
	}

	if check {
		if err := compliance.Check(s.JSONSchema()); err != nil {
			return err
		}
	}

	pad := ""
	for i := 0; i < indent; i++ {
		pad += " "
	}

	out, err := json.MarshalIndent(s.JSONSchema(), "", pad)
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}

	fmt.Println(string(out))
	return nil
}
