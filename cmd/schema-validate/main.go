package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	schemavalidator "github.com/devtin/schema-validator"
	"github.com/devtin/schema-validator/contracts"
)

var (
	// Version information
	version   = "dev"
	buildTime = "unknown"
	gitCommit = "unknown"
)

func main() {
	var (
		schemaPath string
		verbose    bool
	)

	rootCmd := &cobra.Command{
		Use:   "schema-validate [payload-files...]",
		Short: "Validate data payloads against a schema definition",
		Long: `Schema-validate checks JSON or YAML payloads against a YAML schema
definition, printing every offending property by its dotted path. Reading
from stdin is supported by passing "-" as the payload file.`,
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, gitCommit, buildTime),
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if verbose {
				slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
					Level: slog.LevelDebug,
				})))
			}

			definition, err := os.ReadFile(schemaPath)
			if err != nil {
				return fmt.Errorf("reading schema definition: %w", err)
			}
			s, err := schemavalidator.FromYAML(definition)
			if err != nil {
				return fmt.Errorf("building schema: %w", err)
			}

			ctx := cmd.Context()
			failed := false
			for _, path := range args {
				if err := validateFile(ctx, s, path); err != nil {
					failed = true
				}
			}
			if failed {
				// The errors were already printed per payload.
				cmd.SilenceUsage = true
				cmd.SilenceErrors = true
				return fmt.Errorf("validation failed")
			}
			return nil
		},
	}

	rootCmd.Flags().StringVarP(&schemaPath, "schema", "s", "schema.yaml", "YAML schema definition file")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable parse debug output")

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func validateFile(ctx context.Context, s *schemavalidator.Schema, path string) error {
	payload, err := readPayload(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
		return err
	}

	out, err := parsePayload(ctx, s, payload)
	if err != nil {
		printErrors(path, err)
		return err
	}

	encoded, err := yaml.Marshal(out)
	if err != nil {
		return err
	}
	fmt.Printf("%s: valid\n%s", path, indent(string(encoded)))
	return nil
}

func readPayload(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

// parsePayload accepts JSON and YAML payloads: JSON documents go through the
// lenient JSON facade, everything else decodes as YAML.
func parsePayload(ctx context.Context, s *schemavalidator.Schema, payload []byte) (any, error) {
	trimmed := strings.TrimSpace(string(payload))
	if strings.HasPrefix(trimmed, "{") || strings.HasPrefix(trimmed, "[") {
		return schemavalidator.ParseJSON(ctx, s, payload)
	}

	var v any
	if err := yaml.Unmarshal(payload, &v); err != nil {
		return nil, fmt.Errorf("decoding payload: %w", err)
	}
	return s.Parse(ctx, v)
}

func printErrors(path string, err error) {
	fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)

	group, ok := err.(*contracts.ValidationErrors)
	if !ok {
		return
	}
	for _, ferr := range group.Flatten() {
		location := ""
		if ferr.Field != nil && ferr.Field.FullPath() != "" {
			location = ferr.Field.FullPath() + ": "
		}
		fmt.Fprintf(os.Stderr, "  %s%s\n", location, ferr.Message)
	}
}

func indent(s string) string {
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	for i, line := range lines {
		lines[i] = "  " + line
	}
	return strings.Join(lines, "\n") + "\n"
}
