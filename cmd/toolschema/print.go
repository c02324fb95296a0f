package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/spetersoncode/toolschema"
	"github.com/spetersoncode/toolschema/provider/anthropic"
	"github.com/spetersoncode/toolschema/provider/google"
	"github.com/spetersoncode/toolschema/schema"
)

func newPrintCmd(a *app) *cobra.Command {
	var (
		format string
		check  bool
	)

	cmd := &cobra.Command{
		Use:   "print",
		Short: "Print the example tool descriptors as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tools := exampleRegistry(a.provider).Tools()

			if check {
				if err := checkTools(tools); err != nil {
					return err
				}
				a.logger.Info("descriptors satisfy strict mode", "tools", len(tools))
			}

			out, err := convertFor(toolschema.Provider(format), tools)
			if err != nil {
				return err
			}

			enc := json.NewEncoder(a.stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(out)
		},
	}
	cmd.Flags().StringVar(&format, "format", toolschema.ProviderOpenAI.String(), "wire format: openai, anthropic or google")
	cmd.Flags().BoolVar(&check, "check", false, "verify every descriptor against the strict-mode rules")
	return cmd
}

// checkTools verifies the strict invariant on every descriptor.
func checkTools(tools []toolschema.Tool) error {
	for _, t := range tools {
		m, err := t.Schema()
		if err != nil {
			return err
		}
		if err := schema.Check(m); err != nil {
			return fmt.Errorf("tool %s: %w", t.Name, err)
		}
	}
	return nil
}

// convertFor returns the provider-specific form of tools.
func convertFor(p toolschema.Provider, tools []toolschema.Tool) (any, error) {
	switch p {
	case toolschema.ProviderOpenAI:
		return tools, nil
	case toolschema.ProviderAnthropic:
		return anthropic.ConvertTools(tools)
	case toolschema.ProviderGoogle:
		return google.ConvertTools(tools)
	default:
		return nil, fmt.Errorf("unknown format %q (want openai, anthropic or google)", p)
	}
}
