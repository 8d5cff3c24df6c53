package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"workbook-generator/internal/config"
)

// IntrospectCmd returns the introspect command.
func IntrospectCmd(cfg *config.Config) *cobra.Command {
	var headerFlags []string

	cmd := &cobra.Command{
		Use:   "introspect [source]",
		Short: "Print the raw introspection document of a GraphQL schema",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			headers, err := parseHeaders(headerFlags)
			if err != nil {
				return err
			}

			source, err := readSource(args[0])
			if err != nil {
				return err
			}

			doc, err := newIntrospector(cfg, headers).Introspect(cmd.Context(), source)
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")

			if err := enc.Encode(doc); err != nil {
				return fmt.Errorf("encode introspection document: %w", err)
			}

			return nil
		},
	}

	cmd.Flags().StringArrayVarP(&headerFlags, "header", "H", nil, "extra request header for URL sources (key=value, repeatable)")

	return cmd
}
