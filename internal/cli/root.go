package cli

import (
	"github.com/spf13/cobra"

	"workbook-generator/internal/config"
)

// Version is stamped at build time.
var Version = "dev"

// RootCmd assembles the command tree.
func RootCmd(cfg *config.Config) *cobra.Command {
	root := &cobra.Command{
		Use:     "workbook-generator",
		Short:   "Derive data-import workbooks from GraphQL schemas",
		Version: Version,
		Long: `workbook-generator turns a GraphQL schema into a workbook of typed sheets:
one sheet per object type, one field per supported object field, with
object references mapped to has-one reference fields.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(GenerateCmd(cfg))
	root.AddCommand(IntrospectCmd(cfg))
	root.AddCommand(ServeCmd(cfg))

	return root
}
