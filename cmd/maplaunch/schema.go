package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/reglet-dev/reglet-maplaunch/schema"
)

func newSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema [kind]",
		Short: "Print the JSON schema of request documents",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			registry, err := schema.NewDefaultRegistry()
			if err != nil {
				return err
			}

			kind := schema.LaunchRequestKind
			if len(args) == 1 {
				kind = args[0]
			}
			s, ok := registry.GetSchema(kind)
			if !ok {
				return fmt.Errorf("unknown schema %q (known: %s)", kind, strings.Join(registry.List(), ", "))
			}
			fmt.Fprintln(cmd.OutOrStdout(), s)
			return nil
		},
	}
}
