package main

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/reglet-dev/reglet-maplaunch/catalog"
)

type envBuilder func(cmd *cobra.Command) (*env, error)

func newAppsCmd(build envBuilder) *cobra.Command {
	var (
		available bool
		asJSON    bool
	)

	cmd := &cobra.Command{
		Use:   "apps",
		Short: "List navigation applications",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := build(cmd)
			if err != nil {
				return err
			}

			apps := e.launcher.Applications()
			if available {
				apps = e.launcher.Available(cmd.Context())
			}
			return printSummaries(cmd, e.catalog, apps, asJSON)
		},
	}
	cmd.Flags().BoolVar(&available, "available", false, "only list applications the host can open")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON")
	return cmd
}

func printSummaries(cmd *cobra.Command, cat *catalog.Catalog, apps []catalog.Summary, asJSON bool) error {
	out := cmd.OutOrStdout()
	if asJSON {
		if apps == nil {
			apps = []catalog.Summary{}
		}
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(apps)
	}

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "KEY\tNAME\tSCHEME\tMODES")
	for _, app := range apps {
		d, err := cat.Describe(app.Key)
		if err != nil {
			return err
		}
		scheme := d.URISchemePrefix
		if scheme == "" {
			scheme = "http://maps.apple.com/"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", app.Key, app.DisplayName, scheme, modeList(d))
	}
	return w.Flush()
}

func modeList(d catalog.Descriptor) string {
	modes := d.TransportModes()
	if len(modes) == 0 {
		return "-"
	}
	names := make([]string, len(modes))
	for i, m := range modes {
		names[i] = m.String()
	}
	return strings.Join(names, ",")
}
