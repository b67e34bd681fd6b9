package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	maplaunch "github.com/reglet-dev/reglet-maplaunch"
	"github.com/reglet-dev/reglet-maplaunch/catalog"
	"github.com/reglet-dev/reglet-maplaunch/directions"
	"github.com/reglet-dev/reglet-maplaunch/picker"
)

// applicationPicker chooses among offered applications.
type applicationPicker interface {
	IsInteractive() bool
	PickApplication(ctx context.Context, apps []catalog.Summary) (catalog.AppKey, error)
	PickMode(ctx context.Context, current directions.TransportMode) (directions.TransportMode, error)
}

type resolveOutput struct {
	App catalog.AppKey `json:"app"`
	URI maplaunch.Link `json:"uri"`
}

func newResolveCmd(build envBuilder) *cobra.Command {
	var (
		flags  requestFlags
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Print the deep link for a directions request",
		Example: `  maplaunch resolve --app google --from 43.6047,1.4442 --to 43.6293,1.3638 --to-name Airport
  maplaunch resolve --app apple --from-address "25 Rue Roquelaine, Toulouse" --to-address "Blagnac"
  maplaunch resolve --request trip.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := build(cmd)
			if err != nil {
				return err
			}
			req, err := flags.load()
			if err != nil {
				return err
			}
			in, err := toInputs(req, false)
			if err != nil {
				return err
			}

			link, err := e.launcher.Resolve(cmd.Context(), in.app, in.from, in.to, in.mode)
			if err != nil {
				return err
			}

			if asJSON {
				return json.NewEncoder(cmd.OutOrStdout()).Encode(resolveOutput{App: in.app, URI: link})
			}
			fmt.Fprintln(cmd.OutOrStdout(), link.String())
			return nil
		},
	}
	flags.register(cmd)
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON")
	return cmd
}

func newOpenCmd(build envBuilder, d deps) *cobra.Command {
	var flags requestFlags

	cmd := &cobra.Command{
		Use:   "open",
		Short: "Open a directions request in a navigation app",
		Long: `Open resolves the request and hands the deep link to the desktop.
Without --app, an interactive terminal offers every application able to
handle the request. Without --mode, it also asks for the transport mode.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := build(cmd)
			if err != nil {
				return err
			}
			req, err := flags.load()
			if err != nil {
				return err
			}

			p := d.newPicker()
			in, err := toInputs(req, p.IsInteractive())
			if err != nil {
				return err
			}

			if in.app == "" {
				offered := e.launcher.AvailableFor(cmd.Context(), in.from, in.to)
				if in.app, err = p.PickApplication(cmd.Context(), offered); err != nil {
					if errors.Is(err, picker.ErrNoApplications) {
						return fmt.Errorf("%w for this request", err)
					}
					return err
				}
			}

			if in.mode == "" && p.IsInteractive() {
				if in.mode, err = p.PickMode(cmd.Context(), e.cfg.Mode()); err != nil {
					return err
				}
			}

			result, err := e.launcher.Launch(cmd.Context(), in.app, in.from, in.to, in.mode)
			if err != nil {
				return err
			}
			if !result.Accepted {
				return fmt.Errorf("the desktop declined to open %s", result.Link.Redacted())
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Opened %s (attempt %s)\n", in.app, result.AttemptID)
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}
