package main

import (
	"github.com/ghodss/yaml"
	"github.com/spf13/cobra"

	"github.com/chordsat/chordsat/pkg/config"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect search parameters",
	}

	var file string
	show := &cobra.Command{
		Use:   "show",
		Short: "Print the parameters a search would use, as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadParameters(file, cmd)
			if err != nil {
				return err
			}
			out, err := yaml.Marshal(p)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}
	show.Flags().StringVar(&file, "config", "", "parameter file (YAML, JSON or TOML)")
	config.AddFlags(show.Flags())

	schema := &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON schema of parameter files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := config.Schema()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(append(out, '\n'))
			return err
		},
	}

	cmd.AddCommand(show, schema)
	return cmd
}

// loadParameters reads the parameter file, applies the flags set on cmd
// and validates the result.
func loadParameters(file string, cmd *cobra.Command) (config.Parameters, error) {
	p, err := config.Load(file)
	if err != nil {
		return p, err
	}
	if err := p.Override(cmd.Flags()); err != nil {
		return p, err
	}
	return p, p.Validate()
}
