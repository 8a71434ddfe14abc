package cmd

import (
	"github.com/compozy/semver/internal/usecase"
	"github.com/spf13/cobra"
)

func newParseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse [version...]",
		Short: "Validate versions and print their canonical form",
		Long: `Validate each version and print it in canonical form.

With --output json or yaml every version is printed with its individual fields.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newContainer(cmd)
			if err != nil {
				return err
			}
			defer c.close()
			uc := &usecase.ParseVersionsUseCase{Input: c.input, Logger: c.log}
			vs, err := uc.Execute(cmd.Context(), usecase.ParseRequest{Args: args, Lenient: c.cfg.Lenient})
			if err != nil {
				return err
			}
			return writeVersions(cmd.OutOrStdout(), c.cfg, vs)
		},
	}
}
