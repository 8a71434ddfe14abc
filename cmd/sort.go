package cmd

import (
	"github.com/compozy/semver/internal/usecase"
	"github.com/spf13/cobra"
)

func newSortCmd() *cobra.Command {
	var sortReverse bool
	cmd := &cobra.Command{
		Use:   "sort [version...]",
		Short: "Print versions ordered by precedence",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newContainer(cmd)
			if err != nil {
				return err
			}
			defer c.close()
			uc := &usecase.SortVersionsUseCase{Input: c.input, Logger: c.log}
			vs, err := uc.Execute(cmd.Context(), usecase.SortRequest{
				Args:    args,
				Lenient: c.cfg.Lenient,
				Reverse: sortReverse,
			})
			if err != nil {
				return err
			}
			return writeVersions(cmd.OutOrStdout(), c.cfg, vs)
		},
	}
	cmd.Flags().BoolVarP(&sortReverse, "reverse", "r", false, "Sort from highest to lowest")
	return cmd
}
