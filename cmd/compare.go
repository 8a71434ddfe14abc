package cmd

import (
	"fmt"

	"github.com/compozy/semver/internal/usecase"
	"github.com/spf13/cobra"
)

type compareView struct {
	Left      string `json:"left" yaml:"left"`
	Right     string `json:"right" yaml:"right"`
	Precision string `json:"precision" yaml:"precision"`
	Result    int    `json:"result" yaml:"result"`
}

func newCompareCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare <a> <b>",
		Short: "Print -1, 0 or 1 as a is lower than, equal to or higher than b",
		Long: `Compare two versions by SemVer 2.0.0 precedence. Build metadata is ignored.

--precision limits the comparison: major compares MAJOR only, minor compares
MAJOR.MINOR, patch compares MAJOR.MINOR.PATCH and full also applies
pre-release precedence.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newContainer(cmd)
			if err != nil {
				return err
			}
			defer c.close()
			uc := &usecase.CompareVersionsUseCase{Logger: c.log}
			precision := c.cfg.ComparePrecision()
			result, err := uc.Execute(cmd.Context(), usecase.CompareRequest{
				Left:      args[0],
				Right:     args[1],
				Precision: precision,
				Lenient:   c.cfg.Lenient,
			})
			if err != nil {
				return err
			}
			view := compareView{Left: args[0], Right: args[1], Precision: precision.String(), Result: result}
			if done, err := writeStructured(cmd.OutOrStdout(), c.cfg.Output, view); done {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), result)
			return err
		},
	}
	cmd.Flags().String("precision", "full", "Comparison precision: major, minor, patch or full")
	return cmd
}
