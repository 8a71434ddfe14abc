package cmd

import (
	"github.com/compozy/semver/internal/usecase"
	"github.com/spf13/cobra"
)

func newBumpCmd() *cobra.Command {
	var (
		bumpPreRelease string
		bumpBuild      string
	)
	cmd := &cobra.Command{
		Use:   "bump <major|minor|patch|prerelease> [version]",
		Short: "Increment one field of a version",
		Long: `Increment one field of a version and print the result.

major, minor and patch reset every lower field and drop the pre-release and
build. prerelease increments a trailing numeric identifier (alpha.5 -> alpha.6),
appends .1 to a non-numeric one (alpha -> alpha.1), or starts a pre-release of
the next patch when none is set (1.3.37 -> 1.3.38-1).`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			part, err := usecase.ParseBumpPart(args[0])
			if err != nil {
				return err
			}
			c, err := newContainer(cmd)
			if err != nil {
				return err
			}
			defer c.close()
			uc := &usecase.BumpVersionUseCase{Input: c.input, Logger: c.log}
			v, err := uc.Execute(cmd.Context(), usecase.BumpRequest{
				Part:       part,
				Args:       args[1:],
				Lenient:    c.cfg.Lenient,
				PreRelease: bumpPreRelease,
				Build:      bumpBuild,
			})
			if err != nil {
				return err
			}
			return writeVersion(cmd.OutOrStdout(), c.cfg, v)
		},
	}
	cmd.Flags().StringVar(&bumpPreRelease, "pre", "", "Pre-release identifiers to set after incrementing")
	cmd.Flags().StringVar(&bumpBuild, "build", "", "Build metadata to set after incrementing")
	return cmd
}
