package cmd

import (
	"github.com/compozy/semver/internal/config"
	"github.com/compozy/semver/internal/logger"
	"github.com/compozy/semver/internal/repository"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// container holds all the dependencies for one command invocation.
type container struct {
	cfg   *config.Config
	log   *zap.Logger
	input repository.InputRepository
}

// newContainer loads configuration with cmd's flags applied and wires the
// logger and input to cmd's streams.
func newContainer(cmd *cobra.Command) (*container, error) {
	cfg, err := config.LoadConfig(afero.NewOsFs(), cmd.Flags())
	if err != nil {
		return nil, err
	}
	log, err := logger.New(cfg.LogLevel, cmd.ErrOrStderr())
	if err != nil {
		return nil, err
	}
	return &container{
		cfg:   cfg,
		log:   log,
		input: repository.NewInputRepository(cmd.InOrStdin()),
	}, nil
}

func (c *container) close() {
	_ = c.log.Sync()
}

// InitCommands initializes all commands
func InitCommands() error {
	addCommands(rootCmd)
	return nil
}

func addCommands(root *cobra.Command) {
	root.AddCommand(
		newParseCmd(),
		newBumpCmd(),
		newCompareCmd(),
		newSortCmd(),
		newVersionCmd(),
	)
}
