package usecase

import (
	"context"
	"fmt"

	"github.com/compozy/semver/internal/repository"
	"github.com/compozy/semver/pkg/semver"
	"go.uber.org/zap"
)

type SortRequest struct {
	Args    []string
	Lenient bool
	Reverse bool
}

// SortVersionsUseCase contains the logic for the sort command.
type SortVersionsUseCase struct {
	Input  repository.InputRepository
	Logger *zap.Logger
}

// Execute parses every input and orders the result by precedence.
func (uc *SortVersionsUseCase) Execute(ctx context.Context, req SortRequest) ([]*semver.Version, error) {
	raw, err := uc.Input.ReadVersions(ctx, req.Args)
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	if len(raw) == 0 {
		return nil, ErrNoVersions
	}
	vs, err := parseAll(uc.Logger, raw, req.Lenient)
	if err != nil {
		return nil, err
	}
	if req.Reverse {
		semver.SortDescending(vs)
	} else {
		semver.Sort(vs)
	}
	uc.Logger.Debug("sorted versions", zap.Int("count", len(vs)), zap.Bool("reverse", req.Reverse))
	return vs, nil
}
