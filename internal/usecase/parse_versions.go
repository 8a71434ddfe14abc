package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/compozy/semver/internal/repository"
	"github.com/compozy/semver/pkg/semver"
	"go.uber.org/zap"
)

// ErrNoVersions is returned when a command receives no version input at all.
var ErrNoVersions = errors.New("no versions provided")

// ParseRequest selects the inputs and grammar for ParseVersionsUseCase.
type ParseRequest struct {
	Args    []string
	Lenient bool
}

// ParseVersionsUseCase contains the logic for the parse command.
type ParseVersionsUseCase struct {
	Input  repository.InputRepository
	Logger *zap.Logger
}

// Execute runs the use case.
func (uc *ParseVersionsUseCase) Execute(ctx context.Context, req ParseRequest) ([]*semver.Version, error) {
	raw, err := uc.Input.ReadVersions(ctx, req.Args)
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	if len(raw) == 0 {
		return nil, ErrNoVersions
	}
	return parseAll(uc.Logger, raw, req.Lenient)
}

func parseAll(log *zap.Logger, raw []string, lenient bool) ([]*semver.Version, error) {
	out := make([]*semver.Version, 0, len(raw))
	for _, s := range raw {
		v, err := parseVersion(s, lenient)
		if err != nil {
			return nil, err
		}
		log.Debug("parsed version", zap.String("input", s), zap.Stringer("version", v), zap.Bool("lenient", lenient))
		out = append(out, v)
	}
	return out, nil
}

func parseVersion(s string, lenient bool) (*semver.Version, error) {
	var (
		v   *semver.Version
		err error
	)
	if lenient {
		v, err = semver.Parse(s)
	} else {
		v, err = semver.New(s)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse version: %w", err)
	}
	return v, nil
}
