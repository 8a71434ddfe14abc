package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/compozy/semver/internal/repository"
	"github.com/compozy/semver/pkg/semver"
	"go.uber.org/zap"
)

// BumpPart names the field a bump increments.
type BumpPart string

const (
	BumpMajor      BumpPart = "major"
	BumpMinor      BumpPart = "minor"
	BumpPatch      BumpPart = "patch"
	BumpPreRelease BumpPart = "prerelease"
)

// ParseBumpPart accepts major, minor, patch or prerelease (also "pre").
func ParseBumpPart(s string) (BumpPart, error) {
	switch strings.ToLower(s) {
	case "major":
		return BumpMajor, nil
	case "minor":
		return BumpMinor, nil
	case "patch":
		return BumpPatch, nil
	case "prerelease", "pre":
		return BumpPreRelease, nil
	default:
		return "", fmt.Errorf("unknown part %q: expected major, minor, patch or prerelease", s)
	}
}

// BumpRequest describes one bump. PreRelease and Build, when set, are applied after incrementing.
type BumpRequest struct {
	Part       BumpPart
	Args       []string
	Lenient    bool
	PreRelease string
	Build      string
}

// BumpVersionUseCase contains the logic for the bump command.
type BumpVersionUseCase struct {
	Input  repository.InputRepository
	Logger *zap.Logger
}

// Execute runs the use case.
func (uc *BumpVersionUseCase) Execute(ctx context.Context, req BumpRequest) (*semver.Version, error) {
	raw, err := uc.Input.ReadVersions(ctx, req.Args)
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	switch len(raw) {
	case 0:
		return nil, ErrNoVersions
	case 1:
	default:
		return nil, fmt.Errorf("bump takes exactly one version, got %d", len(raw))
	}
	v, err := parseVersion(raw[0], req.Lenient)
	if err != nil {
		return nil, err
	}
	before := v.String()
	switch req.Part {
	case BumpMajor:
		v.IncrementMajor()
	case BumpMinor:
		v.IncrementMinor()
	case BumpPatch:
		v.IncrementPatch()
	case BumpPreRelease:
		v.IncrementPreRelease()
	default:
		return nil, fmt.Errorf("unknown part %q", req.Part)
	}
	if req.PreRelease != "" {
		if err := v.SetPreRelease(req.PreRelease); err != nil {
			return nil, fmt.Errorf("failed to set pre-release: %w", err)
		}
	}
	if req.Build != "" {
		if err := v.SetBuild(req.Build); err != nil {
			return nil, fmt.Errorf("failed to set build: %w", err)
		}
	}
	uc.Logger.Debug("bumped version",
		zap.String("part", string(req.Part)),
		zap.String("from", before),
		zap.Stringer("to", v),
	)
	return v, nil
}
