package usecase

import (
	"context"

	"github.com/compozy/semver/pkg/semver"
	"go.uber.org/zap"
)

// CompareRequest holds the two operands and the precision to compare at.
type CompareRequest struct {
	Left      string
	Right     string
	Precision semver.Precision
	Lenient   bool
}

// CompareVersionsUseCase contains the logic for the compare command.
type CompareVersionsUseCase struct {
	Logger *zap.Logger
}

// Execute returns -1, 0 or 1.
func (uc *CompareVersionsUseCase) Execute(ctx context.Context, req CompareRequest) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	left, err := parseVersion(req.Left, req.Lenient)
	if err != nil {
		return 0, err
	}
	right, err := parseVersion(req.Right, req.Lenient)
	if err != nil {
		return 0, err
	}
	result := semver.CompareAt(left, right, req.Precision)
	uc.Logger.Debug("compared versions",
		zap.Stringer("left", left),
		zap.Stringer("right", right),
		zap.Stringer("precision", req.Precision),
		zap.Int("result", result),
	)
	return result, nil
}
