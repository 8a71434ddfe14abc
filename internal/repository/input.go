package repository

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// InputRepository supplies the raw version strings a command operates on.
type InputRepository interface {
	ReadVersions(ctx context.Context, args []string) ([]string, error)
}

type streamInputRepository struct {
	r io.Reader
}

// NewInputRepository returns an InputRepository that prefers arguments and falls
// back to newline-separated input from r when args is empty or is exactly "-".
// Blank lines and lines starting with # are skipped.
func NewInputRepository(r io.Reader) InputRepository {
	return &streamInputRepository{r: r}
}

func (s *streamInputRepository) ReadVersions(ctx context.Context, args []string) ([]string, error) {
	if len(args) > 0 && !(len(args) == 1 && args[0] == "-") {
		return args, nil
	}
	var out []string
	scanner := bufio.NewScanner(s.r)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		out = append(out, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read versions: %w", err)
	}
	return out, nil
}
