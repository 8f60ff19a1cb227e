package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/msomdec/knit-designer/internal/domain"
	"github.com/msomdec/knit-designer/internal/schemas"
)

// readSnapshot loads and validates a snapshot document. A path of "-" reads
// from stdin.
func readSnapshot(path string, stdin io.Reader) (*domain.SessionSnapshot, error) {
	var (
		raw []byte
		err error
	)
	if path == "-" {
		raw, err = io.ReadAll(stdin)
	} else {
		raw, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("read snapshot: %w", err)
	}

	if err := schemas.ValidateSnapshot(raw); err != nil {
		return nil, err
	}
	var snapshot domain.SessionSnapshot
	if err := json.Unmarshal(raw, &snapshot); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	return &snapshot, nil
}
