// Package schemas validates raw JSON documents against the embedded schemas
// before they are decoded into domain types.
package schemas

import (
	"bytes"
	"embed"
	"fmt"
	"sync"

	"github.com/msomdec/knit-designer/internal/domain"
	jsonschema "github.com/santhosh-tekuri/jsonschema/v6"
)

//go:embed *.schema.json
var schemaFS embed.FS

const (
	snapshotSchema = "snapshot.schema.json"
	snapshotURL    = "https://knit-designer.local/schemas/snapshot.schema.json"
)

var (
	compileOnce sync.Once
	snapshot    *jsonschema.Schema
	compileErr  error
)

func compile() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		data, err := schemaFS.ReadFile(snapshotSchema)
		if err != nil {
			compileErr = fmt.Errorf("read schema %s: %w", snapshotSchema, err)
			return
		}
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
		if err != nil {
			compileErr = fmt.Errorf("decode schema %s: %w", snapshotSchema, err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource(snapshotURL, doc); err != nil {
			compileErr = fmt.Errorf("register schema %s: %w", snapshotSchema, err)
			return
		}
		snapshot, compileErr = c.Compile(snapshotURL)
	})
	return snapshot, compileErr
}

// ValidateSnapshot checks a JSON-encoded session snapshot. Schema violations
// are reported as domain.ErrInvalidInput.
func ValidateSnapshot(raw []byte) error {
	schema, err := compile()
	if err != nil {
		return err
	}
	instance, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("%w: snapshot is not valid JSON: %v", domain.ErrInvalidInput, err)
	}
	if err := schema.Validate(instance); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	return nil
}
