// Package catalogfile reads stitch pattern catalog files. Files are JSONC
// (JSON with // and /* */ comments) shaped as
//
//	{
//	  // textures
//	  "patterns": [
//	    {"name": "Seed Stitch", "category": "texture", "repeatWidth": 2, "repeatHeight": 2}
//	  ]
//	}
package catalogfile

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/msomdec/knit-designer/internal/domain"
	jsonc "github.com/muhammadmuzzammil1998/jsonc"
)

type file struct {
	Patterns []entry `json:"patterns"`
}

type entry struct {
	Name         string `json:"name"`
	Category     string `json:"category"`
	Description  string `json:"description"`
	RepeatWidth  int    `json:"repeatWidth"`
	RepeatHeight int    `json:"repeatHeight"`
}

// Decode parses one catalog document.
func Decode(data []byte) ([]domain.StitchPatternRef, error) {
	var f file
	if err := json.Unmarshal(jsonc.ToJSON(data), &f); err != nil {
		return nil, err
	}
	refs := make([]domain.StitchPatternRef, 0, len(f.Patterns))
	for _, e := range f.Patterns {
		refs = append(refs, domain.StitchPatternRef{
			Name:         e.Name,
			Category:     e.Category,
			Description:  e.Description,
			RepeatWidth:  e.RepeatWidth,
			RepeatHeight: e.RepeatHeight,
		})
	}
	return refs, nil
}

// DecodeFile loads a single catalog file.
func DecodeFile(path string) ([]domain.StitchPatternRef, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	refs, err := Decode(b)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return refs, nil
}

// Glob loads every catalog file matching a doublestar pattern such as
// "catalog/**/*.jsonc". Files are read in lexical order. It returns the
// matched paths alongside the combined entries.
func Glob(pattern string) ([]string, []domain.StitchPatternRef, error) {
	paths, err := doublestar.FilepathGlob(pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(paths) == 0 {
		return nil, nil, fmt.Errorf("no catalog files match %s", pattern)
	}
	sort.Strings(paths)

	var all []domain.StitchPatternRef
	for _, p := range paths {
		refs, err := DecodeFile(p)
		if err != nil {
			return nil, nil, err
		}
		all = append(all, refs...)
	}
	return paths, all, nil
}
