package iodataset

import (
	"fmt"

	"github.com/baactools/baacprep/pkg/errcode"
	"github.com/gnames/gn"
)

// ManifestError creates an error for when datasets.yaml cannot be loaded.
func ManifestError(path string, err error) error {
	msg := `Cannot load the datasets manifest

<em>Manifest file:</em> %s

<em>Possible causes:</em>
  - File does not exist
  - Invalid YAML format
  - Missing file names for one of the four tables

<em>How to fix:</em>
  1. Check if file exists: <em>ls -l %s</em>
  2. Validate YAML syntax
  3. Delete the file and run baacprep again to regenerate the default`

	vars := []any{path, path}

	return &gn.Error{
		Code: errcode.DatasetManifestError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("failed to load datasets manifest: %w", err),
	}
}
