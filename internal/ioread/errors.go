package ioread

import (
	"fmt"

	"github.com/baactools/baacprep/pkg/errcode"
	"github.com/gnames/gn"
)

// ReadTableError creates an error for when a raw table file cannot be
// read or parsed.
func ReadTableError(path string, err error) error {
	msg := `Cannot read the raw table

<em>File:</em> %s

<em>Possible causes:</em>
  - File does not exist in the dataset directory
  - File is not a semicolon-separated CSV
  - Permission denied

<em>How to fix:</em>
  1. Check if file exists: <em>ls -l %s</em>
  2. Check the dataset directory and file names in config.yaml
     and datasets.yaml`

	vars := []any{path, path}

	return &gn.Error{
		Code: errcode.ReadTableError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("failed to read table: %w", err),
	}
}

// EmptyTableError creates an error for a table file with no data rows.
func EmptyTableError(path string) error {
	msg := `The raw table <em>%s</em> has no data rows

A header alone is not a usable dataset; no output is published for an
empty input.`

	vars := []any{path}

	return &gn.Error{
		Code: errcode.EmptyTableError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("table %s is empty", path),
	}
}
