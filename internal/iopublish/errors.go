package iopublish

import (
	"fmt"

	"github.com/baactools/baacprep/pkg/errcode"
	"github.com/gnames/gn"
)

// PublishCSVError creates an error for a failed CSV output.
func PublishCSVError(path string, err error) error {
	msg := `Cannot write the output table

<em>File:</em> %s

<em>Possible causes:</em>
  - Output directory does not exist
  - Permission denied
  - Disk full

The partially written file should not be consumed.`

	vars := []any{path}

	return &gn.Error{
		Code: errcode.PublishCSVError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("failed to publish csv: %w", err),
	}
}

// PublishSQLiteError creates an error for a failed SQLite output.
func PublishSQLiteError(path string, err error) error {
	msg := `Cannot write the SQLite database

<em>File:</em> %s

<em>Possible causes:</em>
  - Output directory does not exist
  - Permission denied
  - Another process holds the database open`

	vars := []any{path}

	return &gn.Error{
		Code: errcode.PublishSQLiteError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("failed to publish sqlite: %w", err),
	}
}
