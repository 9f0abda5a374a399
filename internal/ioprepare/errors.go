package ioprepare

import (
	"fmt"

	"github.com/gnames/gnlib"
)

// OutputDirError is returned when the output directory cannot be created.
type OutputDirError struct {
	error
	gnlib.MessageBase
}

// NewOutputDirError creates a new output directory error.
func NewOutputDirError(dir string, err error) error {
	msgBase := gnlib.MessageBase{
		Msg: `<title>Cannot Create Output Directory</title>
<warn>Failed to create the directory for published tables.</warn>

<em>Directory:</em> %s

<em>How to fix:</em>
  1. Check that the parent directory exists and is writable
  2. Check the <em>output.dir</em> setting in config.yaml
  3. Override the directory with the <em>--output</em> flag
`,
		Vars: []any{dir},
	}

	return OutputDirError{
		error:       fmt.Errorf("failed to create output dir %s: %w", dir, err),
		MessageBase: msgBase,
	}
}

// CancelledError is returned when preparation is interrupted before
// the tables are published.
type CancelledError struct {
	error
	gnlib.MessageBase
}

// NewCancelledError creates a new cancellation error.
func NewCancelledError(err error) error {
	msgBase := gnlib.MessageBase{
		Msg: `<title>Preparation Cancelled</title>
<warn>The run was interrupted before the tables were published.</warn>

No partial CSV output is left behind; rerun <em>baacprep prepare</em>
to produce the tables.
`,
		Vars: nil,
	}

	return CancelledError{
		error:       fmt.Errorf("preparation cancelled: %w", err),
		MessageBase: msgBase,
	}
}
