// Package iopublish writes the two prepared tables for the dashboard
// layer: comma-separated CSV files with a UTF-8 byte-order mark (so
// accented labels survive spreadsheet tools), and optionally an embedded
// SQLite database holding both tables.
package iopublish

import (
	"bufio"
	"encoding/csv"
	"log/slog"
	"os"

	"github.com/baactools/baacprep/pkg/tables"
)

// utf8BOM is the UTF-8 signature expected by spreadsheet tools for
// accented text.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// CSV writes one table to path as a comma-separated file with header and
// a UTF-8 BOM.
func CSV(path string, t *tables.Table) error {
	f, err := os.Create(path)
	if err != nil {
		return PublishCSVError(path, err)
	}
	defer f.Close()

	buf := bufio.NewWriter(f)
	if _, err = buf.Write(utf8BOM); err != nil {
		return PublishCSVError(path, err)
	}

	w := csv.NewWriter(buf)
	if err = w.Write(t.Header()); err != nil {
		return PublishCSVError(path, err)
	}
	for i := 0; i < t.Len(); i++ {
		if err = w.Write(t.Row(i)); err != nil {
			return PublishCSVError(path, err)
		}
	}
	w.Flush()
	if err = w.Error(); err != nil {
		return PublishCSVError(path, err)
	}
	if err = buf.Flush(); err != nil {
		return PublishCSVError(path, err)
	}
	if err = f.Close(); err != nil {
		return PublishCSVError(path, err)
	}

	slog.Info("Published CSV", "path", path, "rows", t.Len())
	return nil
}
