package errcode

import (
	"github.com/gnames/gn"
)

const (
	UnknownError gn.ErrorCode = iota

	// File System errors
	CreateDirError
	CopyFileError
	ReadFileError

	// Logging errors
	CreateLogFileError

	// Dataset manifest errors
	DatasetManifestError

	// Reader errors
	ReadTableError
	EmptyTableError

	// Publish errors
	PublishCSVError
	PublishSQLiteError
)
