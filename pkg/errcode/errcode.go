package errcode

import (
	"github.com/gnames/gn"
)

const (
	UnknownError gn.ErrorCode = iota

	// File System errors
	CreateDirError
	ConfigFileError
	ReadFileError
	InputFileNotFoundError

	// Logging errors
	CreateLogFileError

	// Input parsing errors
	ParseReferenceError
	ParseAddressesError
	ParseWordListError

	// Gazetteer errors
	GazetteerDuplicateTownError
	GazetteerInconsistentParentError
	GazetteerNoMetroError

	// Model errors
	ModelEncodeError
	ModelDecodeError
	ModelEmptyError

	// Resolution errors
	ResolveRowOutOfRangeError
	ResolveWriteError
)
