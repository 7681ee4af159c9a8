package exitcode

const (
	Success         = 0
	UsageError      = 1
	ValidationError = 2
	ExtractError    = 3
	NoData          = 4
	ExportError     = 5
	PartialSuccess  = 6
)
