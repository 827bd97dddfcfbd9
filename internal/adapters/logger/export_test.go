// export_test.go exports private functions for white-box testing.
package logger

type ErrorEntry = errorEntry

var (
	CollectErrorEntries = collectErrorEntries
	FormatErrorEntries  = formatErrorEntries
	ErrorHeadline       = errorHeadline
	WarningHeadline     = warningHeadline
)
