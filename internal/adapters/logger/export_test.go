// export_test.go exports private functions for white-box testing.
package logger

// Exported aliases for the private error formatting helpers.
var (
	CollectErrorEntries = collectErrorEntries
	FormatErrorEntries  = formatErrorEntries
)

// ErrorEntry aliases the private chain entry type for test assertions.
type ErrorEntry = errorEntry
