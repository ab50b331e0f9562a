// Package report renders kernel module metadata as key/value text.
//
// A module's metadata arrives as an ordered sequence of raw (key, value)
// records. Two keys are special: "parm" carries a parameter description as
// "name:description" and "parmtype" carries the same parameter's type as
// "name:type". The aggregator merges those two record streams into a single
// parameter table; the renderer turns records and table into the formatted
// report, either in full or filtered down to one field.
package report

import "fmt"

// Keys with aggregation semantics.
const (
	// KeyParm records describe a parameter as "name:description".
	KeyParm = "parm"

	// KeyParmType records describe a parameter as "name:type".
	KeyParmType = "parmtype"

	// KeyFilename is the synthetic field holding the module's resolved path.
	// It never appears as a raw record.
	KeyFilename = "filename"
)

// Info is one raw key/value record extracted from a module. Records with the
// same key may repeat; their relative order reflects the order in the module
// file and is preserved in default-mode output.
type Info struct {
	Key   string
	Value string
}

// Param is one module-loadable parameter, merged from its "parm" and
// "parmtype" records. Either field may be empty, never both.
type Param struct {
	Name        string
	Description string
	Type        string
}

// Options controls how one module's report is formatted. The zero value
// renders the full report with newline-terminated lines.
type Options struct {
	// Field restricts output to the bare values of one key. The synthetic
	// "filename" field short-circuits to the resolved path.
	Field string

	// Null terminates lines with NUL instead of newline and switches plain
	// records to key=value form.
	Null bool
}

func (o Options) separator() byte {
	if o.Null {
		return 0
	}
	return '\n'
}

// MalformedRecordError reports a "parm" or "parmtype" record whose value is
// missing the name separator. The record is skipped; it never creates or
// mutates a parameter table entry.
type MalformedRecordError struct {
	Key   string
	Value string
}

func (e *MalformedRecordError) Error() string {
	return fmt.Sprintf("invalid %q record %q: missing ':'", e.Key, e.Value)
}
