package folio

import "fmt"

// StructureError reports input that is unusable as a whole: an unreadable
// file, required columns missing, or a date that does not parse. It aborts
// the batch.
type StructureError struct {
	Reason string
}

func (e *StructureError) Error() string { return e.Reason }

func structureErrorf(format string, args ...any) *StructureError {
	return &StructureError{Reason: fmt.Sprintf(format, args...)}
}

// ParseError reports a single row that cannot be turned into a transaction.
// Row is the 1-based data row number in the source file.
type ParseError struct {
	Row int
	Err error
}

func (e *ParseError) Error() string { return fmt.Sprintf("row %d: %v", e.Row, e.Err) }
func (e *ParseError) Unwrap() error { return e.Err }

func rowErrorf(row int, format string, args ...any) *ParseError {
	return &ParseError{Row: row, Err: fmt.Errorf(format, args...)}
}

// Warning records a non-fatal defect found while reading a row. The corrected
// value is already in use; warnings are collected for the caller to log.
type Warning struct {
	Row int
	Msg string
}

func (w Warning) String() string { return fmt.Sprintf("row %d: %s", w.Row, w.Msg) }

func warningf(row int, format string, args ...any) Warning {
	return Warning{Row: row, Msg: fmt.Sprintf(format, args...)}
}
