// Package report writes attendee digests to disk or a stream.
//
// CSV is the primary format and may carry a UTF-8 byte order mark so that
// spreadsheet tools pick the right encoding. XLSX workbooks are produced with
// excelize and JSON as an array of records. File output goes through
// fileutil.WriteAtomic so an interrupted run never leaves a truncated digest.
package report
