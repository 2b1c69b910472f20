package cdmn

import (
	"fmt"

	"github.com/emirpasic/gods/maps/linkedhashmap"
)

// ErrorLog collects the raw values of untranslatable cells per column.
// Columns are kept in the order of their first failure, values in the
// order they were added.
type ErrorLog struct {
	columns *linkedhashmap.Map
	n       int
}

func newErrorLog() *ErrorLog {
	return &ErrorLog{columns: linkedhashmap.New()}
}

func (l *ErrorLog) add(header string, values ...string) {
	if len(values) == 0 {
		return
	}
	l.columns.Put(header, append(l.Values(header), values...))
	l.n += len(values)
}

func (l *ErrorLog) merge(other *ErrorLog) {
	for _, header := range other.Columns() {
		l.add(header, other.Values(header)...)
	}
}

func (l *ErrorLog) clone() *ErrorLog {
	c := newErrorLog()
	c.merge(l)
	return c
}

// Columns returns the headers of the columns with failures.
func (l *ErrorLog) Columns() []string {
	headers := make([]string, 0, l.columns.Size())
	for _, key := range l.columns.Keys() {
		headers = append(headers, key.(string))
	}
	return headers
}

// Values returns the failed values of the column header.
func (l *ErrorLog) Values(header string) []string {
	v, ok := l.columns.Get(header)
	if !ok {
		return nil
	}
	values := v.([]string)
	return append([]string(nil), values...)
}

// Len returns the number of failed cells.
func (l *ErrorLog) Len() int {
	return l.n
}

// Empty reports whether no cell failed.
func (l *ErrorLog) Empty() bool {
	return l.n == 0
}

// Err returns a *TableError holding the log, or nil if the log is empty.
func (l *ErrorLog) Err() error {
	if l.Empty() {
		return nil
	}
	return &TableError{Log: l}
}

// TableError reports the cells of a table that could not be translated.
type TableError struct {
	Log *ErrorLog
}

func (e *TableError) Error() string {
	cells, columns := "cells", "columns"
	if e.Log.Len() == 1 {
		cells = "cell"
	}
	if e.Log.columns.Size() == 1 {
		columns = "column"
	}
	return fmt.Sprintf("cannot translate %d %s in %d %s", e.Log.Len(), cells, e.Log.columns.Size(), columns)
}
