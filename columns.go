package cdmn

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/snapcore/go-cdmn/idply"
)

// Column is one column of a decision table.
type Column struct {
	Header string
	Values []string
	// Vars are the identifiers known to the cells of the column.
	Vars idply.Variables
}

// TranslateColumns translates the columns of a table concurrently, one
// Translator per column. The returned slice holds the translated cells of
// each column in the order of cols; the returned log merges the failures
// of all columns in column order. resolver must be safe for concurrent
// use. The error is non-nil only if ctx is done before all cells are
// translated.
func TranslateColumns(ctx context.Context, resolver idply.Resolver, dialect idply.Dialect, cols []Column) ([][]string, *ErrorLog, error) {
	out := make([][]string, len(cols))
	logs := make([]*ErrorLog, len(cols))

	g, ctx := errgroup.WithContext(ctx)
	for i := range cols {
		i := i
		g.Go(func() error {
			col := cols[i]
			t := NewTranslator(resolver, dialect)
			exprs := make([]string, len(col.Values))
			for j, value := range col.Values {
				if err := ctx.Err(); err != nil {
					return err
				}
				exprs[j] = t.ParseVal(col.Header, value, col.Vars)
			}
			out[i] = exprs
			logs[i] = t.Errors()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	merged := newErrorLog()
	for _, l := range logs {
		merged.merge(l)
	}
	tracer().Debugf("translated %d columns, %d failed cells", len(cols), merged.Len())
	return out, merged, nil
}
