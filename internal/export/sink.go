package export

import (
	"context"
)

// Written reports one table written by a sink.
type Written struct {
	Table string
	Path  string
	Rows  int
}

// Sink persists a set of tables.
type Sink interface {
	Write(ctx context.Context, tables []Table) ([]Written, error)
}

var (
	_ Sink = (*CSVSink)(nil)
	_ Sink = (*SQLiteSink)(nil)
)
