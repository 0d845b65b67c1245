package storage

import (
	"github.com/minor-industries/benchplot/schema"
)

type Backend interface {
	CreateSeries(
		seriesNames []string,
	) error

	InsertTable(
		table *schema.Table,
	) error

	LoadTable() (*schema.Table, error)
}
