package database

import (
	"crypto/rand"
	"crypto/sha256"
	"github.com/glebarez/sqlite"
	"github.com/minor-industries/benchplot/schema"
	"github.com/minor-industries/benchplot/storage"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

func Get(filename string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(filename), &gorm.Config{})
	if err != nil {
		return nil, errors.Wrap(err, "open")
	}

	for _, table := range []any{
		&Series{},
		&Sample{},
	} {
		err = db.AutoMigrate(table)
		if err != nil {
			return nil, errors.Wrap(err, "migrate")
		}
	}
	return db, nil
}

func RandomID() []byte {
	var result [16]byte
	_, err := rand.Read(result[:])
	if err != nil {
		panic(err)
	}
	return result[:]
}

func HashedID(s string) []byte {
	var result [16]byte
	h := sha256.New()
	h.Write([]byte(s))
	sum := h.Sum(nil)
	copy(result[:], sum[:16])
	return result[:]
}

func loadSeries(db *gorm.DB) (map[string]*Series, error) {
	seriesMap := map[string]*Series{}
	{
		var rows []*Series
		tx := db.Find(&rows)
		if tx.Error != nil {
			return nil, errors.Wrap(tx.Error, "find")
		}

		for _, row := range rows {
			seriesMap[row.Name] = row
		}
	}

	return seriesMap, nil
}

type Backend struct {
	db   *gorm.DB
	unit string
}

func NewBackend(db *gorm.DB, unit string) *Backend {
	return &Backend{
		db:   db,
		unit: unit,
	}
}

var _ storage.Backend = (*Backend)(nil)

func (b *Backend) CreateSeries(
	seriesNames []string,
) error {
	seriesMap, err := loadSeries(b.db)
	if err != nil {
		return errors.Wrap(err, "initial load")
	}

	next := len(seriesMap)
	for _, name := range seriesNames {
		if _, found := seriesMap[name]; found {
			continue
		}
		res := b.db.Create(&Series{
			ID:       HashedID(name),
			Name:     name,
			Unit:     b.unit,
			Position: next,
		})
		if res.Error != nil {
			return errors.Wrap(res.Error, "create series")
		}
		next++
	}

	return nil
}

func (b *Backend) InsertTable(
	table *schema.Table,
) error {
	err := b.db.Transaction(func(tx *gorm.DB) error {
		for _, series := range table.All() {
			id := HashedID(series.Name)
			for i := 0; i < series.Len(); i++ {
				res := tx.Create(&Sample{
					ID:        RandomID(),
					SeriesID:  id,
					TestBytes: series.X[i],
					Value:     series.Y[i],
					Position:  i,
				})
				if res.Error != nil {
					return errors.Wrap(res.Error, "create sample")
				}
			}
		}
		return nil
	})
	return err
}

func (b *Backend) LoadTable() (*schema.Table, error) {
	var seriesRows []*Series
	tx := b.db.Order("position asc").Find(&seriesRows)
	if tx.Error != nil {
		return nil, errors.Wrap(tx.Error, "find series")
	}

	table := schema.NewTable()
	for _, row := range seriesRows {
		var samples []*Sample
		tx := b.db.Where("series_id = ?", row.ID).Order("position asc").Find(&samples)
		if tx.Error != nil {
			return nil, errors.Wrap(tx.Error, "find samples")
		}

		for _, sample := range samples {
			table.Append(row.Name, sample.TestBytes, sample.Value)
		}
	}

	return table, nil
}
