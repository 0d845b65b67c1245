package database

type Series struct {
	ID       []byte `gorm:"primary_key"`
	Name     string `gorm:"unique"`
	Unit     string
	Position int `gorm:"index;not null"`
}

type Sample struct {
	ID        []byte `gorm:"primary_key"`
	SeriesID  []byte `gorm:"index;not null"`
	TestBytes int64  `gorm:"not null"`
	Value     float64
	Position  int `gorm:"index;not null"`
}
