package loader

import (
	"math"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/reedery/AirGrist/grist"
)

// FakeRecords generates count rows matching the column types of table.
// A seed of 0 gives a different dataset on each call.
func FakeRecords(table grist.Table, count int, seed int64) []grist.Record {
	return fakeRecords(gofakeit.New(seed), table, count)
}

func fakeRecords(faker *gofakeit.Faker, table grist.Table, count int) []grist.Record {
	records := make([]grist.Record, count)
	for i := range records {
		record := make(grist.Record, len(table.Columns))
		for _, col := range table.Columns {
			switch col.Field.Type {
			case grist.Int:
				record[col.ID] = faker.IntRange(0, 100)
			case grist.Numeric:
				record[col.ID] = math.Round(faker.Float64Range(0, 100)*100) / 100
			default:
				record[col.ID] = faker.Word()
			}
		}
		records[i] = record
	}
	return records
}

// FillEmpty adds generated rows to the datasets that have no records. All
// datasets draw from one generator so tables of the same shape differ.
func FillEmpty(datasets []Dataset, count int, seed int64) {
	if count <= 0 {
		return
	}

	faker := gofakeit.New(seed)
	for index := range datasets {
		if len(datasets[index].Records) == 0 {
			datasets[index].Records = fakeRecords(faker, datasets[index].Table, count)
		}
	}
}
