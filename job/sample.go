package job

import (
	"github.com/reedery/AirGrist/grist"
	"github.com/reedery/AirGrist/loader"
)

type participant struct {
	Name string `mapstructure:"nom"`
	Age  int    `mapstructure:"age"`
}

type product struct {
	Name  string  `mapstructure:"product"`
	Price float64 `mapstructure:"price"`
}

var participantsTable = grist.Table{
	ID: "Participants",
	Columns: []grist.Column{
		{ID: "nom", Field: grist.Field{Label: "Nom", Type: grist.Text}},
		{ID: "age", Field: grist.Field{Label: "Âge", Type: grist.Int}},
	},
}

var catalogTable = grist.Table{
	ID: "Catalog",
	Columns: []grist.Column{
		{ID: "product", Field: grist.Field{Label: "Product", Type: grist.Text}},
		{ID: "price", Field: grist.Field{Label: "Price in Euros", Type: grist.Numeric}},
	},
}

var participants = []participant{
	{"Julien", 28},
	{"Milo", 24},
	{"Gilles", 25},
	{"Ryan", 26},
	{"Denis", 27},
	{"Alban", 28},
}

var products = []product{
	{"tomato", 2.1},
	{"apple", 3.1},
	{"orange", 0.5},
	{"watermelon", 2.6},
	{"onion", 2.2},
}

// SampleDatasets returns the two demo tables with their rows.
func SampleDatasets() ([]loader.Dataset, error) {
	participantRecords, err := toRecords(participants)
	if err != nil {
		return nil, err
	}

	productRecords, err := toRecords(products)
	if err != nil {
		return nil, err
	}

	return []loader.Dataset{
		{Table: participantsTable, Records: participantRecords},
		{Table: catalogTable, Records: productRecords},
	}, nil
}

func toRecords[T any](rows []T) ([]grist.Record, error) {
	records := make([]grist.Record, len(rows))
	for index, row := range rows {
		record, err := grist.RecordFrom(row)
		if err != nil {
			return nil, err
		}
		records[index] = record
	}
	return records, nil
}
