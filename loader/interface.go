package loader

import "github.com/reedery/AirGrist/grist"

// Dataset is a table schema together with the rows to push into it.
type Dataset struct {
	Table   grist.Table
	Records []grist.Record
}

type Loader interface {
	CreateDocument() (string, error)
	CreateTables(documentID string, datasets []Dataset) ([]string, error)
	Ingest(documentID string, tableIDs []string, datasets []Dataset) error
}

// GristAPI is the part of grist.Client used by the loader.
type GristAPI interface {
	CreateDocument(workspaceID int, name string) (string, error)
	AddTablesToDocument(documentID string, tables []grist.Table) ([]string, error)
	AddRecordsToTable(documentID string, tableID string, records []grist.Record) error
}

func Tables(datasets []Dataset) []grist.Table {
	tables := make([]grist.Table, len(datasets))
	for index, dataset := range datasets {
		tables[index] = dataset.Table
	}
	return tables
}
