package loader

import (
	"errors"
	"fmt"

	"github.com/reedery/AirGrist/config"
	"github.com/reedery/AirGrist/log"
)

type GristLoader struct {
	api      GristAPI
	settings config.Grist
}

func NewGristLoader(api GristAPI, settings config.Grist) *GristLoader {
	return &GristLoader{
		api:      api,
		settings: settings,
	}
}

func (l *GristLoader) CreateDocument() (string, error) {
	if l.settings.DocumentID != "" {
		log.Logger().Infof("using existing document %s", l.settings.DocumentID)
		return l.settings.DocumentID, nil
	}

	documentID, err := l.api.CreateDocument(l.settings.WorkspaceID, l.settings.DocumentName)
	if err != nil {
		return "", err
	}
	log.Logger().Infof("document %s created with id %s in workspace %d", l.settings.DocumentName, documentID, l.settings.WorkspaceID)
	return documentID, nil
}

// CreateTables adds all dataset tables in one request. Grist may assign ids
// that differ from the requested ones, they are matched by position.
func (l *GristLoader) CreateTables(documentID string, datasets []Dataset) ([]string, error) {
	if len(datasets) == 0 {
		return []string{}, nil
	}

	tableIDs, err := l.api.AddTablesToDocument(documentID, Tables(datasets))
	if err != nil {
		return nil, err
	}

	if len(tableIDs) != len(datasets) {
		return nil, fmt.Errorf("requested %d tables in document %s but grist returned %d", len(datasets), documentID, len(tableIDs))
	}

	for index, tableID := range tableIDs {
		if requested := datasets[index].Table.ID; requested != tableID {
			log.Logger().Warnf("table %s was created as %s", requested, tableID)
		} else {
			log.Logger().Infof("table %s created", tableID)
		}
	}
	return tableIDs, nil
}

func (l *GristLoader) Ingest(documentID string, tableIDs []string, datasets []Dataset) error {
	if len(tableIDs) != len(datasets) {
		return fmt.Errorf("got %d table ids for %d tables", len(tableIDs), len(datasets))
	}

	var errs []error
	for index, dataset := range datasets {
		tableID := tableIDs[index]
		if len(dataset.Records) == 0 {
			log.Logger().Infof("no records for table %s, skipped", tableID)
			continue
		}

		if err := l.api.AddRecordsToTable(documentID, tableID, dataset.Records); err != nil {
			if !l.settings.ContinueOnError {
				return err
			}
			log.Logger().WithError(err).Warnf("failed to ingest table %s, continue with next table", tableID)
			errs = append(errs, err)
			continue
		}
		log.Logger().Infof("done adding %d records to table %s", len(dataset.Records), tableID)
	}
	return errors.Join(errs...)
}

type Result struct {
	DocumentID string
	TableIDs   []string
}

// Run creates the document, its tables and pushes the records, stopping at
// the first error returned by the loader.
func Run(l Loader, datasets []Dataset) (Result, error) {
	var result Result

	documentID, err := l.CreateDocument()
	if err != nil {
		return result, err
	}
	result.DocumentID = documentID

	tableIDs, err := l.CreateTables(documentID, datasets)
	if err != nil {
		return result, err
	}
	result.TableIDs = tableIDs

	return result, l.Ingest(documentID, tableIDs, datasets)
}
