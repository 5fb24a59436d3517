package job

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/reedery/AirGrist/airtable"
	"github.com/reedery/AirGrist/config"
	"github.com/reedery/AirGrist/grist"
	"github.com/reedery/AirGrist/loader"
	"github.com/reedery/AirGrist/log"
	"github.com/reedery/AirGrist/utils"
)

// RunSample pushes the built-in Participants and Catalog tables.
func RunSample(_ *cobra.Command, _ []string) error {
	datasets, err := SampleDatasets()
	if err != nil {
		return err
	}
	return push(datasets, "")
}

// RunPlan pushes the tables described by the plan file.
func RunPlan(_ *cobra.Command, _ []string) error {
	planFile := viper.GetString("plan")
	plan, err := loader.LoadPlan(planFile)
	if err != nil {
		return err
	}
	log.Logger().Infof("loaded plan %s with %d tables", planFile, len(plan.Tables))

	datasets, err := plan.Datasets()
	if err != nil {
		return err
	}
	loader.FillEmpty(datasets, viper.GetInt("fake-rows"), viper.GetInt64("fake-seed"))

	return push(datasets, plan.Document)
}

// RunAirtable copies the tables of an airtable base, schema and first page
// of records, into grist.
func RunAirtable(_ *cobra.Command, _ []string) error {
	settings, err := config.AirtableFromViper()
	if err != nil {
		return fmt.Errorf("invalid airtable configuration: %w", err)
	}

	client := airtable.NewClient(settings.APIKey, airtable.WithHTTPClient(newHTTPClient()))
	datasets, err := AirtableDatasets(client, settings)
	if err != nil {
		return err
	}
	return push(datasets, "")
}

// AirtableSource is the part of airtable.Client used to build datasets.
type AirtableSource interface {
	FetchSchema(baseID string) ([]airtable.Table, error)
	ListRecords(baseID string, tableID string) ([]airtable.Record, error)
}

func AirtableDatasets(source AirtableSource, settings config.Airtable) ([]loader.Dataset, error) {
	schema, err := source.FetchSchema(settings.BaseID)
	if err != nil {
		return nil, err
	}

	tables, err := loader.SelectTables(schema, settings.Tables)
	if err != nil {
		return nil, err
	}

	datasets := make([]loader.Dataset, len(tables))
	for index, table := range tables {
		records, err := source.ListRecords(settings.BaseID, table.ID)
		if err != nil {
			return nil, err
		}
		log.Logger().Infof("pulled %d records from airtable table %s", len(records), table.Name)

		datasets[index] = loader.Dataset{
			Table:   loader.ConvertTable(table),
			Records: loader.ConvertRecords(table, records),
		}
	}
	return datasets, nil
}

func push(datasets []loader.Dataset, documentName string) error {
	settings, err := config.GristFromViper(documentName)
	if err != nil {
		return fmt.Errorf("invalid grist configuration: %w", err)
	}

	client := grist.NewClient(settings.APIURL, settings.APIKey, grist.WithHTTPClient(newHTTPClient()))
	result, err := loader.Run(loader.NewGristLoader(client, settings), datasets)
	if err != nil {
		return err
	}

	log.Logger().Infof("all done, document %s with tables %v", result.DocumentID, result.TableIDs)
	return nil
}

func newHTTPClient() *http.Client {
	settings := config.HTTPFromViper()
	return utils.NewHttpClient(utils.HTTPClientConfig{
		Timeout:             settings.Timeout,
		MaxConnsPerHost:     settings.MaxConnsPerHost,
		MaxIdleConns:        settings.MaxIdleConns,
		MaxIdleConnsPerHost: settings.MaxIdleConnsPerHost,
	})
}
