package loader

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/reedery/AirGrist/grist"
	"sigs.k8s.io/yaml"
)

// Plan describes a grist document to fill, usually loaded from a yaml file:
//
//	document: Airtable Import
//	tables:
//	  - id: Participants
//	    columns:
//	      - {id: nom, label: Nom, type: Text}
//	      - {id: age, label: Âge, type: Int}
//	    records:
//	      - {nom: Julien, age: 28}
type Plan struct {
	Document string      `json:"document,omitempty"`
	Tables   []TablePlan `json:"tables"`
}

type TablePlan struct {
	ID      string         `json:"id"`
	Columns []ColumnPlan   `json:"columns"`
	Records []grist.Record `json:"records,omitempty"`
}

type ColumnPlan struct {
	ID    string `json:"id"`
	Label string `json:"label,omitempty"`
	Type  string `json:"type"`
}

func LoadPlan(path string) (*Plan, error) {
	dat, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var plan Plan
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		err = json.Unmarshal(dat, &plan)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(dat, &plan)
	default:
		return nil, fmt.Errorf("plan %s has to be json or yaml", path)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to parse plan %s: %w", path, err)
	}
	return &plan, nil
}

// Schema builds the grist table of the plan. A column without label uses
// its id as label.
func (t TablePlan) Schema() (grist.Table, error) {
	table := grist.Table{ID: t.ID, Columns: make([]grist.Column, len(t.Columns))}
	for index, col := range t.Columns {
		fieldType, err := grist.ParseFieldType(col.Type)
		if err != nil {
			return table, fmt.Errorf("table %s: column %s: %w", t.ID, col.ID, err)
		}

		label := col.Label
		if label == "" {
			label = col.ID
		}
		table.Columns[index] = grist.Column{ID: col.ID, Field: grist.Field{Label: label, Type: fieldType}}
	}
	return table, table.Validate()
}

func (p *Plan) Datasets() ([]Dataset, error) {
	datasets := make([]Dataset, len(p.Tables))
	for index, tablePlan := range p.Tables {
		table, err := tablePlan.Schema()
		if err != nil {
			return nil, err
		}
		datasets[index] = Dataset{Table: table, Records: tablePlan.Records}
	}
	return datasets, nil
}
