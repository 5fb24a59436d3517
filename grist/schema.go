package grist

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mitchellh/mapstructure"
)

var ErrUnsupportedFieldType = errors.New("unsupported grist field type")

// FieldType is the type of a grist column. Only a subset of the grist
// column types is supported, see
// https://support.getgrist.com/api/#tag/columns/operation/addColumns
type FieldType string

const (
	Text    FieldType = "Text"
	Numeric FieldType = "Numeric"
	Int     FieldType = "Int"
)

var fieldTypes = []FieldType{Text, Numeric, Int}

func ParseFieldType(name string) (FieldType, error) {
	for _, t := range fieldTypes {
		if strings.EqualFold(string(t), strings.TrimSpace(name)) {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFieldType, name)
}

func (t FieldType) Validate() error {
	for _, known := range fieldTypes {
		if t == known {
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrUnsupportedFieldType, string(t))
}

func (t FieldType) String() string {
	return string(t)
}

type Field struct {
	Label string
	Type  FieldType
}

type Column struct {
	ID    string
	Field Field
}

type Table struct {
	ID      string
	Columns []Column
}

func (t Table) Validate() error {
	if t.ID == "" {
		return errors.New("table id is empty")
	}

	seen := make(map[string]struct{}, len(t.Columns))
	for index, col := range t.Columns {
		if col.ID == "" {
			return fmt.Errorf("table %s: column %d has an empty id", t.ID, index)
		}
		if _, exist := seen[col.ID]; exist {
			return fmt.Errorf("table %s: duplicate column id %s", t.ID, col.ID)
		}
		seen[col.ID] = struct{}{}

		if err := col.Field.Type.Validate(); err != nil {
			return fmt.Errorf("table %s: column %s: %w", t.ID, col.ID, err)
		}
	}
	return nil
}

func (t Table) ColumnIDs() []string {
	ids := make([]string, len(t.Columns))
	for index, col := range t.Columns {
		ids[index] = col.ID
	}
	return ids
}

// Record is one row, column id to scalar value.
type Record map[string]any

// RecordFrom turns a struct using mapstructure tags into a Record.
func RecordFrom(row any) (Record, error) {
	var fields map[string]any
	if err := mapstructure.Decode(row, &fields); err != nil {
		return nil, fmt.Errorf("failed to decode record from %T: %w", row, err)
	}
	return Record(fields), nil
}
