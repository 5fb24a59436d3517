package loader

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/reedery/AirGrist/airtable"
	"github.com/reedery/AirGrist/grist"
	"github.com/reedery/AirGrist/log"
)

// FieldType maps an airtable field onto the grist types we support.
// Anything without a numeric meaning lands in a Text column.
func FieldType(field airtable.Field) grist.FieldType {
	switch field.Type {
	case "autoNumber", "count", "rating":
		return grist.Int
	case "currency", "percent", "duration":
		return grist.Numeric
	case "number":
		if field.Options != nil && field.Options.Precision != nil && *field.Options.Precision == 0 {
			return grist.Int
		}
		return grist.Numeric
	default:
		return grist.Text
	}
}

// ConvertTable keeps the airtable field id as grist column id and the field
// name as label.
func ConvertTable(table airtable.Table) grist.Table {
	cols := make([]grist.Column, len(table.Fields))
	for index, field := range table.Fields {
		cols[index] = grist.Column{
			ID: field.ID,
			Field: grist.Field{
				Label: field.Name,
				Type:  FieldType(field),
			},
		}
	}
	return grist.Table{ID: table.Name, Columns: cols}
}

// ConvertRecords re-keys airtable records, which use field names, by field
// id and coerces values to the column type.
func ConvertRecords(table airtable.Table, records []airtable.Record) []grist.Record {
	fields := make(map[string]airtable.Field, len(table.Fields))
	for _, field := range table.Fields {
		fields[field.Name] = field
	}

	result := make([]grist.Record, 0, len(records))
	for _, record := range records {
		row := make(grist.Record, len(record.Fields))
		for name, value := range record.Fields {
			field, exist := fields[name]
			if !exist {
				log.Logger().Debugf("record %s of table %s has unknown field %s, dropped", record.ID, table.Name, name)
				continue
			}
			row[field.ID] = convertValue(FieldType(field), value)
		}
		result = append(result, row)
	}
	return result
}

func convertValue(t grist.FieldType, value any) any {
	switch t {
	case grist.Int:
		if f, ok := value.(float64); ok && f == math.Trunc(f) && f >= math.MinInt64 && f < math.MaxInt64 {
			return int64(f)
		}
		return value
	case grist.Numeric:
		return value
	default:
		return toText(value)
	}
}

func toText(value any) any {
	switch v := value.(type) {
	case nil, string:
		return v
	case bool:
		return fmt.Sprintf("%t", v)
	case []any:
		items := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return toJSONText(value)
			}
			items = append(items, s)
		}
		return strings.Join(items, ", ")
	default:
		return toJSONText(value)
	}
}

func toJSONText(value any) string {
	b, err := json.Marshal(value)
	if err != nil {
		return fmt.Sprintf("%v", value)
	}
	return string(b)
}

// SelectTables keeps the tables whose names are listed, in the listed order.
// An empty list keeps all tables.
func SelectTables(tables []airtable.Table, names []string) ([]airtable.Table, error) {
	if len(names) == 0 {
		return tables, nil
	}

	result := make([]airtable.Table, 0, len(names))
	for _, name := range names {
		table := airtable.FindTableByName(tables, name)
		if table == nil {
			return nil, fmt.Errorf("no such airtable table %s", name)
		}
		result = append(result, *table)
	}
	return result, nil
}
