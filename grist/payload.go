package grist

// Request and response bodies of the grist REST API. Grist names the
// single field object of a column and the value map of a record "fields";
// that naming stays in this file.

type createDocumentRequest struct {
	Name string `json:"name"`
}

type fieldPayload struct {
	Label string `json:"label"`
	Type  string `json:"type"`
}

type columnPayload struct {
	ID     string       `json:"id"`
	Fields fieldPayload `json:"fields"`
}

type tablePayload struct {
	ID      string          `json:"id"`
	Columns []columnPayload `json:"columns"`
}

type addTablesRequest struct {
	Tables []tablePayload `json:"tables"`
}

type addTablesResponse struct {
	Tables []struct {
		ID string `json:"id"`
	} `json:"tables"`
}

type recordPayload struct {
	Fields Record `json:"fields"`
}

type addRecordsRequest struct {
	Records []recordPayload `json:"records"`
}

func toTablePayload(table Table) tablePayload {
	cols := make([]columnPayload, len(table.Columns))
	for index, col := range table.Columns {
		cols[index] = columnPayload{
			ID: col.ID,
			Fields: fieldPayload{
				Label: col.Field.Label,
				Type:  string(col.Field.Type),
			},
		}
	}
	return tablePayload{ID: table.ID, Columns: cols}
}

func toRecordPayloads(records []Record) []recordPayload {
	result := make([]recordPayload, len(records))
	for index, record := range records {
		result[index] = recordPayload{Fields: record}
	}
	return result
}
