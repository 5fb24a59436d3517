package airtable

type Options struct {
	InverseLinkFieldID      string `json:"inverseLinkFieldId,omitempty"`
	IsReversed              bool   `json:"isReversed,omitempty"`
	LinkedTableID           string `json:"linkedTableId,omitempty"`
	PrefersSingleRecordLink bool   `json:"prefersSingleRecordLink,omitempty"`
	Precision               *int   `json:"precision,omitempty"`
}

type Field struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Type        string   `json:"type"`
	Description string   `json:"description,omitempty"`
	Options     *Options `json:"options,omitempty"`
}

type View struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
}

type Table struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Description    string  `json:"description,omitempty"`
	PrimaryFieldID string  `json:"primaryFieldId"`
	Fields         []Field `json:"fields"`
	Views          []View  `json:"views"`
}

type Record struct {
	ID          string         `json:"id"`
	CreatedTime string         `json:"createdTime"`
	Fields      map[string]any `json:"fields"`
}

type schemaResponse struct {
	Tables []Table `json:"tables"`
}

type recordsResponse struct {
	Records []Record `json:"records"`
	Offset  string   `json:"offset,omitempty"`
}

func FindTableByName(tables []Table, name string) *Table {
	for index, table := range tables {
		if table.Name == name {
			return &tables[index]
		}
	}
	return nil
}
