package loader_test

import (
	"math"

	"github.com/reedery/AirGrist/airtable"
	"github.com/reedery/AirGrist/grist"
	"github.com/reedery/AirGrist/loader"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func precision(p int) *airtable.Options {
	return &airtable.Options{Precision: &p}
}

var people = airtable.Table{
	ID:   "tblPeople",
	Name: "People",
	Fields: []airtable.Field{
		{ID: "fldName", Name: "Name", Type: "singleLineText"},
		{ID: "fldAge", Name: "Age", Type: "number", Options: precision(0)},
		{ID: "fldHeight", Name: "Height", Type: "number", Options: precision(2)},
		{ID: "fldTags", Name: "Tags", Type: "multipleSelects"},
		{ID: "fldActive", Name: "Active", Type: "checkbox"},
	},
}

var _ = Describe("Airtable conversion", func() {
	DescribeTable("FieldType",
		func(field airtable.Field, expected grist.FieldType) {
			Expect(loader.FieldType(field)).To(Equal(expected))
		},
		Entry("text", airtable.Field{Type: "singleLineText"}, grist.Text),
		Entry("email", airtable.Field{Type: "email"}, grist.Text),
		Entry("integer number", airtable.Field{Type: "number", Options: precision(0)}, grist.Int),
		Entry("decimal number", airtable.Field{Type: "number", Options: precision(1)}, grist.Numeric),
		Entry("number without options", airtable.Field{Type: "number"}, grist.Numeric),
		Entry("auto number", airtable.Field{Type: "autoNumber"}, grist.Int),
		Entry("currency", airtable.Field{Type: "currency"}, grist.Numeric),
		Entry("link", airtable.Field{Type: "multipleRecordLinks"}, grist.Text),
	)

	It("should convert a table keyed by field id and labelled by field name", func() {
		table := loader.ConvertTable(people)
		Expect(table.ID).To(Equal("People"))
		Expect(table.ColumnIDs()).To(Equal([]string{"fldName", "fldAge", "fldHeight", "fldTags", "fldActive"}))
		Expect(table.Columns[1].Field).To(Equal(grist.Field{Label: "Age", Type: grist.Int}))
		Expect(table.Validate()).To(Succeed())
	})

	It("should re-key records and coerce values", func() {
		records := loader.ConvertRecords(people, []airtable.Record{
			{ID: "rec1", Fields: map[string]any{
				"Name":    "Julien",
				"Age":     float64(28),
				"Height":  1.82,
				"Tags":    []any{"a", "b"},
				"Active":  true,
				"Unknown": "x",
			}},
			{ID: "rec2", Fields: map[string]any{"Tags": []any{map[string]any{"id": 1}}}},
		})

		Expect(records).To(HaveLen(2))
		Expect(records[0]).To(Equal(grist.Record{
			"fldName":   "Julien",
			"fldAge":    int64(28),
			"fldHeight": 1.82,
			"fldTags":   "a, b",
			"fldActive": "true",
		}))
		Expect(records[1]).To(Equal(grist.Record{"fldTags": `[{"id":1}]`}))
	})

	DescribeTable("values of Int columns",
		func(value any, expected any) {
			counter := airtable.Table{Name: "Counter", Fields: []airtable.Field{{ID: "fldN", Name: "N", Type: "autoNumber"}}}
			records := loader.ConvertRecords(counter, []airtable.Record{{ID: "rec1", Fields: map[string]any{"N": value}}})
			Expect(records).To(HaveLen(1))
			Expect(records[0]["fldN"]).To(Equal(expected))
		},
		Entry("whole number", float64(42), int64(42)),
		Entry("negative whole number", float64(-3), int64(-3)),
		Entry("fraction kept as is", 2.5, 2.5),
		Entry("above int64 kept as float", 1e20, 1e20),
		Entry("below int64 kept as float", -1e20, -1e20),
		Entry("int64 bound kept as float", math.Pow(2, 63), math.Pow(2, 63)),
		Entry("infinity kept as is", math.Inf(1), math.Inf(1)),
		Entry("text kept as is", "n/a", "n/a"),
	)

	It("should select tables by name in the requested order", func() {
		other := airtable.Table{ID: "tblOther", Name: "Other"}
		tables, err := loader.SelectTables([]airtable.Table{people, other}, []string{"Other", "People"})
		Expect(err).ShouldNot(HaveOccurred())
		Expect(tables[0].ID).To(Equal("tblOther"))
		Expect(tables[1].ID).To(Equal("tblPeople"))

		all, err := loader.SelectTables([]airtable.Table{people, other}, nil)
		Expect(err).ShouldNot(HaveOccurred())
		Expect(all).To(HaveLen(2))

		_, err = loader.SelectTables([]airtable.Table{people}, []string{"Missing"})
		Expect(err).To(MatchError(ContainSubstring("no such airtable table Missing")))
	})
})
