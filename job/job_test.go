package job_test

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/viper"

	"github.com/reedery/AirGrist/airtable"
	"github.com/reedery/AirGrist/config"
	"github.com/reedery/AirGrist/grist"
	"github.com/reedery/AirGrist/job"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

type fakeSource struct {
	tables  []airtable.Table
	records map[string][]airtable.Record
}

func (f *fakeSource) FetchSchema(baseID string) ([]airtable.Table, error) {
	return f.tables, nil
}

func (f *fakeSource) ListRecords(baseID string, tableID string) ([]airtable.Record, error) {
	records, exist := f.records[tableID]
	if !exist {
		return nil, errors.New("unknown table")
	}
	return records, nil
}

var _ = Describe("Job", func() {
	It("should build the sample datasets", func() {
		datasets, err := job.SampleDatasets()
		Expect(err).ShouldNot(HaveOccurred())
		Expect(datasets).To(HaveLen(2))

		Expect(datasets[0].Table.ID).To(Equal("Participants"))
		Expect(datasets[0].Records).To(HaveLen(6))
		Expect(datasets[0].Records[0]).To(Equal(grist.Record{"nom": "Julien", "age": 28}))

		Expect(datasets[1].Table.ID).To(Equal("Catalog"))
		Expect(datasets[1].Records).To(HaveLen(5))
		Expect(datasets[1].Records[4]).To(Equal(grist.Record{"product": "onion", "price": 2.2}))
	})

	It("should convert the selected airtable tables with their records", func() {
		source := &fakeSource{
			tables: []airtable.Table{
				{ID: "tblA", Name: "A", Fields: []airtable.Field{{ID: "fldX", Name: "X", Type: "singleLineText"}}},
				{ID: "tblB", Name: "B", Fields: []airtable.Field{{ID: "fldY", Name: "Y", Type: "autoNumber"}}},
			},
			records: map[string][]airtable.Record{
				"tblB": {{ID: "rec1", Fields: map[string]any{"Y": float64(7)}}},
			},
		}

		datasets, err := job.AirtableDatasets(source, config.Airtable{BaseID: "app", Tables: []string{"B"}})
		Expect(err).ShouldNot(HaveOccurred())
		Expect(datasets).To(HaveLen(1))
		Expect(datasets[0].Table.ID).To(Equal("B"))
		Expect(datasets[0].Table.Columns[0].Field.Type).To(Equal(grist.Int))
		Expect(datasets[0].Records).To(Equal([]grist.Record{{"fldY": int64(7)}}))

		_, err = job.AirtableDatasets(source, config.Airtable{BaseID: "app"})
		Expect(err).To(MatchError("unknown table"))
	})

	Describe("RunSample", func() {
		var server *httptest.Server
		var mu sync.Mutex
		var paths []string
		var bodies []string

		BeforeEach(func() {
			paths, bodies = nil, nil
			server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				body, _ := io.ReadAll(r.Body)
				mu.Lock()
				paths = append(paths, r.URL.Path)
				bodies = append(bodies, string(body))
				mu.Unlock()

				switch {
				case strings.HasSuffix(r.URL.Path, "/docs"):
					json.NewEncoder(w).Encode("doc42")
				case strings.HasSuffix(r.URL.Path, "/tables"):
					w.Write([]byte(`{"tables": [{"id": "Participants"}, {"id": "Catalog"}]}`))
				default:
					w.Write([]byte(`{"records": []}`))
				}
			}))

			viper.Set("grist-api-url", server.URL)
			viper.Set("grist-api-key", "secret")
			viper.Set("grist-workspace-id", 146993)
			viper.Set("document-name", "Airtable Import")
		})

		AfterEach(func() {
			server.Close()
			viper.Reset()
		})

		It("should create the document, both tables and push their records", func() {
			Expect(job.RunSample(nil, nil)).To(Succeed())
			Expect(paths).To(Equal([]string{
				"/api/workspaces/146993/docs",
				"/api/docs/doc42/tables",
				"/api/docs/doc42/tables/Participants/records",
				"/api/docs/doc42/tables/Catalog/records",
			}))
			Expect(bodies[0]).To(MatchJSON(`{"name": "Airtable Import"}`))
			Expect(bodies[2]).To(ContainSubstring(`{"fields":{"age":28,"nom":"Julien"}}`))
		})

		It("should refuse to run without api key", func() {
			viper.Set("grist-api-key", "")
			Expect(job.RunSample(nil, nil)).To(MatchError(ContainSubstring("invalid grist configuration")))
			Expect(paths).To(BeEmpty())
		})
	})

	Describe("RunPlan", func() {
		var server *httptest.Server
		var mu sync.Mutex
		var paths []string
		var bodies []string

		BeforeEach(func() {
			paths, bodies = nil, nil
			server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				body, _ := io.ReadAll(r.Body)
				mu.Lock()
				paths = append(paths, r.URL.Path)
				bodies = append(bodies, string(body))
				mu.Unlock()

				switch {
				case strings.HasSuffix(r.URL.Path, "/docs"):
					json.NewEncoder(w).Encode("doc7")
				case strings.HasSuffix(r.URL.Path, "/tables"):
					w.Write([]byte(`{"tables": [{"id": "Stock"}]}`))
				default:
					w.Write([]byte(`{"records": []}`))
				}
			}))

			dir, err := os.MkdirTemp("", "airgrist-job")
			Expect(err).ShouldNot(HaveOccurred())
			DeferCleanup(os.RemoveAll, dir)

			plan := filepath.Join(dir, "plan.yaml")
			Expect(os.WriteFile(plan, []byte(`document: Inventaire
tables:
  - id: Stock
    columns:
      - {id: item, label: Item, type: Text}
      - {id: qty, label: Qty, type: Int}
      - {id: price, label: Price, type: Numeric}
`), 0644)).To(Succeed())

			viper.Set("grist-api-url", server.URL)
			viper.Set("grist-api-key", "secret")
			viper.Set("grist-workspace-id", 146993)
			viper.Set("plan", plan)
			viper.Set("fake-rows", 3)
			viper.Set("fake-seed", 11)
		})

		AfterEach(func() {
			server.Close()
			viper.Reset()
		})

		It("should create the plan's document and fill its empty table", func() {
			Expect(job.RunPlan(nil, nil)).To(Succeed())
			Expect(paths).To(Equal([]string{
				"/api/workspaces/146993/docs",
				"/api/docs/doc7/tables",
				"/api/docs/doc7/tables/Stock/records",
			}))
			Expect(bodies[0]).To(MatchJSON(`{"name": "Inventaire"}`))

			var pushed struct {
				Records []struct {
					Fields map[string]any `json:"fields"`
				} `json:"records"`
			}
			Expect(json.Unmarshal([]byte(bodies[2]), &pushed)).To(Succeed())
			Expect(pushed.Records).To(HaveLen(3))
			for _, record := range pushed.Records {
				Expect(record.Fields).To(HaveKey("item"))
				Expect(record.Fields).To(HaveKey("qty"))
				Expect(record.Fields).To(HaveKey("price"))
			}
		})

		It("should keep an explicit document-name over the plan's", func() {
			viper.Set("document-name", "Airtable Import")
			Expect(job.RunPlan(nil, nil)).To(Succeed())
			Expect(bodies[0]).To(MatchJSON(`{"name": "Airtable Import"}`))
		})
	})
})
