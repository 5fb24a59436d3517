package config

import (
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/spf13/viper"
)

// Grist holds the settings needed to reach a grist server and pick the
// target document.
type Grist struct {
	APIURL          string
	APIKey          string
	WorkspaceID     int
	DocumentID      string
	DocumentName    string
	ContinueOnError bool
}

func (g Grist) Validate() error {
	return validation.ValidateStruct(&g,
		validation.Field(&g.APIURL, validation.Required, is.RequestURL),
		validation.Field(&g.APIKey, validation.Required),
		validation.Field(&g.WorkspaceID, validation.When(g.DocumentID == "", validation.Required, validation.Min(1))),
		validation.Field(&g.DocumentName, validation.When(g.DocumentID == "", validation.Required)),
	)
}

type Airtable struct {
	APIKey string
	BaseID string
	Tables []string
}

func (a Airtable) Validate() error {
	return validation.ValidateStruct(&a,
		validation.Field(&a.APIKey, validation.Required),
		validation.Field(&a.BaseID, validation.Required),
	)
}

type HTTP struct {
	Timeout             time.Duration
	MaxConnsPerHost     int
	MaxIdleConns        int
	MaxIdleConnsPerHost int
}

// GristFromViper reads the grist settings. A non-empty documentName stands
// in for document-name when that key was not set explicitly.
func GristFromViper(documentName string) (Grist, error) {
	g := Grist{
		APIURL:          strings.TrimRight(viper.GetString("grist-api-url"), "/"),
		APIKey:          viper.GetString("grist-api-key"),
		WorkspaceID:     viper.GetInt("grist-workspace-id"),
		DocumentID:      viper.GetString("grist-document-id"),
		DocumentName:    viper.GetString("document-name"),
		ContinueOnError: viper.GetBool("continue-on-error"),
	}
	if documentName != "" && !viper.IsSet("document-name") {
		g.DocumentName = documentName
	}
	return g, g.Validate()
}

func AirtableFromViper() (Airtable, error) {
	a := Airtable{
		APIKey: viper.GetString("airtable-api-key"),
		BaseID: viper.GetString("airtable-base-id"),
		Tables: SplitList(viper.GetString("airtable-tables")),
	}
	return a, a.Validate()
}

func HTTPFromViper() HTTP {
	return HTTP{
		Timeout:             time.Duration(viper.GetInt("http-timeout")) * time.Second,
		MaxConnsPerHost:     viper.GetInt("http-max-connection-per-host"),
		MaxIdleConns:        viper.GetInt("http-max-idle-connection"),
		MaxIdleConnsPerHost: viper.GetInt("http-max-idle-connection-per-host"),
	}
}

// SplitList splits a comma separated flag value, dropping blanks.
func SplitList(value string) []string {
	result := []string{}
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			result = append(result, item)
		}
	}
	return result
}
