package config

import (
	"github.com/usvc/go-config"
)

var Conf = config.Map{
	"grist-api-url": &config.String{
		Default:   "https://docs.getgrist.com",
		Usage:     "the base url of the grist server",
		Shorthand: "u",
	},
	"grist-api-key": &config.String{
		Default:   "",
		Usage:     "the api key of grist, sent as bearer token",
		Shorthand: "k",
	},
	"grist-workspace-id": &config.Int{
		Default:   0,
		Usage:     "the grist workspace where the document is created",
		Shorthand: "w",
	},
	"grist-document-id": &config.String{
		Default: "",
		Usage:   "push into this existing grist document instead of creating one",
	},
	"document-name": &config.String{
		Default:   "Airtable Import",
		Usage:     "name of the grist document to create",
		Shorthand: "n",
	},
	"continue-on-error": &config.Bool{
		Default: false,
		Usage:   "keep pushing the remaining tables when pushing records into one table fails",
	},
	"airtable-api-key": &config.String{
		Default: "",
		Usage:   "the api key of airtable",
	},
	"airtable-base-id": &config.String{
		Default: "",
		Usage:   "the airtable base to import",
	},
	"airtable-tables": &config.String{
		Default: "",
		Usage:   "comma separated airtable table names to import, default to all",
	},
	"plan": &config.String{
		Default:   "plan.yaml",
		Usage:     "plan file describing tables and records, support json|yaml",
		Shorthand: "f",
	},
	"fake-rows": &config.Int{
		Default: 0,
		Usage:   "number of generated rows for plan tables without records",
	},
	"fake-seed": &config.Int{
		Default: 0,
		Usage:   "seed of the row generator, 0 means random",
	},
	"http-timeout": &config.Int{
		Default: 30,
		Usage:   "HTTP timeout in seconds, default to 30",
	},
	"http-max-connection-per-host": &config.Int{
		Default: 10,
		Usage:   "HTTP max connection per host, default to 10",
	},
	"http-max-idle-connection": &config.Int{
		Default: 10,
		Usage:   "HTTP max idle connection, default to 10",
	},
	"http-max-idle-connection-per-host": &config.Int{
		Default: 10,
		Usage:   "HTTP max idle connection per host, default to 10",
	},
	"log-level": &config.String{
		Default: "info",
		Usage:   "level of log, support panic|fatal|error|warn|info|debug|trace",
	},
	"log-format": &config.String{
		Default: "text",
		Usage:   "format of log, support text|json",
	},
	"log-file-path": &config.String{
		Default: "",
		Usage:   "also write log into this file, rotated",
	},
}
