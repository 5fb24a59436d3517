package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/reedery/AirGrist/config"
	"github.com/reedery/AirGrist/job"
	"github.com/reedery/AirGrist/log"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:           "airgrist",
	Short:         "push tables and records into grist",
	Long:          ``,
	SilenceUsage:  true,
	SilenceErrors: true,
}

var sampleCmd = &cobra.Command{
	Use:   "sample",
	Short: "push the Participants and Catalog sample tables",
	RunE:  job.RunSample,
}

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "push the tables and records described by a plan file",
	RunE:  job.RunPlan,
}

var airtableCmd = &cobra.Command{
	Use:   "airtable",
	Short: "import the tables of an airtable base",
	RunE:  job.RunAirtable,
}

func Execute() {
	config.Conf.ApplyToCobraPersistent(rootCmd)

	for arg := range config.Conf {
		viper.BindPFlag(arg, rootCmd.PersistentFlags().Lookup(arg))
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.airgrist.yaml)")
	rootCmd.AddCommand(sampleCmd, planCmd, airtableCmd)
}

// initConfig reads in .env, config file and ENV variables if set.
func initConfig() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Printf("failed to load .env: %s\n", err)
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := homedir.Dir()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		// Search config in home directory with name ".airgrist" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigName(".airgrist")
	}

	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	err := viper.ReadInConfig()

	log.Init()
	if err == nil {
		log.Logger().Infof("using config file:%s", viper.ConfigFileUsed())
	}
}
