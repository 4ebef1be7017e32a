/*
Copyright © 2024 Adriano P <dev@dude333.com>
Distributed under the MIT License.
*/
package main

import (
	"fmt"
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string
var verbose bool

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "dartfin",
	Short: "Quarterly revenue and operating income from DART filings",
	Long: `dartfin reads the DART bulk financial statement extracts, reconciles
the quarterly revenue and operating income of every listed company and
stores them as a single JSON file (and optionally on a sqlite database).`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.dartfin.yml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "show debug messages")
	rootCmd.PersistentFlags().String("datadir", ".data", "directory with the DART extracts")
	rootCmd.PersistentFlags().String("output", ".data/financials.json", "JSON file with the reconciled series")
	rootCmd.PersistentFlags().String("db", "", "sqlite mirror of the JSON file (disabled if empty)")

	for _, f := range []string{"datadir", "output", "db"} {
		_ = viper.BindPFlag(f, rootCmd.PersistentFlags().Lookup(f))
	}
	viper.SetDefault("directory", "")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			fmt.Println("[x]", err)
			os.Exit(1)
		}
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigName(".dartfin")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("DARTFIN")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil && verbose {
		fmt.Println("[i] Using config file:", viper.ConfigFileUsed())
	}
}
