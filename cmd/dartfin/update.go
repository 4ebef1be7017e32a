package main

import (
	"fmt"
	"os"

	"github.com/dude333/dartfin/fetch"
	"github.com/dude333/dartfin/parsers"
	"github.com/dude333/dartfin/reconcile"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var unzip bool

// updateCmd represents the update command
var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Reconciles the DART extracts and writes the JSON file",
	Long: `Reads the DART extracts found on the data directory following the
filing order (financial sector consolidated statements first, general
consolidated statements last), reconciles the quarterly figures and
replaces the JSON file. With --unzip the .zip archives of the data
directory are extracted first.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := update(); err != nil {
			fmt.Println("[x]", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(updateCmd)

	updateCmd.Flags().BoolVarP(&unzip, "unzip", "u", false, "extract the .zip archives of the data directory first")
}

func update() error {
	log := newLogger()
	dataDir := viper.GetString("datadir")
	output := viper.GetString("output")

	if unzip {
		files, err := fetch.UnzipAll(dataDir, log)
		if err != nil {
			return err
		}
		fmt.Printf("[√] %d files extracted\n", len(files))
	}

	fmt.Println("[√] Reading filings ===========")
	res, err := reconcile.Run(dataDir, reconcile.DefaultPlan(years()...), log)
	if err != nil {
		return err
	}

	if err := reconcile.WriteFile(output, res.Document); err != nil {
		return err
	}
	fmt.Println("[√] File saved:", output)

	if viper.GetString("db") != "" {
		db, err := openDatabase()
		if err != nil {
			return err
		}
		defer db.Close()
		if err := parsers.StoreDocument(db, res.Document, res.Filings); err != nil {
			return err
		}
		fmt.Println("[√] Database updated:", viper.GetString("db"))
	}

	s := res.Stats
	fmt.Printf("[i] %s filings, %s companies, %s revenue values, %s operating income values\n",
		humanize.Comma(int64(len(res.Filings))),
		humanize.Comma(int64(s.Companies)),
		humanize.Comma(int64(s.RevenueValues)),
		humanize.Comma(int64(s.OperatingIncomeValues)))
	if n := log.Warnings(); n > 0 {
		fmt.Printf("[i] %d derived quarters discarded (see warnings)\n", n)
	}

	return nil
}
