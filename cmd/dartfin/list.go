package main

import (
	"fmt"
	"os"

	"github.com/dude333/dartfin/parsers"
	"github.com/dude333/dartfin/reports"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Lists the stored companies or filings",
}

func init() {
	var (
		listCompanies bool
		listFilings   bool
	)

	rootCmd.AddCommand(listCmd)

	listCmd.Flags().BoolVarP(&listCompanies, "empresas", "e", false, "lists the companies of the last run")
	listCmd.Flags().BoolVarP(&listFilings, "filings", "f", false, "lists the filings applied on the last run (needs --db)")

	listCmd.Run = func(cmd *cobra.Command, args []string) {
		var err error

		if listCmd.Flags().NFlag() == 0 {
			_ = listCmd.Help()
			return
		}

		if listCompanies {
			err = ListCompanies()
		} else if listFilings {
			err = ListFilings()
		}
		if err != nil {
			fmt.Println("[x]", err)
		}
	}
}

//
// ListCompanies prints code and name of the stored companies, from the
// sqlite mirror when there is one.
//
func ListCompanies() error {
	if file := viper.GetString("db"); file != "" {
		if _, err := os.Stat(file); err == nil {
			db, err := openDatabase()
			if err != nil {
				return errors.Wrap(err, "fail to open db")
			}
			defer db.Close()

			list, err := reports.ListCompanies(db)
			if err != nil {
				return err
			}
			for _, c := range list {
				fmt.Printf("%s %s\n", c.Code, c.Name)
			}
			return nil
		}
	}

	src, err := openSource()
	if err != nil {
		return err
	}
	for _, code := range src.Codes() {
		name, _ := src.CompanyName(code)
		fmt.Printf("%s %s\n", code, name)
	}

	return nil
}

//
// ListFilings prints the filings of the last run in the order they were
// applied.
//
func ListFilings() error {
	db, err := openDatabase()
	if err != nil {
		return errors.Wrap(err, "fail to open db")
	}
	defer db.Close()

	filings, err := parsers.ListFilings(db)
	if err != nil {
		return err
	}
	for i, f := range filings {
		fmt.Printf("%3d %s %d %s %-12s %-10s %5d %s\n",
			i+1, f.MD5, f.Year, f.Period, f.Category, f.Statement, f.Companies, f.Name)
	}

	return nil
}
