package main

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/dude333/dartfin"
	"github.com/dude333/dartfin/reconcile"
	"github.com/dude333/dartfin/reports"
	"github.com/manifoldco/promptui"
	_ "github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

//
// openDatabase opens the sqlite mirror configured on "db".
//
func openDatabase() (*sql.DB, error) {
	file := viper.GetString("db")
	if file == "" {
		return nil, errors.New("no database configured (--db)")
	}
	if err := os.MkdirAll(filepath.Dir(file), os.ModePerm); err != nil {
		return nil, err
	}
	connStr := "file:" + file + "?cache=shared&mode=rwc&_journal_mode=WAL&_busy_timeout=5000"
	db, err := sql.Open("sqlite3", connStr)
	if err != nil {
		return db, errors.Wrap(err, "database open failed")
	}
	db.SetMaxOpenConns(1)

	return db, nil
}

//
// openSource returns the sqlite mirror when it exists, the JSON file
// otherwise.
//
func openSource() (dartfin.Source, error) {
	if file := viper.GetString("db"); file != "" {
		if _, err := os.Stat(file); err == nil {
			db, err := openDatabase()
			if err != nil {
				return nil, err
			}
			return reports.NewDBSource(db), nil
		}
	}

	doc, err := reports.LoadFile(viper.GetString("output"))
	if err != nil {
		return nil, errors.Wrap(err, "run 'dartfin update' first")
	}
	return doc, nil
}

//
// years returns the configured fiscal years.
//
func years() []int {
	var list []int
	for _, s := range viper.GetStringSlice("years") {
		y, err := strconv.Atoi(s)
		if err != nil {
			fmt.Printf("[x] Invalid year %q\n", s)
			continue
		}
		list = append(list, y)
	}
	if len(list) == 0 {
		return reconcile.DefaultYears
	}
	return list
}

func newLogger() *reports.Logger {
	log := reports.NewLogger(os.Stderr)
	log.SetVerbose(verbose)
	return log
}

//
// promptUser presents a navigable list to be selected on CLI
//
func promptUser(list []string, label string) (result string) {
	if label == "" {
		label = "Select the company"
	}
	templates := &promptui.SelectTemplates{
		Help: `{{ "Use the arrow keys to navigate:" | faint }} {{ .NextKey | faint }} ` +
			`{{ .PrevKey | faint }} {{ .PageDownKey | faint }} {{ .PageUpKey | faint }} ` +
			`{{ if .Search }} {{ "and" | faint }} {{ .SearchKey | faint }} {{ "toggles search" | faint }}{{ end }}`,
	}

	prompt := promptui.Select{
		Label:     label,
		Items:     list,
		Templates: templates,
	}

	_, result, err := prompt.Run()
	if err != nil {
		fmt.Printf("Prompt failed %v\n", err)
		return
	}

	return
}
