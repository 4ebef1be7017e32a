package main

import (
	"fmt"
	"io/ioutil"
	"os"
	"sort"

	"github.com/dude333/dartfin"
	"github.com/dude333/dartfin/parsers"
	"github.com/dude333/dartfin/reports"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v2"
)

// Flags
var scriptMode bool
var outputDir = "reports"
var format string // output format of the report
var annotationFile string

// reportCmd represents the report command
var reportCmd = &cobra.Command{
	Use:   "report [-s] company",
	Short: "Creates the revenue report of a company",
	Long: `Creates the revenue report of a company, given its code (005930),
ticker (005930.KS) or name.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := report(args[0]); err != nil {
			fmt.Println("[x]", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(reportCmd)

	reportCmd.Flags().BoolVarP(&scriptMode, "scriptMode", "s", false, "script mode (picks the closest company name)")
	reportCmd.Flags().StringVarP(&outputDir, "outputDir", "d", "reports", "directory where the report is saved")
	reportCmd.Flags().StringVarP(&format, "format", "r", "xlsx", "report format: xlsx|stdout")
	reportCmd.Flags().StringVarP(&annotationFile, "annotation", "a", "", "YAML file with the commentary (sentiment, narrative)")
}

func report(query string) error {
	src, err := openSource()
	if err != nil {
		return err
	}

	code := selectCompany(query, src, scriptMode)
	if code == "" {
		return errors.Wrap(dartfin.ErrNotFound, query)
	}

	ann, err := loadAnnotation(annotationFile)
	if err != nil {
		return err
	}

	r, err := reports.Build(src, code, years(), ann)
	if err != nil {
		return err
	}

	if format == "stdout" {
		return reports.ToStdout(r, os.Stdout)
	}

	file, err := reports.Filename(outputDir, r.Code+"_"+r.Name)
	if err != nil {
		return err
	}
	fmt.Printf("[√] Creating report for %s (%s) ========\n", r.Name, r.Code)
	if err := reports.ToXlsx(r, file); err != nil {
		return err
	}
	fmt.Println("[√] Report saved:", file)

	return nil
}

//
// selectCompany returns the entity code for the query. The symbol directory
// is used when configured; otherwise the names on the source are matched.
//
func selectCompany(query string, src dartfin.Source, scriptMode bool) string {
	if file := viper.GetString("directory"); file != "" {
		dir, err := parsers.LoadDirectory(file)
		if err != nil {
			fmt.Println("[x]", err)
		} else if e, ok := dir.Resolve(query); ok {
			return e.Code
		}
	}

	if code := dartfin.NormalizeCode(query); dartfin.IsEntityCode(code) {
		return code
	}

	codes := make(map[string]string)
	var names []string
	for _, code := range src.Codes() {
		name, _ := src.CompanyName(code)
		if _, dup := codes[name]; dup {
			name = name + " (" + code + ")"
		}
		codes[name] = code
		names = append(names, name)
	}

	// Do a fuzzy match on the company name against
	// all companies of the source
	matches := make([]string, 0, 10)
	for _, n := range names {
		if fuzzy.MatchNormalizedFold(query, n) {
			matches = append(matches, n)
		}
	}
	if len(matches) == 0 {
		return ""
	}

	// Script mode
	if scriptMode || len(matches) == 1 {
		rank := fuzzy.RankFindNormalizedFold(query, matches)
		if len(rank) <= 0 {
			return ""
		}
		sort.Sort(rank)
		return codes[rank[0].Target]
	}

	// Interactive menu
	return codes[promptUser(matches, "Select the company")]
}

//
// loadAnnotation reads the commentary attached to the report, if any.
//
func loadAnnotation(file string) (reports.Annotation, error) {
	ann := reports.Annotation{Sentiment: reports.Neutral}
	if file == "" {
		return ann, nil
	}

	b, err := ioutil.ReadFile(file)
	if err != nil {
		return ann, errors.Wrapf(err, "reading %s", file)
	}
	if err := yaml.Unmarshal(b, &ann); err != nil {
		return ann, errors.Wrapf(err, "parsing %s", file)
	}

	return ann, nil
}
