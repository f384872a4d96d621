package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"resume-builder/internal/countries"
)

var listRulesFile string

func init() {
	countriesCmd.Flags().StringVar(&listRulesFile, "rules", "", "country rules YAML file (built-in table when omitted)")
	rootCmd.AddCommand(countriesCmd)
}

var countriesCmd = &cobra.Command{
	Use:   "countries",
	Short: "List supported country formats",
	RunE: func(cmd *cobra.Command, args []string) error {
		table, err := countries.Load(listRulesFile)
		if err != nil {
			return errors.Wrap(err, "loading country rules")
		}
		for _, rule := range table.All() {
			photo := "no photo"
			if rule.IncludePhoto {
				photo = "photo"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%-10s %-15s %-7s %s\n", rule.Code, rule.Name, rule.PageSize, photo)
		}
		return nil
	},
}
