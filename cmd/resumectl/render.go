package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"resume-builder/internal/countries"
	"resume-builder/internal/pdf"
	"resume-builder/internal/render"
)

var (
	inputFile  string
	outputFile string
	rulesFile  string
	asPDF      bool
	chromePath string
)

func init() {
	renderCmd.Flags().StringVarP(&inputFile, "input", "i", "", "resume request JSON file (required)")
	renderCmd.Flags().StringVarP(&outputFile, "output", "o", "", "output file (defaults to stdout for HTML)")
	renderCmd.Flags().StringVar(&rulesFile, "rules", "", "country rules YAML file (built-in table when omitted)")
	renderCmd.Flags().BoolVar(&asPDF, "pdf", false, "rasterize to PDF instead of HTML")
	renderCmd.Flags().StringVar(&chromePath, "chrome", "", "path to the Chrome binary for PDF output")
	_ = renderCmd.MarkFlagRequired("input")
	rootCmd.AddCommand(renderCmd)
}

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render a resume request file to HTML or PDF",
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := os.ReadFile(inputFile)
		if err != nil {
			return errors.Wrapf(err, "reading %s", inputFile)
		}

		var req render.Request
		if err := json.Unmarshal(raw, &req); err != nil {
			return errors.Wrapf(err, "parsing %s", inputFile)
		}

		rules, err := countries.Load(rulesFile)
		if err != nil {
			return errors.Wrap(err, "loading country rules")
		}

		var engine render.PDFEngine
		if asPDF {
			engine = pdf.NewEngine(pdf.Options{ChromePath: chromePath})
		}

		result, err := render.NewRenderer(rules, engine).Render(context.Background(), req, asPDF)
		if err != nil {
			return errors.Wrap(err, "rendering resume")
		}

		if asPDF {
			if outputFile == "" {
				return errors.New("--output is required for PDF output")
			}
			if err := os.WriteFile(outputFile, result.PDF, 0o644); err != nil {
				return errors.Wrapf(err, "writing %s", outputFile)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%s template, %d bytes)\n", outputFile, result.TemplateID, len(result.PDF))
			return nil
		}

		if outputFile == "" {
			fmt.Fprintln(cmd.OutOrStdout(), result.HTML)
			return nil
		}
		if err := os.WriteFile(outputFile, []byte(result.HTML), 0o644); err != nil {
			return errors.Wrapf(err, "writing %s", outputFile)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%s template)\n", outputFile, result.TemplateID)
		return nil
	},
}
