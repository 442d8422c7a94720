package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/uyouii/percolation/model"
	"github.com/uyouii/percolation/utils"
	"gopkg.in/yaml.v3"
)

var label = color.New(color.FgCyan, color.Bold)

func writeReport(w io.Writer, format model.ReportFormat, summary model.Summary) error {
	switch format {
	case model.YamlReport:
		return writeYaml(w, summary)
	default:
		return writeText(w, summary)
	}
}

func writeText(w io.Writer, summary model.Summary) error {
	lines := []struct {
		name  string
		value string
	}{
		{"mean", fmt.Sprintf("%v", summary.Mean)},
		{"stddev", fmt.Sprintf("%v", summary.StdDev)},
		{"95% confidence interval", fmt.Sprintf("[%v, %v]", summary.ConfidenceLo, summary.ConfidenceHi)},
	}
	for _, line := range lines {
		if _, err := fmt.Fprintf(w, "%s = %s\n", label.Sprintf("%-23s", line.name), line.value); err != nil {
			return err
		}
	}
	return nil
}

// writeYaml rounds the statistics to six places; an undefined stddev encodes as .nan.
func writeYaml(w io.Writer, summary model.Summary) error {
	for _, v := range []*float64{&summary.Mean, &summary.StdDev, &summary.ConfidenceLo,
		&summary.ConfidenceHi, &summary.Min, &summary.Max} {
		*v = utils.FormatFloat(*v, 6)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(summary); err != nil {
		return err
	}
	return enc.Close()
}
