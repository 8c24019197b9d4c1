package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/guttosm/label-service/config"
	"github.com/guttosm/label-service/internal/domain/model"
	"github.com/guttosm/label-service/internal/service"
)

type allocateOptions struct {
	total    int
	labels   int
	strategy string
	prefixes []string
	start    int64
	output   string
}

func newAllocateCmd(cfg config.Config) *cobra.Command {
	opts := allocateOptions{}

	cmd := &cobra.Command{
		Use:   "allocate",
		Short: "Split a quantity over labels locally",
		Long: `Runs the allocation engine without the service. Nothing is reserved or
stored: --start is the first counter to use.`,
		Example: `  labelsvc allocate --total 100 --labels 3 --strategy last --prefix GRN123 --prefix P-01 --start 41
  labelsvc allocate --total 10 --labels 4 --strategy spread -o yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runAllocate(cmd.OutOrStdout(), opts, cfg.Workflow.MaxLabelCount)
		},
	}

	flags := cmd.Flags()
	flags.IntVar(&opts.total, "total", 0, "total quantity to distribute")
	flags.IntVar(&opts.labels, "labels", 0, "number of labels")
	flags.StringVarP(&opts.strategy, "strategy", "s", cfg.Workflow.DefaultStrategy, "remainder strategy: last|spread")
	flags.StringArrayVar(&opts.prefixes, "prefix", nil, "serial prefix part, repeatable and kept in order")
	flags.Int64Var(&opts.start, "start", 1, "first serial counter")
	flags.StringVarP(&opts.output, "output", "o", "table", "output format: table|json|yaml")
	_ = cmd.MarkFlagRequired("total")
	_ = cmd.MarkFlagRequired("labels")

	return cmd
}

func runAllocate(w io.Writer, opts allocateOptions, maxLabels int) error {
	strategy, err := model.ParseStrategy(opts.strategy)
	if err != nil {
		return err
	}

	allocator := service.NewLabelAllocatorService(service.WithMaxLabelCount(maxLabels))
	allocations, err := allocator.Generate(model.AllocationRequest{
		TotalQuantity:     opts.total,
		LabelCount:        opts.labels,
		SerialPrefixParts: opts.prefixes,
		StartingCounter:   opts.start,
		Strategy:          strategy,
	})
	if err != nil {
		return err
	}
	return writeAllocations(w, opts.output, allocations)
}

func writeAllocations(w io.Writer, format string, allocations []model.LabelAllocation) error {
	switch strings.ToLower(format) {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(allocations)
	case "yaml", "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(allocations); err != nil {
			return err
		}
		return enc.Close()
	case "table", "":
		rows := make([][]string, 0, len(allocations))
		for i, a := range allocations {
			rows = append(rows, []string{strconv.Itoa(i + 1), a.SerialNumber, strconv.Itoa(a.Quantity)})
		}
		t := table.New().
			Border(lipgloss.NormalBorder()).
			Headers("#", "SERIAL", "QTY").
			Rows(rows...)
		_, err := fmt.Fprintf(w, "%s\n%d labels, %d units\n", t.Render(), len(allocations), model.SumQuantities(allocations))
		return err
	default:
		return fmt.Errorf("unknown output format %q (table, json, yaml)", format)
	}
}
