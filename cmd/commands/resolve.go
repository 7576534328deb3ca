package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pluqqy/drumroll/internal/cli"
	"github.com/pluqqy/drumroll/pkg/datepicker"
	"github.com/pluqqy/drumroll/pkg/wheel"
)

var (
	resolveFirst    int
	resolveOffset   int
	resolveVisible  int
	resolveItemSize int
	resolveCount    int
	resolvePolicy   string
	resolveWheel    string
	resolveYearMin  int
	resolveYearMax  int
)

// ResolveResult is what resolve prints
type ResolveResult struct {
	Policy             string `json:"policy" yaml:"policy"`
	FirstVisibleIndex  int    `json:"first_visible_index" yaml:"first_visible_index"`
	FirstVisibleOffset int    `json:"first_visible_offset" yaml:"first_visible_offset"`
	VisibleCount       int    `json:"visible_count" yaml:"visible_count"`
	ItemSize           int    `json:"item_size" yaml:"item_size"`
	ItemCount          int    `json:"item_count" yaml:"item_count"`
	Index              int    `json:"index" yaml:"index"`
	Wheel              string `json:"wheel,omitempty" yaml:"wheel,omitempty"`
	Value              *int   `json:"value,omitempty" yaml:"value,omitempty"`
}

// NewResolveCommand creates the resolve command
func NewResolveCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Resolve scroll metrics to a selected index",
		Long: `Runs a resolve policy on scroll metrics, the same way a wheel does when
it comes to rest, and prints the selected index.

Give the number of items with --count, or name one of the date wheels with
--wheel to also print the selected value.

Examples:
  # Twelve items, five rows, first visible item 3
  drumroll resolve --first 3 --count 12

  # Which year does the year wheel show when scrolled to the top?
  drumroll resolve --first 0 --wheel year

  # Threshold policy, half an item scrolled past the top row
  drumroll resolve --policy threshold --first 4 --offset 3 --count 31 -o json`,
		Args: cobra.NoArgs,
		RunE: runResolve,
	}

	cmd.Flags().IntVar(&resolveFirst, "first", 0, "Index of the first visible item")
	cmd.Flags().IntVar(&resolveOffset, "offset", 0, "Units the first visible item is scrolled past the top")
	cmd.Flags().IntVar(&resolveVisible, "visible", wheel.DefaultVisibleCount, "Number of visible rows")
	cmd.Flags().IntVar(&resolveItemSize, "item-size", wheel.DefaultItemSize, "Units per item")
	cmd.Flags().IntVar(&resolveCount, "count", 0, "Number of items")
	cmd.Flags().StringVar(&resolvePolicy, "policy", wheel.PolicyCenter, "Resolve policy (center, threshold)")
	cmd.Flags().StringVar(&resolveWheel, "wheel", "", "Date wheel to resolve on (year, month, day)")
	cmd.Flags().IntVar(&resolveYearMin, "year-min", datepicker.DefaultMinYear, "First year of the year wheel")
	cmd.Flags().IntVar(&resolveYearMax, "year-max", datepicker.DefaultMaxYear, "Last year of the year wheel")

	cmd.MarkFlagsMutuallyExclusive("count", "wheel")

	return cmd
}

func runResolve(cmd *cobra.Command, args []string) error {
	outputFormat, _ := cmd.Flags().GetString("output")
	if err := cli.ValidateOutputFormat(outputFormat); err != nil {
		return err
	}

	policy, err := wheel.PolicyByName(resolvePolicy)
	if err != nil {
		return err
	}
	if resolveVisible < 1 {
		return fmt.Errorf("--visible must be at least 1, got %d", resolveVisible)
	}
	if resolveItemSize < 1 {
		return fmt.Errorf("--item-size must be at least 1, got %d", resolveItemSize)
	}

	var items *wheel.Wheel[int]
	count := resolveCount
	if resolveWheel != "" {
		items, err = dateWheel(resolveWheel)
		if err != nil {
			return err
		}
		count = items.Len()
	}
	if count < 1 {
		return fmt.Errorf("either --count or --wheel is required: %w", wheel.ErrEmptyWheel)
	}

	metrics := wheel.Metrics{
		FirstVisibleIndex:  resolveFirst,
		FirstVisibleOffset: resolveOffset,
		VisibleCount:       resolveVisible,
		ItemSize:           resolveItemSize,
		ItemCount:          count,
	}
	result := ResolveResult{
		Policy:             policy.Name(),
		FirstVisibleIndex:  metrics.FirstVisibleIndex,
		FirstVisibleOffset: metrics.FirstVisibleOffset,
		VisibleCount:       metrics.VisibleCount,
		ItemSize:           metrics.ItemSize,
		ItemCount:          metrics.ItemCount,
		Index:              policy.Resolve(metrics),
	}
	if items != nil {
		value := items.At(result.Index)
		result.Wheel = resolveWheel
		result.Value = &value
	}

	return cli.OutputResults(cmd.OutOrStdout(), outputFormat, result, func(w io.Writer) error {
		if result.Value == nil {
			_, err := fmt.Fprintf(w, "index: %d\n", result.Index)
			return err
		}
		_, err := fmt.Fprintf(w, "index: %d\nvalue: %d\n", result.Index, *result.Value)
		return err
	})
}

func dateWheel(name string) (*wheel.Wheel[int], error) {
	switch strings.ToLower(name) {
	case "year":
		if err := cli.ValidateYearRange(resolveYearMin, resolveYearMax); err != nil {
			return nil, err
		}
		return wheel.Range(resolveYearMin, resolveYearMax)
	case "month":
		return wheel.Range(datepicker.MinMonth, datepicker.MaxMonth)
	case "day":
		return wheel.Range(datepicker.MinDay, datepicker.MaxDay)
	default:
		return nil, fmt.Errorf("unknown wheel %q (must be: year, month, or day)", name)
	}
}
