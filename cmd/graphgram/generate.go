package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/halvard/graphgram/builder"
)

const (
	defaultShapeSize = 5
	defaultLeftSize  = 2
	defaultRightSize = 3
	defaultGridRows  = 3
	defaultGridCols  = 3
	defaultSparseN   = 8
)

// newGenerateCmd builds the "generate" subcommand, printing a synthetic
// start graph so a grammar author can get going without hand-writing
// one.
func newGenerateCmd() *cobra.Command {
	var directed bool
	var seed int64
	var prob float64
	var tagScheme string

	cmd := &cobra.Command{
		Use:   "generate SHAPE [SIZE...]",
		Short: "Print a graph-string literal for a synthetic start graph",
		Long: "Shapes: cycle, path, star, wheel, complete, bipartite, grid, random.\n" +
			"SIZE arguments are shape-specific: most take one size, bipartite and\n" +
			"grid take two, random takes one size plus --p for edge probability.\n" +
			"--tags picks the node-tag scheme (decimal, symbol, excel, hex,\n" +
			"alphanumeric, none); a rule whose left side names a tag can only match\n" +
			"a tagged node, so the default is decimal rather than the untagged none.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sizes, err := parseSizes(args[1:])
			if err != nil {
				return err
			}
			ctor, err := shapeConstructor(args[0], sizes, prob)
			if err != nil {
				return err
			}
			idOpt, err := idSchemeOption(tagScheme)
			if err != nil {
				return err
			}

			bopts := []builder.BuilderOption{idOpt}
			if seed != 0 {
				bopts = append(bopts, builder.WithSeed(seed))
			} else {
				bopts = append(bopts, builder.WithSeed(time.Now().UnixNano()))
			}

			g, err := builder.BuildGraph(directed, bopts, ctor)
			if err != nil {
				return fmt.Errorf("generate %s: %w", args[0], err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), encodeGraphString(g))
			return nil
		},
	}

	cmd.Flags().BoolVar(&directed, "directed", false, "generate a directed graph")
	cmd.Flags().Int64Var(&seed, "seed", 0, "PRNG seed (0 picks a process-seeded source)")
	cmd.Flags().Float64Var(&prob, "p", 0.3, "edge probability, random shape only")
	cmd.Flags().StringVar(&tagScheme, "tags", "decimal", "node tag scheme: decimal, symbol, excel, hex, alphanumeric, none")
	return cmd
}

// idSchemeOption maps a --tags flag value to the matching builder ID
// scheme option.
func idSchemeOption(scheme string) (builder.BuilderOption, error) {
	switch strings.ToLower(scheme) {
	case "decimal":
		return builder.WithDecimalIDs(), nil
	case "symbol":
		return builder.WithSymbolIDs(), nil
	case "excel", "excelcolumn":
		return builder.WithExcelColumnIDs(), nil
	case "hex":
		return builder.WithHexIDs(), nil
	case "alphanumeric":
		return builder.WithAlphanumericIDs(), nil
	case "none":
		return builder.WithDefaultIDs(), nil
	default:
		return nil, fmt.Errorf("generate: unknown tag scheme %q (want one of: decimal, symbol, excel, hex, alphanumeric, none)", scheme)
	}
}

func parseSizes(args []string) ([]int, error) {
	sizes := make([]int, 0, len(args))
	for _, a := range args {
		n, err := strconv.Atoi(a)
		if err != nil {
			return nil, fmt.Errorf("generate: invalid size %q: %w", a, err)
		}
		sizes = append(sizes, n)
	}
	return sizes, nil
}

func shapeConstructor(shape string, sizes []int, prob float64) (builder.Constructor, error) {
	size := func(i, def int) int {
		if i < len(sizes) {
			return sizes[i]
		}
		return def
	}

	switch strings.ToLower(shape) {
	case "cycle":
		return builder.Cycle(size(0, defaultShapeSize)), nil
	case "path":
		return builder.Path(size(0, defaultShapeSize)), nil
	case "star":
		return builder.Star(size(0, defaultShapeSize)), nil
	case "wheel":
		return builder.Wheel(size(0, defaultShapeSize)), nil
	case "complete":
		return builder.Complete(size(0, defaultShapeSize)), nil
	case "bipartite", "completebipartite":
		return builder.CompleteBipartite(size(0, defaultLeftSize), size(1, defaultRightSize)), nil
	case "grid":
		return builder.Grid(size(0, defaultGridRows), size(1, defaultGridCols)), nil
	case "random", "randomsparse":
		return builder.RandomSparse(size(0, defaultSparseN), prob), nil
	default:
		return nil, fmt.Errorf("generate: unknown shape %q (want one of: cycle, path, star, wheel, complete, bipartite, grid, random)", shape)
	}
}
