package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/browser"
	"github.com/spf13/cobra"

	"github.com/halvard/graphgram/gramtext"
	"github.com/halvard/graphgram/grammar"
	"github.com/halvard/graphgram/graph"
	"github.com/halvard/graphgram/match"
	"github.com/halvard/graphgram/render"
)

var (
	iterations int
	output     string
	profile    bool
	verbosity  int
	openOutput bool
)

// newRootCmd builds the graphgram command: one or more grammar files
// applied in sequence to the same evolving graph, per spec §6's CLI
// surface.
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "graphgram GRAMMAR [GRAMMAR...]",
		Short:         "Rewrite a graph by repeatedly applying a graph grammar",
		Args:          cobra.MinimumNArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE:          runGrammars,
	}

	cmd.Flags().IntVarP(&iterations, "iterations", "i", 100, "maximum number of rewrite steps to run per grammar")
	cmd.Flags().StringVarP(&output, "output", "o", "graph.svg", "output SVG file to write")
	cmd.Flags().BoolVar(&profile, "profile", false, "log per-step timing and CSP search stats")
	cmd.Flags().CountVarP(&verbosity, "verbose", "v", "repeat for more detail; -vv under --profile also dumps CSP variable domains per step")
	cmd.Flags().BoolVar(&openOutput, "open", false, "open the rendered SVG in a browser after writing it")

	cmd.AddCommand(newGenerateCmd())
	return cmd
}

func runGrammars(cmd *cobra.Command, args []string) error {
	level := hclog.Info
	if verbosity >= 2 {
		level = hclog.Debug
	}
	logger := hclog.New(&hclog.LoggerOptions{
		Name:   "graphgram",
		Level:  level,
		Output: cmd.ErrOrStderr(),
	})
	runID := uuid.New().String()

	driver := grammar.NewDriver(rand.New(rand.NewSource(time.Now().UnixNano())), grammar.ExhaustiveMode, match.Config{})
	driver.Debug = profile && verbosity >= 2
	ctx := context.Background()

	var current *graph.Graph
	for _, filename := range args {
		gr, err := loadGrammarFile(filename)
		if err != nil {
			reportErrors(cmd.ErrOrStderr(), err)
			return err
		}
		if current == nil {
			current = gr.Start
		}

		final, results, err := driver.Run(ctx, current, gr, iterations)
		if err != nil {
			err = fmt.Errorf("running %s: %w", filename, err)
			fmt.Fprintln(cmd.ErrOrStderr(), err)
			return err
		}
		current = final

		if profile {
			logSteps(logger, runID, filename, results)
		}
	}

	svg := render.SVG(current)
	if err := os.WriteFile(output, []byte(svg), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", output, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", output)

	if openOutput {
		if err := browser.OpenFile(output); err != nil {
			return fmt.Errorf("opening %s in browser: %w", output, err)
		}
	}
	return nil
}

func loadGrammarFile(filename string) (*grammar.Grammar, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", filename, err)
	}
	gr, err := gramtext.ParseGrammarFile(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", filename, err)
	}
	return gr, nil
}

func logSteps(logger hclog.Logger, runID, filename string, results []grammar.StepResult) {
	for _, res := range results {
		logger.Info("step",
			"run", runID,
			"grammar", filename,
			"iteration", res.Iteration,
			"rulesChecked", res.RulesChecked,
			"matchesFound", res.MatchesFound,
			"endReason", res.Report.EndReason.String(),
			"elapsed", res.Report.Elapsed,
			"nodesExplored", res.Report.Stats.NodesExplored,
			"backtrackCount", res.Report.Stats.BacktrackCount,
			"constraintChecks", res.Report.Stats.ConstraintChecks,
		)
		if res.Dump != "" {
			logger.Debug("step domains", "run", runID, "grammar", filename, "iteration", res.Iteration, "domains", res.Dump)
		}
	}
}

// reportErrors prints every independent parse/validation failure in err
// (a *multierror.Error wraps more than one), rendering gramtext.ParseError
// values via their own colorized Pretty form. Color codes are written
// whether or not w is a terminal.
func reportErrors(w io.Writer, err error) {
	var merr *multierror.Error
	if errors.As(err, &merr) {
		for _, e := range merr.Errors {
			printOneError(w, e)
		}
		return
	}
	printOneError(w, err)
}

func printOneError(w io.Writer, err error) {
	var pe *gramtext.ParseError
	if errors.As(err, &pe) {
		fmt.Fprintln(w, pe.Pretty())
		return
	}
	fmt.Fprintln(w, err.Error())
}
