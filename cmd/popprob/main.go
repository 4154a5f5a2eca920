package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/alexflint/go-arg"
	"github.com/govalues/decimal"
	"go.uber.org/zap"

	"github.com/on-the-ground/popprob_go/config"
	"github.com/on-the-ground/popprob_go/estimator"
	"github.com/on-the-ground/popprob_go/log"
)

type observation struct {
	Sample uint32 `arg:"--sample,required" help:"number of draws taken with replacement"`
	Unique uint32 `arg:"--unique,required" help:"number of distinct values among the draws"`
}

type popCmd struct {
	observation
}

type distCmd struct {
	observation
}

type probUniqueCmd struct {
	observation
	Size uint32 `arg:"--size,required" help:"candidate population size"`
}

type probPopCmd struct {
	observation
	Size uint32 `arg:"--size,required" help:"candidate population size"`
}

type args struct {
	Config     string         `arg:"--config,env:POPPROB_CONFIG" help:"path to a YAML config file"`
	Digits     int            `arg:"--digits" default:"6" help:"decimal places for probabilities"`
	Pop        *popCmd        `arg:"subcommand:pop" help:"most likely population size"`
	ProbUnique *probUniqueCmd `arg:"subcommand:prob-unique" help:"probability of the observed unique count for a size"`
	ProbPop    *probPopCmd    `arg:"subcommand:prob-pop" help:"posterior probability of a size"`
	Dist       *distCmd       `arg:"subcommand:dist" help:"truncated posterior around the most likely size"`
}

func (args) Description() string {
	return "popprob estimates the size of a population from draws with replacement"
}

func main() {
	var a args
	p := arg.MustParse(&a)
	if p.Subcommand() == nil {
		p.Fail("missing subcommand")
	}
	os.Exit(execute(a, os.Stdout, os.Stderr))
}

// execute runs one command and returns the process exit code. Returning
// instead of exiting lets the logger sync and the caches close first.
func execute(a args, stdout, stderr io.Writer) int {
	cfg, err := config.Load(a.Config)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	logger, err := log.NewLogger(cfg.Log.Level, cfg.Log.Development)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	defer log.Sync(logger)

	opts, teardown, err := cfg.EstimatorOptions(logger)
	if err != nil {
		logger.Error("failed to configure estimator", zap.Error(err))
		return 1
	}
	defer teardown()

	if err := run(stdout, estimator.New(opts...), a); err != nil {
		logger.Error("estimation failed", zap.Error(err))
		return 1
	}
	return 0
}

func run(w io.Writer, est *estimator.Estimator, a args) error {
	switch {
	case a.Pop != nil:
		size, err := est.Pop(a.Pop.Sample, a.Pop.Unique)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, size)
		return err
	case a.ProbUnique != nil:
		prob, err := est.ProbUnique(a.ProbUnique.Size, a.ProbUnique.Sample, a.ProbUnique.Unique)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, formatProbability(prob, a.Digits))
		return err
	case a.ProbPop != nil:
		prob, err := est.ProbPop(a.ProbPop.Sample, a.ProbPop.Unique, a.ProbPop.Size)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, formatProbability(prob, a.Digits))
		return err
	case a.Dist != nil:
		dist, err := est.Distribution(a.Dist.Sample, a.Dist.Unique)
		if err != nil {
			return err
		}
		for _, sp := range dist {
			if _, err := fmt.Fprintf(w, "%d\t%s\n", sp.Size, formatProbability(sp.Probability, a.Digits)); err != nil {
				return err
			}
		}
		return nil
	}
	return fmt.Errorf("no subcommand given")
}

// formatProbability rounds to the given number of decimal places. Values
// too small for a decimal are printed in scientific notation instead.
func formatProbability(p float64, digits int) string {
	d, err := decimal.NewFromFloat64(p)
	if err != nil || (d.IsZero() && p != 0) {
		return strconv.FormatFloat(p, 'g', digits, 64)
	}
	return d.Round(digits).String()
}
