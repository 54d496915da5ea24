// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// dist describes samples and simulates probability distributions.
//
//	dist describe < values
//	dist sim --dist binomial --param 20 --param 0.3 --samples 5000
//	dist list
//
// describe reads newline-separated numbers from stdin and describes
// their distribution. sim draws from a named distribution and compares
// the sample with the distribution it was drawn from. list shows the
// distributions sim knows about.
package main

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/distkit/distkit/stats"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "dist:", err)
		os.Exit(1)
	}
}

// app holds the state shared by all subcommands.
type app struct {
	verbose bool
	log     *zap.SugaredLogger
}

func newRootCmd() *cobra.Command {
	return newAppCmd(&app{log: zap.NewNop().Sugar()})
}

// newAppCmd returns the root command, with its subcommands sharing a.
// The verbose setting of a sim config file also switches a to
// development logging.
func newAppCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "dist",
		Short:         "describe samples and simulate distributions",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.initLogger()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			// Sync fails harmlessly on unbuffered stderr.
			_ = a.log.Sync()
		},
	}
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable development logging")
	root.AddCommand(newDescribeCmd(a), newSimCmd(a), newListCmd())
	return root
}

func (a *app) initLogger() error {
	var (
		l   *zap.Logger
		err error
	)
	if a.verbose {
		l, err = zap.NewDevelopment()
	} else {
		l, err = zap.NewProduction()
	}
	if err != nil {
		return errors.Wrap(err, "creating logger")
	}
	a.log = l.Sugar()
	return nil
}

func newDescribeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "describe",
		Short: "describe newline-separated numbers read from stdin",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var data stats.Data
			if err := readInput(cmd.InOrStdin(), &data); err != nil {
				return err
			}
			a.log.Debugw("read input", "count", data.Count())
			if data.Count() == 0 {
				return errors.New("no input values")
			}
			return describe(cmd.OutOrStdout(), &data)
		},
	}
}

func describe(w io.Writer, s *stats.Data) error {
	n := s.Count()
	fmt.Fprintf(w, "N %d  sum %.6g  mean %.6g", n, s.Mean()*float64(n), s.Mean())
	gmean := geoMean(s.Values())
	if !math.IsNaN(gmean) {
		fmt.Fprintf(w, "  gmean %.6g", gmean)
	}
	fmt.Fprintf(w, "  std dev %.6g  variance %.6g\n", s.StdDev(), s.Variance())
	fmt.Fprintln(w)

	// Quartiles and tails.
	labels := map[int]string{0: "min", 50: "median", 100: "max"}
	for _, p := range []int{0, 1, 5, 25, 50, 75, 95, 99, 100} {
		label, ok := labels[p]
		if !ok {
			label = fmt.Sprintf("%d%%ile", p)
		}
		fmt.Fprintf(w, "%8s %.6g\n", label, s.Quantile(float64(p)/100))
	}
	fmt.Fprintln(w)

	// Kernel density estimate.
	kde := stats.KDE{}.From(s)
	fmt.Fprintf(w, "KDE bandwidth %.6g\n", kde.Bandwidth())
	return FprintPDF(w, kde)
}

// geoMean returns the geometric mean of xs, or NaN if any value is
// not positive.
func geoMean(xs []float64) float64 {
	sum := 0.0
	for _, x := range xs {
		if x <= 0 {
			return math.NaN()
		}
		sum += math.Log(x)
	}
	return math.Exp(sum / float64(len(xs)))
}

func readInput(r io.Reader, data *stats.Data) error {
	scanner := bufio.NewScanner(r)
	for line := 1; scanner.Scan(); line++ {
		l := strings.TrimSpace(scanner.Text())
		if l == "" {
			continue
		}
		value, err := strconv.ParseFloat(l, 64)
		if err != nil {
			return errors.Wrapf(err, "line %d", line)
		}
		data.Add(value)
	}
	return errors.Wrap(scanner.Err(), "reading input")
}
