// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/distkit/distkit/internal/catalog"
	"github.com/distkit/distkit/internal/config"
	"github.com/distkit/distkit/randx"
	"github.com/distkit/distkit/stats"
)

type simFlags struct {
	configPath string
	cfg        config.Config
}

func newSimCmd(a *app) *cobra.Command {
	f := &simFlags{cfg: config.Default()}
	cmd := &cobra.Command{
		Use:   "sim",
		Short: "simulate a distribution and compare the sample with it",
		Long: `
Sim draws samples from a distribution in the catalog (see "dist list")
and prints its theoretical moments next to the sample's, followed by
a frequency table. Settings come from the --config TOML file, if any,
and are overridden by flags.
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := f.resolve(cmd.Flags())
			if err != nil {
				return err
			}
			if cfg.Verbose && !a.verbose {
				a.verbose = true
				if err := a.initLogger(); err != nil {
					return err
				}
			}
			a.log.Debugw("resolved config", "config", f.configPath, "dist", cfg.Dist, "params", cfg.Params)
			return a.sim(cmd.OutOrStdout(), cfg)
		},
	}
	fl := cmd.Flags()
	fl.StringVarP(&f.configPath, "config", "c", "", "TOML `file` of settings")
	fl.StringVarP(&f.cfg.Dist, "dist", "d", f.cfg.Dist, "distribution `name`")
	fl.Float64SliceVarP(&f.cfg.Params, "param", "p", nil, "distribution parameters, in order")
	fl.IntVarP(&f.cfg.Samples, "samples", "n", f.cfg.Samples, "number of samples")
	fl.Uint64Var(&f.cfg.Seed, "seed", f.cfg.Seed, "random seed")
	fl.IntVar(&f.cfg.Bins, "bins", f.cfg.Bins, "frequency table bins for continuous distributions")
	fl.StringVar(&f.cfg.Plot, "plot", "", "write a histogram PNG to `file`")
	return cmd
}

// resolve merges the config file with the flags that were set
// explicitly.
func (f *simFlags) resolve(fl *pflag.FlagSet) (config.Config, error) {
	if f.configPath == "" {
		return f.cfg, f.cfg.Validate()
	}
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return cfg, err
	}
	if fl.Changed("dist") {
		cfg.Dist = f.cfg.Dist
	}
	if fl.Changed("param") {
		cfg.Params = f.cfg.Params
	}
	if fl.Changed("samples") {
		cfg.Samples = f.cfg.Samples
	}
	if fl.Changed("seed") {
		cfg.Seed = f.cfg.Seed
	}
	if fl.Changed("bins") {
		cfg.Bins = f.cfg.Bins
	}
	if fl.Changed("plot") {
		cfg.Plot = f.cfg.Plot
	}
	return cfg, cfg.Validate()
}

func (a *app) sim(w io.Writer, cfg config.Config) error {
	e, err := catalog.Lookup(cfg.Dist)
	if err != nil {
		return err
	}
	dist, err := e.New(cfg.Params)
	if err != nil {
		return err
	}

	start := time.Now()
	rv := stats.NewRandomVariable(dist, randx.New(cfg.Seed))
	xs := rv.SampleN(cfg.Samples)
	a.log.Infow("simulated",
		"dist", cfg.Dist, "params", cfg.Params,
		"samples", cfg.Samples, "seed", cfg.Seed,
		"elapsed", time.Since(start))

	var sample stats.Data
	sample.Add(xs...)
	title := fmt.Sprintf("%s %v", e.Usage(), cfg.Params)
	fmt.Fprintf(w, "%s, %d samples\n\n", title, cfg.Samples)
	writeMoments(w, dist, rv.Data(), &sample)
	fmt.Fprintln(w)
	writeFreq(w, dist, xs, cfg.Bins)

	if cfg.Plot != "" {
		if err := savePlot(cfg.Plot, title, dist, xs, cfg.Bins); err != nil {
			return err
		}
		a.log.Infow("wrote plot", "path", cfg.Plot)
	}
	return nil
}

func fmtFloat(x float64) string { return fmt.Sprintf("%.6g", x) }

func writeMoments(w io.Writer, dist stats.Dist, data *stats.IntervalData, sample *stats.Data) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"", "distribution", "sample"})
	table.SetAlignment(tablewriter.ALIGN_RIGHT)
	table.AppendBulk([][]string{
		{"mean", fmtFloat(stats.Mean(dist)), fmtFloat(data.Mean())},
		{"std dev", fmtFloat(stats.StdDev(dist)), fmtFloat(data.StdDev())},
		{"variance", fmtFloat(stats.Variance(dist)), fmtFloat(data.Variance())},
		{"median", fmtFloat(stats.Median(dist)), fmtFloat(sample.Median())},
		{"mode", "", fmtFloat(data.Mode())},
		{"min", fmtFloat(dist.Domain().LowerBound()), fmtFloat(data.Min())},
		{"max", fmtFloat(dist.Domain().UpperBound()), fmtFloat(data.Max())},
	})
	table.Render()
}

// writeFreq prints the probability of each bin next to the fraction
// of the sample that fell in it. A discrete distribution is tabulated
// on its support, and any other distribution on the given number of
// equal-width bins spanning its domain.
func writeFreq(w io.Writer, dist stats.Dist, xs []float64, bins int) {
	dom := dist.Domain()
	discrete := dist.Kind() == stats.Discrete
	if !discrete {
		lo, hi := dom.LowerBound(), dom.UpperBound()
		dom = stats.NewDomain(lo, hi, (hi-lo)/float64(bins))
	}
	data := stats.NewIntervalData(dom)
	data.Add(xs...)

	table := tablewriter.NewWriter(w)
	if discrete {
		table.SetHeader([]string{"x", "P(x)", "freq"})
	} else {
		table.SetHeader([]string{"bin", "P(bin)", "freq"})
	}
	table.SetAlignment(tablewriter.ALIGN_RIGHT)
	for i, x := range dom.Values() {
		var label string
		var p float64
		if discrete {
			label, p = fmtFloat(x), dist.PDF(x)
		} else {
			lo, hi := dom.Bound(i), dom.Bound(i+1)
			label = fmt.Sprintf("[%.4g, %.4g)", lo, hi)
			p = stats.CDF(dist, hi) - stats.CDF(dist, lo)
		}
		table.Append([]string{label, fmtFloat(p), fmtFloat(data.RelFreq(x))})
	}
	outside := data.Count()
	for _, x := range dom.Values() {
		outside -= data.Freq(x)
	}
	table.SetFooter([]string{"outside", "", fmt.Sprint(outside)})
	table.Render()
}
