// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"image/color"
	"io"
	"math"
	"strings"

	"github.com/cockroachdb/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/distkit/distkit/stats"
)

const (
	pdfRows  = 20
	pdfWidth = 60
)

// FprintPDF prints an ASCII plot of dist's PDF over its domain, one
// row per bin of a coarsened domain.
func FprintPDF(w io.Writer, dist stats.Dist) error {
	dom := dist.Domain()
	rows := pdfRows
	if dist.Kind() == stats.Discrete && dom.Size() <= 2*pdfRows {
		rows = dom.Size()
	}
	step := (dom.UpperValue() - dom.LowerValue()) / math.Max(float64(rows-1), 1)
	xs := make([]float64, rows)
	for i := range xs {
		xs[i] = dom.LowerValue() + float64(i)*step
	}
	ys := stats.PDFEach(dist, xs)
	top := stats.MaxPDF(dist)
	if !(top > 0) || math.IsInf(top, 0) {
		top = 0
		for _, y := range ys {
			top = math.Max(top, y)
		}
	}

	for i, x := range xs {
		n := 0
		if top > 0 {
			n = int(math.Round(math.Min(ys[i]/top, 1) * pdfWidth))
		}
		if _, err := fmt.Fprintf(w, "%10.4g %-10.4g %s\n", x, ys[i], strings.Repeat("*", n)); err != nil {
			return errors.Wrap(err, "writing plot")
		}
	}
	return nil
}

// savePlot writes a PNG comparing the sample xs with dist's density.
// A continuous sample is drawn as a normalized histogram and a
// discrete sample as relative frequencies at each support point.
func savePlot(path, title string, dist stats.Dist, xs []float64, bins int) error {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "x"
	dom := dist.Domain()

	if dist.Kind() == stats.Discrete {
		p.Y.Label.Text = "probability"
		data := stats.NewIntervalData(dom)
		data.Add(xs...)
		emp := make(plotter.XYs, dom.Size())
		pmf := make(plotter.XYs, dom.Size())
		for i, x := range dom.Values() {
			emp[i] = plotter.XY{X: x, Y: data.RelFreq(x)}
			pmf[i] = plotter.XY{X: x, Y: dist.PDF(x)}
		}
		s, err := plotter.NewScatter(emp)
		if err != nil {
			return errors.Wrap(err, "plotting sample")
		}
		l, err := plotter.NewLine(pmf)
		if err != nil {
			return errors.Wrap(err, "plotting distribution")
		}
		l.Color = color.RGBA{R: 200, A: 255}
		p.Add(s, l)
		p.Legend.Add("sample", s)
		p.Legend.Add("pmf", l)
	} else {
		p.Y.Label.Text = "density"
		// Heavy tails would stretch the histogram far past the
		// interesting part of the distribution.
		var in plotter.Values
		for _, x := range xs {
			if x >= dom.LowerBound() && x <= dom.UpperBound() {
				in = append(in, x)
			}
		}
		if len(in) == 0 {
			return errors.New("no samples inside the domain")
		}
		h, err := plotter.NewHist(in, bins)
		if err != nil {
			return errors.Wrap(err, "plotting sample")
		}
		h.Normalize(1)
		f := plotter.NewFunction(dist.PDF)
		f.XMin, f.XMax = dom.LowerBound(), dom.UpperBound()
		f.Samples = 200
		f.Color = color.RGBA{R: 200, A: 255}
		p.Add(h, f)
		p.Legend.Add("sample", h)
		p.Legend.Add("pdf", f)
	}

	if err := p.Save(6*vg.Inch, 4*vg.Inch, path); err != nil {
		return errors.Wrapf(err, "saving %s", path)
	}
	return nil
}
