// Copyright 2026 The Numerics Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// distfit reads newline-separated numbers and fits, inverts, or
// summarizes univariate distributions over them.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"

	flynn "github.com/montanaflynn/stats"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/USArmy-Corps-of-Engineers-RMC/Numerics-sub004/dist"
)

var log = logrus.New()

var (
	inputPath string
	family    string
	method    string
)

func main() {
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	root := &cobra.Command{
		Use:           "distfit",
		Short:         "fit and query univariate distributions",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&inputPath, "input", "i", "-", "data file, - for stdin")

	fitCmd := &cobra.Command{
		Use:   "fit",
		Short: "estimate parameters for a family",
		RunE:  runFit,
	}
	fitCmd.Flags().StringVarP(&family, "family", "f", "gev", "distribution family")
	fitCmd.Flags().StringVarP(&method, "method", "m", "lmom", "estimation method (mom, lmom, mle, mmom)")

	quantileCmd := &cobra.Command{
		Use:   "quantile [probabilities...]",
		Short: "fit a family and evaluate quantiles with standard errors",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runQuantile,
	}
	quantileCmd.Flags().StringVarP(&family, "family", "f", "gev", "distribution family")
	quantileCmd.Flags().StringVarP(&method, "method", "m", "lmom", "estimation method (mom, lmom, mle, mmom)")

	summaryCmd := &cobra.Command{
		Use:   "summary",
		Short: "describe the sample",
		RunE:  runSummary,
	}

	root.AddCommand(fitCmd, quantileCmd, summaryCmd)
	if err := root.Execute(); err != nil {
		log.Fatal(err)
	}
}

func newFamily(name string) (dist.Parametric, error) {
	switch name {
	case "cauchy":
		return dist.NewCauchy(), nil
	case "chisquared":
		return dist.NewChiSquared(), nil
	case "geometric":
		return dist.NewGeometric(), nil
	case "inversegamma":
		return dist.NewInverseGamma(), nil
	case "gev":
		return dist.NewGEV(), nil
	case "gpa":
		return dist.NewGeneralizedPareto(), nil
	case "pareto":
		return dist.NewPareto(), nil
	case "poisson":
		return dist.NewPoisson(), nil
	case "rayleigh":
		return dist.NewRayleigh(), nil
	case "triangular":
		return dist.NewTriangular(), nil
	case "noncentralt":
		return dist.NewNoncentralT(), nil
	case "pert":
		return dist.NewPert(), nil
	}
	return nil, errors.Errorf("unknown family %q", name)
}

func parseMethod(name string) (dist.EstimationMethod, error) {
	switch name {
	case "mom":
		return dist.MethodOfMoments, nil
	case "lmom":
		return dist.MethodOfLinearMoments, nil
	case "mle":
		return dist.MaximumLikelihood, nil
	case "mmom":
		return dist.ModifiedMethodOfMoments, nil
	}
	return 0, errors.Errorf("unknown estimation method %q", name)
}

func fitFromInput() (dist.Parametric, []float64, error) {
	xs, err := readInput(inputPath)
	if err != nil {
		return nil, nil, err
	}
	d, err := newFamily(family)
	if err != nil {
		return nil, nil, err
	}
	m, err := parseMethod(method)
	if err != nil {
		return nil, nil, err
	}
	if err := d.Estimate(xs, m); err != nil {
		return nil, nil, errors.Wrapf(err, "fitting %s by %s", family, m)
	}
	return d, xs, nil
}

func runFit(cmd *cobra.Command, args []string) error {
	d, xs, err := fitFromInput()
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{"family": family, "method": method, "n": len(xs)}).Info("fitted")
	for _, p := range d.Parameters() {
		fmt.Printf("%-20s %.6g\n", p.Label, p.Value)
	}
	return nil
}

func runQuantile(cmd *cobra.Command, args []string) error {
	d, xs, err := fitFromInput()
	if err != nil {
		return err
	}
	m, _ := parseMethod(method)
	for _, arg := range args {
		p, err := strconv.ParseFloat(arg, 64)
		if err != nil || p <= 0 || p >= 1 {
			return errors.Errorf("probability %q not in (0, 1)", arg)
		}
		x := d.InvCDF(p)
		se, seErr := dist.QuantileStdErr(d, p, len(xs), m)
		if seErr != nil {
			log.WithField("p", p).WithError(seErr).Warn("no standard error")
			fmt.Printf("%8.6g %14.6g\n", p, x)
			continue
		}
		fmt.Printf("%8.6g %14.6g  se %.6g\n", p, x, se)
	}
	return nil
}

func runSummary(cmd *cobra.Command, args []string) error {
	xs, err := readInput(inputPath)
	if err != nil {
		return err
	}

	data := flynn.LoadRawData(xs)
	mean, _ := data.Mean()
	median, _ := data.Median()
	sd, _ := data.StandardDeviationSample()
	fmt.Printf("N %d  mean %.6g  median %.6g  std dev %.6g\n", len(xs), mean, median, sd)

	labels := map[float64]string{0: "min", 50: "median", 100: "max"}
	s := dist.Sample{Xs: xs}
	for _, p := range []float64{0, 1, 5, 25, 50, 75, 95, 99, 100} {
		label, ok := labels[p]
		if !ok {
			label = fmt.Sprintf("%g%%ile", p)
		}
		fmt.Printf("%8s %.6g\n", label, s.Percentile(p/100))
	}

	if lm, err := s.LMoments(); err == nil {
		fmt.Printf("\nL1 %.6g  L2 %.6g  t3 %.6g  t4 %.6g\n", lm.L1, lm.L2, lm.T3, lm.T4)
	}
	return nil
}

func readInput(path string) ([]float64, error) {
	var r io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, errors.Wrap(err, "opening input")
		}
		defer f.Close()
		r = f
	}

	var xs []float64
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		l := scanner.Text()
		if l == "" {
			continue
		}
		value, err := strconv.ParseFloat(l, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "parsing %q", l)
		}
		xs = append(xs, value)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading input")
	}
	if len(xs) == 0 {
		return nil, errors.New("no input data")
	}
	return xs, nil
}
