// Copyright ©2025 The gmuon Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command amu evaluates the two-loop Higgs-sector contribution to the
// anomalous magnetic moment of the muon for a two-Higgs-doublet
// parameter point.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/qedlab/gmuon"
	"github.com/qedlab/gmuon/thdm"
)

var (
	configPath string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "amu",
	Short: "two-loop muon g-2 in the two-Higgs-doublet model",
	Long: `amu evaluates the two-loop Barr-Zee contribution to the anomalous
magnetic moment of the muon for a general two-Higgs-doublet parameter
point given in the gauge basis.  Without --config the built-in 2HDMC
comparison point is used.`,
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Version = buildVersion()
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "",
		"YAML parameter-point file")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false,
		"print the parameter point and spectrum")
}

// buildVersion reports the module version recorded in the binary's
// build info, if any.
func buildVersion() string {
	v, sum := gmuon.Version()
	if v == "" {
		return "devel"
	}
	if sum != "" {
		return v + " " + sum
	}
	return v
}

func run(cmd *cobra.Command, args []string) error {
	logger, err := newLogger(verbose)
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck
	gmuon.SetLogger(logger)

	sm := thdm.DefaultSM()
	var basis thdm.GaugeBasis
	if configPath != "" {
		sm, basis, err = loadPoint(configPath)
		if err != nil {
			return err
		}
	} else {
		sm, basis = demoPoint()
	}

	model, err := thdm.NewModel(sm, basis)
	if err != nil {
		return err
	}

	if verbose {
		fmt.Print(basis.String())
		sp := model.Spectrum
		fmt.Printf("mh = %.6g GeV\n", sp.Mh)
		fmt.Printf("mH = %.6g GeV\n", sp.MH)
		fmt.Printf("mA = %.6g GeV\n", sp.MA)
		fmt.Printf("mH+ = %.6g GeV\n", sp.MHp)
		fmt.Printf("alpha_h = %.6g\n", sp.AlphaH)
		fmt.Printf("eta = %.6g\n", sp.Eta)
	}

	amu2L := model.Amu2Loop()
	delta := thdm.Uncertainty2L(0, amu2L)

	fmt.Printf("amu2L = %.5e +- %.5e\n", amu2L, delta)
	return nil
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.ErrorLevel)
	return cfg.Build()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
