// Copyright ©2025 The gmuon Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/qedlab/gmuon/thdm"
)

// pointFile is the YAML layout of a parameter-point file.  Every SM
// field is optional and overrides the default input point.
type pointFile struct {
	SM struct {
		AlphaEM *float64    `yaml:"alpha_em"`
		MW      *float64    `yaml:"mw"`
		MZ      *float64    `yaml:"mz"`
		MhSM    *float64    `yaml:"mh"`
		ML      *[3]float64 `yaml:"ml"`
		MU      *[3]float64 `yaml:"mu"`
		MD      *[3]float64 `yaml:"md"`
	} `yaml:"sm"`

	Point struct {
		Lambda1    float64 `yaml:"lambda1"`
		Lambda2    float64 `yaml:"lambda2"`
		Lambda3    float64 `yaml:"lambda3"`
		Lambda4    float64 `yaml:"lambda4"`
		Lambda5    float64 `yaml:"lambda5"`
		Lambda6    float64 `yaml:"lambda6"`
		Lambda7    float64 `yaml:"lambda7"`
		TanBeta    float64 `yaml:"tan_beta"`
		M122       float64 `yaml:"m122"`
		YukawaType string  `yaml:"yukawa_type"`
		ZetaU      float64 `yaml:"zeta_u"`
		ZetaD      float64 `yaml:"zeta_d"`
		ZetaL      float64 `yaml:"zeta_l"`
	} `yaml:"point"`
}

func parseYukawaType(s string) (thdm.YukawaType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "1", "i", "type i":
		return thdm.TypeI, nil
	case "2", "ii", "type ii":
		return thdm.TypeII, nil
	case "x", "type x":
		return thdm.TypeX, nil
	case "y", "type y":
		return thdm.TypeY, nil
	case "aligned":
		return thdm.TypeAligned, nil
	}
	return 0, fmt.Errorf("unknown yukawa type %q", s)
}

// loadPoint reads a parameter-point file and returns the SM inputs and
// the gauge-basis point.
func loadPoint(path string) (thdm.SM, thdm.GaugeBasis, error) {
	sm := thdm.DefaultSM()

	raw, err := os.ReadFile(path)
	if err != nil {
		return sm, thdm.GaugeBasis{}, err
	}

	var f pointFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return sm, thdm.GaugeBasis{}, fmt.Errorf("parsing %s: %w", path, err)
	}

	if f.SM.AlphaEM != nil {
		sm.AlphaEM = *f.SM.AlphaEM
	}
	if f.SM.MW != nil {
		sm.MW = *f.SM.MW
	}
	if f.SM.MZ != nil {
		sm.MZ = *f.SM.MZ
	}
	if f.SM.MhSM != nil {
		sm.MhSM = *f.SM.MhSM
	}
	if f.SM.ML != nil {
		sm.ML = *f.SM.ML
	}
	if f.SM.MU != nil {
		sm.MU = *f.SM.MU
	}
	if f.SM.MD != nil {
		sm.MD = *f.SM.MD
	}

	typ, err := parseYukawaType(f.Point.YukawaType)
	if err != nil {
		return sm, thdm.GaugeBasis{}, err
	}

	basis := thdm.GaugeBasis{
		Lambda1: f.Point.Lambda1,
		Lambda2: f.Point.Lambda2,
		Lambda3: f.Point.Lambda3,
		Lambda4: f.Point.Lambda4,
		Lambda5: f.Point.Lambda5,
		Lambda6: f.Point.Lambda6,
		Lambda7: f.Point.Lambda7,
		TanBeta: f.Point.TanBeta,
		M122:    f.Point.M122,
		Type:    typ,
		ZetaU:   f.Point.ZetaU,
		ZetaD:   f.Point.ZetaD,
		ZetaL:   f.Point.ZetaL,
	}

	return sm, basis, nil
}

// demoPoint is the built-in 2HDMC comparison point.
func demoPoint() (thdm.SM, thdm.GaugeBasis) {
	return thdm.DefaultSM(), thdm.GaugeBasis{
		Lambda1: 4.81665,
		Lambda2: 0.23993,
		Lambda3: 2.09923,
		Lambda4: -1.27781,
		Lambda5: -0.71038,
		TanBeta: 3.0,
		M122:    200.0 * 200.0,
		Type:    thdm.TypeII,
	}
}
