// Copyright ©2025 The gmuon Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gmuon evaluates the loop functions entering predictions for the
// anomalous magnetic moment of the muon in two-Higgs-doublet and
// supersymmetric extensions of the Standard Model.
//
// The package is a pure function-evaluation core: every exported function
// maps one to three double-precision scalars to one double-precision
// scalar, with no state, no I/O and no allocation. All functions are safe
// for concurrent use from any number of goroutines.
//
// The numerical hard part is not the closed forms themselves but their
// behavior near mass degeneracies, thresholds and zero-mass limits, where
// the generic formulas suffer catastrophic cancellation. Each function
// therefore dispatches on an explicit degeneracy region and switches to a
// dedicated series expansion inside a tuned crossover radius; the radii
// are collected in tolerances.go.
//
// Evaluation layers, bottom up:
//   - Dilog, DilogC, Clausen2: transcendental kernels
//   - IsZero, IsEqual: the relative comparison primitive behind every
//     degeneracy branch
//   - Phi, Iabc: two- and three-point kinematic loop integrals
//   - F1C..F4C, F1N..F4N, G3, G4, Fa, Fb: one-loop form factors
//   - FPS, FS, FSferm, F1, F1t, F2, F3: two-loop Barr-Zee kernels
//
// Model parameters and the assembly of the functions into a_mu
// contributions live in the thdm subpackage.
package gmuon
