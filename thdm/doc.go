// Copyright ©2025 The gmuon Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package thdm implements the general two-Higgs-doublet model layer on
// top of the gmuon evaluation core: Standard Model inputs, the gauge and
// physical parameter bases, the tree-level Higgs spectrum, the scalar
// Yukawa couplings of Eq.(18) arXiv:1607.06292, and the two-loop
// Barr-Zee contributions to the anomalous magnetic moment of the muon.
package thdm
