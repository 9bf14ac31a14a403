// Copyright ©2025 The gmuon Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gmuon

import "go.uber.org/zap"

// logger is the side channel for domain-violation diagnostics.  The
// evaluation functions stay pure: they never return errors, they report
// here and hand back quiet NaN.  Defaults to a nop logger.
var logger = zap.NewNop()

// SetLogger installs the diagnostic logger.  Call it once during
// startup, before evaluation begins; the evaluation functions only read
// the logger, so installing it concurrently with evaluation is a race.
func SetLogger(l *zap.Logger) {
	if l != nil {
		logger = l
	}
}

// reportDomain logs an argument-out-of-physical-domain diagnostic for
// the named operation.  The caller returns quiet NaN afterwards.
func reportDomain(op, reason string) {
	logger.Error("argument out of physical domain",
		zap.String("op", op),
		zap.String("reason", reason),
	)
}
