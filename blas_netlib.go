//go:build netlib

package main

import (
	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/netlib/blas/netlib"
)

// This file routes gonum matrix products through a C BLAS
// when you build with `-tags netlib`.
func init() {
	blas64.Use(netlib.Implementation{})
}
