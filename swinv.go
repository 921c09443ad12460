// Package swinv inverts surface-wave dispersion measurements into layered
// shear-velocity depth profiles, independently at every node of a 3D grid,
// and stitches the node operators into one global forward operator for an
// outer optimizer.
//
//	                     a model array (m)
//	       parameterizer   ^  |
//	                       |  v
//	                depth model (ZTOP, VP, VS, RH)
//	                          |
//	theory            dispersion solver
//	                          |
//	                          v
//	                   dispersion curve
//	       datacoder       |  ^
//	                       v  |
//	                      a data array (d)
//
// Per node, a Theory pairs one parameterizer with one datacoder; the
// ForwardOperator evaluates all nodes concurrently in fixed row-major
// (y,x) order and assembles the global block-diagonal sparse jacobian.
package swinv
