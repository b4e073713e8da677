// Package calc provides derived baseball metrics and a lightweight win
// predictor over recent game outcomes.
package calc
