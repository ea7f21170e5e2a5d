package main

import "github.com/gitrdm/setcsp/internal/csperrors"

type exitCode int

const (
	codeOK exitCode = iota
	codeUnsatisfiable
	codeInterrupted
	codeFailure
)

// classify maps a solve error to the exit-code taxonomy of spec §6.
func classify(err error) exitCode {
	switch {
	case err == nil:
		return codeOK
	case err == csperrors.Unsatisfiable:
		return codeUnsatisfiable
	case err == csperrors.Interrupted:
		return codeInterrupted
	default:
		return codeFailure
	}
}
