// Package resolver decides which configuration profile and theme apply and
// whether the files needed to use them exist.
//
// Every operation starts from an Overrides value, resolves it to absolute
// Paths, and walks a fixed sequence of checks that stops at the first
// failure:
//
//	config file exists -> profile directory exists -> profile name resolvable
//	-> profile file exists [-> target field exists -> field written]
//
// Failures are *Error values whose Kind identifies the failed step. Exit
// codes are not universal; ExitCode maps a kind to the code of the
// operation that produced it.
//
// The engine keeps no state between calls. The only mutation it performs is
// UpdateField's single read-modify-write of a profile file. Concurrent
// updaters on the same file are not coordinated.
package resolver
