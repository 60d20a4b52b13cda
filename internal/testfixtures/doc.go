// Package testfixtures holds checked-in generator output used by tests.
// The generator tests regenerate dyngen_gen.go from demo.yaml and compare;
// the tests in this package run the generated conversions.
package testfixtures

//go:generate go run ../../cmd/dyngen gen demo.yaml -o . -p testfixtures
