// Package testutil provides deterministic random data generation and
// quantity assertion helpers shared by the test suites.
package testutil
