// Package invariants gates checks that are too expensive for normal builds. Build or test
// with -tags invariants (or -race) to have every mutating tree operation verify the search
// tree order afterwards.
package invariants
