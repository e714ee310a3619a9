// Package entities contains core business entities.
package entities

// Contributor is a repository contributor as reported by GitHub.
// Only Login participates in eligibility matching.
type Contributor struct {
	ID    int64
	Login string
}
