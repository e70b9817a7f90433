// Package domain defines the core types and contracts shared across userstore.
// It contains plain types and interfaces only.
package domain
