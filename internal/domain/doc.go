// Package domain defines core data models and interfaces shared across the app.
// It contains plain types (keys, candidates) and contracts (interfaces) only,
// plus the two error kinds the search can surface to a user.
package domain
