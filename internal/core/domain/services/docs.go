// Package services provides domain services that span aggregates.
//
// The package includes:
//   - AccessPolicy: the single (operation, role) authorization table plus the
//     ownership rules that accompany it
//
// Every command handler and every protected read consults AccessPolicy, so the
// answer to "who may do this" lives in one place.
package services
