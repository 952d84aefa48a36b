// Package service provides domain services for the task API.
//
// Domain services contain the business logic and orchestrate operations
// on domain models. They define interfaces for storage dependencies so
// the storage layer stays swappable.
package service
