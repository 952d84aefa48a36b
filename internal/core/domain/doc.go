// Package domain defines the core domain models for the task service.
//
// Domain models are pure value objects and entities without any
// IO dependencies or framework coupling.
package domain
