// Package memory provides in-memory storage for users and tasks.
//
// It implements the repository interfaces of the service layer using
// concurrent-safe data structures with sharded locking. All data is
// process-local and lost on restart.
package memory
