// Package async provides utilities for parallel task execution with
// error collection.
//
// [RunParallel] executes independent operations concurrently, optionally
// bounded, and joins every error in task order. The survey file loader uses
// it to read image files in parallel.
package async
