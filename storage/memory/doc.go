// Package memory provides a storage.Repository that holds the whole dataset in memory.
//
// It is built once from decoded records and never modified, which makes it
// safe for any number of concurrent readers. Employees of a company are
// returned in the order they were loaded.
package memory
