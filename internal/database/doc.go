// Package database provides SQLite-based storage of past analysis runs,
// enabling the history and compare commands.
package database
