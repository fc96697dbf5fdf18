// Package engine runs the scan pipeline: enumerate candidate paths from git,
// classify each by path, read a bounded prefix of scannable text files and
// match it against the ordered detector table. Offenders are returned in
// enumeration order with at most one record per file. External consumers
// should use the facade in pkg/core.
package engine
