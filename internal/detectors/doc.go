// Package detectors holds the fixed, ordered table of secret detectors.
// Each detector pairs a label with a compiled pattern. Scanning a text stops
// at the first detector whose pattern matches anywhere in it.
package detectors
