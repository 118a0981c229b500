// Package services implements the driving ports by orchestrating the
// search engine against the configured content source.
package services
