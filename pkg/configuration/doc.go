// Package configuration provides loading facilities for treediff's YAML
// configuration file.
package configuration
