// Package output provides output formatting for the postmask CLI.
//
//   - formatter.go: Formatter interface and factory
//   - table.go: Tables via tableprinter, with wide mode
//   - json.go: Indented JSON
//   - yaml.go: YAML
//
// Table output is for people. JSON and YAML are stable for scripts.
package output
