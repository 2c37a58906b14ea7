// Package config defines the postmask CLI configuration.
//
//   - spec.go: CLIConfig struct (~/.postmask/config.yaml)
//   - loader.go: Loading through confloader and saving as YAML
//
// Every setting can also come from a POSTMASK_<SECTION>_<KEY> environment
// variable or a global flag.
package config
