// Package config loads the client's TOML configuration: the API address,
// the cost-edit debounce window, logging options and the offline switch.
// A missing config file is not an error; every field has a default.
package config
