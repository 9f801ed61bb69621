// Package config loads and validates domweave.json project
// configuration.
package config
