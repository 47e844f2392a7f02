// Package utils provides general-purpose helper utilities
// used across different parts of the application.
package utils
