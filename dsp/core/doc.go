// Package core holds configuration and numeric helpers shared by the
// signal, conversion and measurement packages.
package core
