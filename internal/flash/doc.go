// Package flash invokes the external flashing tool and coordinates the
// download+flash sequence behind a single-flight gate.
package flash
