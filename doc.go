// Package scl reads and writes SCL, a configuration format in which every
// value carries an explicit type tag:
//
//	name :: str { "service" }
//	port :: num { 8080 }
//	tls  :: class {
//	    enabled :: bool { yes }
//	}
//	hosts :: list(str) { "a", "b" }
//
// The functions here cover the common cases.  The parse and encode
// packages expose the options behind them: comments, positions, colors and
// JSON or YAML interchange.
package scl
