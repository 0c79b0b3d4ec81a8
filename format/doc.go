// Package format names the document formats the parser and encoder
// understand: SCL itself plus JSON and YAML for interchange.
package format
