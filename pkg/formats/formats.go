// Package formats provides parsers for the Stunts data file formats.
package formats
