// Package sanitize strips ANSI CSI color/erase sequences from buffered
// compiler diagnostic text before it is cached or echoed to a terminal.
// The scanner recognizes only the two terminators ("K" erase-line, "m"
// SGR color) that occur in compiler output; it is not a general ANSI
// parser.
package sanitize
