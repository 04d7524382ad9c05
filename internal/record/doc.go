// Package record implements the shared input-record primitives: splitting a
// key=value line into a Record and decoding a record value as a JSON numeric
// vector. Every loader goes through this package; it is the single
// validation gate for input shape.
package record
