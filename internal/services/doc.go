// Package services contains the loaders behind each expload subcommand.
//
// All loaders share the same pipeline (read file, split key=value records,
// write Redis hash fields) and differ only in read granularity, value
// decoding and key construction:
//
//   - ab-params:     line by line, raw values, one HSET per line,
//     malformed lines are skipped
//   - action-choice: line by line, raw values, one bulk HSET at the end,
//     first malformed line is fatal
//   - action-score:  line by line, JSON vector values, one bulk HSET per
//     line into a per-key hash, first bad line is fatal
//   - action-value:  whole file is one record, JSON vector value, one HSET
//     per element
//   - range-signal:  not implemented
//
// The skip-versus-abort split on malformed lines is intentional and
// documented per loader; ab-params feeds are produced by hand and a single
// typo must not block the rest of the file, while the other feeds are
// machine-generated and a bad line means the generator is broken.
package services
