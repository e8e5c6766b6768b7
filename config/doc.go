// Package config loads the subset of cache settings a driver would
// otherwise hardcode — the base directory, cache root, fan-out level
// count, and materialization policy flags — plus the small text-parsing
// helpers (ParseDuration, ParseInt, ParseUint32) a fuller configuration
// loader would use to interpret them.
package config
