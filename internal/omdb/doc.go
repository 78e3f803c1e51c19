// Package omdb holds the model catalog records exchanged with the model service:
// models, runs, worksets, types, parameters, output tables and word lists.
//
// Allowed here:
// - record types, their empty values and explicit clones
// - content predicates (is not empty, is valid) over typed records
// - pure derived fields: titles, counts, sizes, enum lookups, status text
//
// Not allowed here:
// - payload decoding and shape checks (see package shape)
// - selection state (see package store)
package omdb
