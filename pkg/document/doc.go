// Package document defines the records stored as JSON documents next to the
// relational columns of the database (audit info, submission data, mutation
// deltas) and converts them to and from domain types.
//
// Every field of a document is optional. Converters never fail on missing
// fields: an absent string becomes "" and an absent timestamp the zero time.
package document
