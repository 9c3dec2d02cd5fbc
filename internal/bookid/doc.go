// Package bookid resolves loosely-labeled book titles to canonical Google
// Books volumes and maps those volumes into library metadata.
//
// The interesting logic lives in Normalize and SelectBest: titles are folded
// into a canonical comparable form (case, diacritics, punctuation, Roman
// numeral suffixes) and candidates are accepted on exact normalized equality
// with a ±1 year tolerance, first acceptable match winning in search-rank
// order. Everything else here is sequencing around the Google Books
// collaborator and a mechanical field projection.
package bookid
