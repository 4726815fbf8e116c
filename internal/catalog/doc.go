// Package catalog implements the book operations offered to the user:
// create, delete, update, search and list.
//
// Every operation validates its raw input before touching the store and
// returns an apperr error kind on failure. Successful writes and every
// listing rewrite the export snapshot; a failed snapshot write is reported
// in Listing.SyncErr and never fails the operation itself.
package catalog
