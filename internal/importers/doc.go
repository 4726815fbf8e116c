// Package importers reads the two seed sources used on first run.
//
// # Sources
//
//   - credentials CSV: one username,password pair per row. Rows with fewer
//     than two fields are skipped; extra fields are ignored. Values are kept
//     exactly as written.
//   - books JSON: an array of objects with title, author, publisher and year.
//     Records are not validated.
//
// # Example Usage
//
//	rows, err := importers.ReadCredentialsFile(cfg.Sources.UsersPath)
//	records, err := importers.ReadBooksFile(cfg.Sources.BooksPath)
//
// Both parsers also accept an io.Reader (ParseCredentialsCSV, ParseBooksJSON)
// for callers that already hold the data.
package importers
