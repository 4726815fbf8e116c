package config

// Default paths for the store and its flat-file sources
const (
	// DefaultDatabasePath is the default path for the catalog database
	DefaultDatabasePath = "./library.db"

	// DefaultUsersSourcePath is the CSV file users are seeded from
	DefaultUsersSourcePath = "./user.csv"

	// DefaultBooksSourcePath is the JSON book list books are seeded from
	DefaultBooksSourcePath = "./books.json"

	// DefaultExportPath is where the book snapshot is written. It is the same
	// file as the book source so a re-bootstrap reads back the last snapshot.
	DefaultExportPath = DefaultBooksSourcePath
)
