// Package database provides the data access layer for the application.
//
// # Architecture
//
// The database layer is organized into domain-specific sub-packages:
//
//	database/
//	├── database.go      # Connection setup, schema check
//	├── bootstrap.go     # First-run store creation and seeding
//	├── books/           # Book table queries
//	└── users/           # Credential table queries
//
// # Using Sub-packages
//
// Each sub-package provides a Repository type with domain-specific operations:
//
//	// Create and seed the store on first run
//	created, err := database.EnsureStore(cfg, log)
//
//	// Initialize database connection
//	db, err := database.NewDatabase(cfg.Database.Path, log)
//
//	// Create domain-specific repositories
//	booksRepo := books.NewRepository(db.DB)
//	usersRepo := users.NewRepository(db.DB)
//
// # Interface Implementations
//
//   - books.Repository: implements catalog.BookStore and exporters.BookReader
//   - users.Repository: implements auth.UserRepository
//
// # Adding a New Domain
//
// To add a new domain (e.g., loans):
//
//  1. Create a new sub-package: internal/database/loans/
//  2. Define a Repository struct with a *gorm.DB field
//  3. Add NewRepository(db *gorm.DB) constructor
//  4. Add the model to Models in database.go
//  5. Add compile-time interface check in internal/interfaces/checks.go
package database
