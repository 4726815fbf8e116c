package interfaces

// This file contains compile-time interface implementation checks.
// These ensure that concrete types satisfy their interfaces at compile time,
// catching missing methods before runtime.
//
// To verify all checks pass: go build ./internal/interfaces/...

import (
	"github.com/mrlokans/bookshelf/internal/auth"
	"github.com/mrlokans/bookshelf/internal/catalog"
	"github.com/mrlokans/bookshelf/internal/database/books"
	"github.com/mrlokans/bookshelf/internal/database/users"
	"github.com/mrlokans/bookshelf/internal/exporters"
	"github.com/mrlokans/bookshelf/internal/session"
)

// =============================================================================
// Data Access Layer
// =============================================================================

// BookStore implementations
var _ catalog.BookStore = (*books.Repository)(nil)

// BookReader implementations
var _ exporters.BookReader = (*books.Repository)(nil)

// UserRepository implementations
var _ auth.UserRepository = (*users.Repository)(nil)

// =============================================================================
// Export
// =============================================================================

// Synchronizer implementations
var _ exporters.Synchronizer = (*exporters.SnapshotExporter)(nil)

// =============================================================================
// Session Collaborators
// =============================================================================

var _ session.Authenticator = (*auth.Service)(nil)
var _ session.Catalog = (*catalog.Service)(nil)
