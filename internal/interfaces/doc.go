// Package interfaces documents the seams between the application's layers.
//
// # Interface Categories
//
// ## Data Access Interfaces
//
//   - catalog.BookStore: book persistence used by the catalog (internal/catalog/service.go)
//   - exporters.BookReader: read-only book access for snapshots (internal/exporters/generic.go)
//   - auth.UserRepository: credential lookup (internal/auth/service.go)
//
// ## Export Interfaces
//
//   - exporters.Synchronizer: rewrites the external copy of the book table
//
// ## Session Interfaces
//
//   - session.Authenticator: login check used by the terminal loop
//   - session.Catalog: the five menu operations plus title lookup
//
// # Adding a New Export Format
//
// To mirror the book table into another format (e.g. CSV):
//
//  1. Implement Synchronizer in internal/exporters/
//
//     type CSVExporter struct {
//         reader BookReader
//         path   string
//     }
//
//     func (e *CSVExporter) Sync() (ExportResult, error)
//
//  2. Add a compile-time check in checks.go:
//
//     var _ exporters.Synchronizer = (*exporters.CSVExporter)(nil)
//
//  3. Pass it to catalog.NewService in internal/entrypoint.
//
// # Compile-Time Interface Checks
//
// All implementations should include compile-time checks to ensure they satisfy
// their interfaces. This catches missing methods at compile time rather than runtime:
//
//	var _ SomeInterface = (*MyImplementation)(nil)
//
// See checks.go for the full list.
package interfaces
