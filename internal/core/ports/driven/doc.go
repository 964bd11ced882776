// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - SearchEngine: full-text index over hadith documents (bleve)
//   - CorpusClient: read-only access to the CDN-hosted corpus
//   - PartWriter / PartSource: persistence and loading of serialised index parts
//
// # Optional Interfaces
//
//   - DocumentCache: session-scoped reuse of fallback-fetched documents
//   - BookmarkStore: bookmark persistence (SQLite)
//   - ConfigStore: application configuration (TOML)
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: any adapter package
package driven
