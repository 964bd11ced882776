// Package domain contains the core business entities for Minbar:
// the hadith collection catalogue, the indexable Document, and the
// search option/result types. It has no dependencies on adapters.
package domain
