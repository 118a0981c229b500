// Package domain contains the core business entities for Scriptura:
// the canon content records supplied by content sources, the indexed
// items the search engine matches against, and the scored results it
// returns. Domain types have no dependencies on adapters or services.
package domain
