// Package lawcite locates every provision in a corpus of structured law
// documents that contains one of a set of search words, and reports each
// hit with enough citation metadata (article, paragraph, item, and so on)
// to retrieve the provision later.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., etree/, json/, sqlite/).
package lawcite
