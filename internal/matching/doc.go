// Package matching holds the pure content matching functions: the remedy
// filter, the dosha quiz scorer and the Veda Lab ingredient matcher.
//
// Nothing here performs I/O or keeps shared state. Callers pass an immutable
// snapshot of the catalog and get a fresh result back.
package matching
