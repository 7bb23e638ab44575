// Package headlines provides a CLI tool that fetches a news page, extracts
// headline-like text through an ordered chain of selector heuristics, and
// writes the result to a plain-text file.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, http/, sqlite/).
package headlines
