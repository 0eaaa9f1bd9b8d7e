// Package newslens provides a CLI that fetches a web page, extracts its
// article text with an ordered fallback of structural heuristics, and reports
// a sentiment label, a confidence score and a short summary as JSON.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, gemini/, zerolog/).
package newslens
