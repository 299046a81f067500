// Package sift extracts normalized, structured records from third-party
// web pages: video search results embedded as JSON in HTML, image search
// pages, page metadata and the visible text of generic articles.
//
// This package contains domain types, interfaces and the pure parsing
// helpers shared by all extractors, following Ben Johnson's Standard
// Package Layout. Implementations live in subdirectories named after their
// primary dependency (e.g., goquery/, http/, sqlite/).
package sift
