// Package richtext prepares content for a headless CMS. It converts HTML
// fragments into the CMS's structured rich-text document tree and wraps
// record fields into single-locale values ready to be sent to the CMS.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, http/, xxhash/).
package richtext
