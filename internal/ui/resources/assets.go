// Package resources provides static asset handling for the notes site.
package resources

// StaticDirectoryPath is the path to static assets from the repo root.
const StaticDirectoryPath = "internal/ui/resources/static"
