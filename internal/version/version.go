// Package version provides build and version information.
package version

// Version is the current application version.
const Version = "0.4.0"

// Milestones:
// 0.4.0 - Catalog file watching, live population reload in the scrubber
// 0.3.0 - HR diagram and event log views, JSON snapshot export
// 0.2.0 - IMF population sampler, TOML catalogs, parallel evaluation
// 0.1.0 - Initial release: analytic single-star tracks, summary and track commands
