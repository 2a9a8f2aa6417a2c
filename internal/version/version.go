// internal/version/version.go
package version

// Version is printed by --version and the usage banner.
// Release tooling rewrites this line.
const Version = "0.3.1"
