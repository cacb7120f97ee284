// Package pathresolve expands user-typed paths into canonical directory paths.
//
// Supported syntax:
//   - Forward slashes, converted to the platform separator
//   - A leading "~" for the home directory
//   - A leading separator for the system drive (Windows only)
//   - A leading %NAME% placeholder naming an environment variable
//
// The result always ends with exactly one separator and never contains a
// doubled separator. Resolution performs no filesystem access.
package pathresolve
