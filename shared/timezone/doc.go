// Package timezone provides timezone utilities for the application.
//
// Usage Examples:
//
//  1. Current time and day in the app timezone:
//     now := timezone.Now()
//     today := timezone.Today()
//
//  2. Formatting times in app timezone:
//     formatted := timezone.Format(time.Now(), "02/01/2006")
//
//  3. Parsing request dates:
//     t, err := timezone.ParseDate("2024-06-01")
//
// The timezone is configured via the APP_TIMEZONE environment variable
// and is automatically initialized when the package is imported.
// Use standard IANA timezone database names for reliable cross-platform compatibility.
package timezone
