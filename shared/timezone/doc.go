// Package timezone provides timezone utilities for the application.
//
// Usage Examples:
//
//  1. Basic usage after initialization:
//     now := timezone.Now()                    // Get current time in app timezone
//     appTime := timezone.ToAppTime(someTime)  // Convert any time to app timezone
//
//  2. Calendar days, as used by the date pickers:
//     day := timezone.Date(2024, time.June, 3)
//     day = timezone.Day(checkinFromStore)
//
//  3. Parsing dates in app timezone:
//     t, err := timezone.Parse("2006-01-02", "2024-06-03")
//
// The timezone is configured via the APP_TIMEZONE environment variable
// and is automatically initialized when the package is imported.
// Use standard IANA timezone database names for reliable cross-platform compatibility.
package timezone
