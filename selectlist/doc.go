// Package selectlist loads the plain-text include/exclude/order files the
// CLI's --include/--exclude/--order flags point at: one id per line,
// '#'-prefixed comments and blank lines skipped, order preserved.
package selectlist
