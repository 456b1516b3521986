// Package report writes classification results to CSV, text and XLSX
// files and prints run summaries.
package report

import "strings"

const csvExt = ".csv"

// EmailsPath returns the email-only companion path for a CSV output path.
func EmailsPath(output string) string {
	return sibling(output, "_emails_only.txt")
}

// UnknownPath returns the review-file path for a CSV output path.
func UnknownPath(output string) string {
	return sibling(output, "_unknown.csv")
}

// sibling swaps a trailing .csv for suffix, or appends suffix when the
// path has no .csv extension.
func sibling(output, suffix string) string {
	return strings.TrimSuffix(output, csvExt) + suffix
}
