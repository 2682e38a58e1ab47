// Package logtail reads the end of the cueplan log file and optionally
// follows it as new lines arrive.
package logtail
