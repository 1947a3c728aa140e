// Package token handles the character level of scalar strings.
//
// [Unescape] expands the small fixed set of backslash escapes found in
// payloads stored as single line strings. [QuoteIfNeeded] decides how an
// inline string value is written back out.
package token
