// Package libdiff reports line changes between a document and its peeled
// rendering.
package libdiff
