// Package output provides result emitters: small renderers that each consume
// (title, value) pairs and write them to an output sink in one format.
//
// Four formats are available: reStructuredText, Markdown, JSON and CSV. All
// emitters write to the io.Writer they are constructed with and never close
// it. Only the JSON emitter frames its output and therefore needs an explicit
// Open and Close around the Result calls.
package output
