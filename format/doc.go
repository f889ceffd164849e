// Package format turns a logging call into its single output line.
//
// The pipeline is CountPlaceholders -> Classify -> Substitute -> Body
// -> Render. Classification drops empty ordered collections and
// renders everything else to its default string form. Substitution is
// positional: each placeholder marker consumes the next rendering, and
// renderings beyond the marker count are appended to the body as a
// bracketed "Extra Args" suffix so that no argument is ever silently
// discarded. Under-filled markers stay literal in the output.
//
// Placeholder counting is deliberately naive: it counts raw '%' bytes,
// not validated specifier tokens, preserving the behavior of the
// system this layer replaces. Substitute mirrors that rule (every '%'
// is a marker, '%' never acts as a specifier character) so the two
// stages always agree on how many arguments the template consumes.
//
// Nothing in this package returns an error. Rendering uses a pooled
// bytes.Buffer with Append-style formatting to stay allocation-light;
// buffers larger than 64 KiB are not returned to the pool.
package format
