// Package engine models the native code-generation backend the target
// facade marshals against: a registry of target descriptors, option bags
// addressed through flag constants, target machines, per-triple library
// function tables and host introspection.
//
// The API is deliberately C-shaped (package-level functions over opaque
// structs, integer constants, diagnostic strings instead of errors) so the
// facade's marshaling stays an honest translation layer. Everything here is
// synchronous and not safe for concurrent mutation of a single handle.
package engine
