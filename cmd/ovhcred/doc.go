// Package main hosts the ovhcred CLI entrypoint and command graph.
//
// The Cobra-based command tree surfaces the credential library to the
// terminal: listing endpoint identifiers, inspecting and verifying a
// credential file, and scaffolding a sample one. Resolution logic lives in
// the internal packages; commands here stay declarative and only handle
// flags, rendering, and exit behavior.
package main
