// Package credential resolves OVH API credentials from a TOML file or from
// explicit parameters.
//
// A Credential pairs the endpoint-derived gateway host with the application
// key, application secret, and consumer key used to sign requests. File
// loading reads a [default] table naming the active endpoint and a table
// named after that endpoint holding the three keys. Failures surface as
// typed errors (ErrRead, ErrParse, MissingFieldError) so callers decide
// whether to abort or retry with a different path; nothing is defaulted and
// no partial credential is ever returned.
//
// Signing, transport, and credential refresh live outside this package.
package credential
