// Package endpoints maps symbolic OVH endpoint identifiers to the API
// gateway hostnames used as the target of signed requests.
//
// The mapping is a closed, static table covering the OVH, So you Start, and
// Kimsufi brands per region. Unknown identifiers resolve to the generic
// gateway rather than failing, so resolution is total over all inputs.
package endpoints
