package endpoints

import "sort"

// DefaultHost is the generic API gateway used for endpoints without a
// dedicated regional hostname.
const DefaultHost = "api.ovh.com"

var hosts = map[string]string{
	"ovh-ca": "ca.api.ovh.com",
	"ovh-eu": "eu.api.ovh.com",
	"ovh-us": "us.api.ovh.com",

	"soyoustart-ca": "ca.api.soyoustart.com",
	"soyoustart-eu": "eu.api.soyoustart.com",

	"kimsufi-ca": "ca.api.kimsufi.com",
	"kimsufi-eu": "eu.api.kimsufi.com",
}

// Host returns the API gateway hostname for the given endpoint identifier.
// Identifiers outside the known table fall back to DefaultHost.
func Host(endpoint string) string {
	if host, ok := hosts[endpoint]; ok {
		return host
	}
	return DefaultHost
}

// Known returns the recognized endpoint identifiers in sorted order.
func Known() []string {
	ids := make([]string, 0, len(hosts))
	for id := range hosts {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
