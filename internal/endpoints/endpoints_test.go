package endpoints_test

import (
	"sort"
	"testing"

	"ovhcred/internal/endpoints"
)

func TestHostMapsKnownEndpoints(t *testing.T) {
	expected := map[string]string{
		"ovh-ca":        "ca.api.ovh.com",
		"ovh-eu":        "eu.api.ovh.com",
		"ovh-us":        "us.api.ovh.com",
		"soyoustart-ca": "ca.api.soyoustart.com",
		"soyoustart-eu": "eu.api.soyoustart.com",
		"kimsufi-ca":    "ca.api.kimsufi.com",
		"kimsufi-eu":    "eu.api.kimsufi.com",
	}
	for endpoint, want := range expected {
		if got := endpoints.Host(endpoint); got != want {
			t.Fatalf("Host(%q) = %q, want %q", endpoint, got, want)
		}
	}
}

func TestHostFallsBackForUnknownEndpoints(t *testing.T) {
	for _, endpoint := range []string{"", "idontexist-nw", "ovh-EU", "eu.api.ovh.com"} {
		if got := endpoints.Host(endpoint); got != endpoints.DefaultHost {
			t.Fatalf("Host(%q) = %q, want fallback %q", endpoint, got, endpoints.DefaultHost)
		}
	}
}

func TestKnownIsSortedAndComplete(t *testing.T) {
	ids := endpoints.Known()
	if len(ids) != 7 {
		t.Fatalf("expected 7 known endpoints, got %d: %v", len(ids), ids)
	}
	if !sort.StringsAreSorted(ids) {
		t.Fatalf("expected sorted endpoint ids, got %v", ids)
	}
	for _, id := range ids {
		if endpoints.Host(id) == endpoints.DefaultHost {
			t.Fatalf("known endpoint %q resolved to the fallback host", id)
		}
	}
}
