package credential

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"ovhcred/internal/endpoints"
)

// DefaultPath is the conventional credential file name, resolved relative
// to the working directory.
const DefaultPath = "Config.toml"

//go:embed sample_config.toml
var sampleConfig string

// Credential bundles the resolved API gateway host with the application
// key, application secret, and consumer key used to sign requests. Values
// are fixed at construction; the type has no mutating methods.
type Credential struct {
	host              string
	applicationKey    string
	applicationSecret string
	consumerKey       string
	sourcePath        string
	section           map[string]any
}

// Host returns the API gateway hostname for the credential's endpoint.
func (c *Credential) Host() string { return c.host }

// ApplicationKey returns the application key, possibly empty.
func (c *Credential) ApplicationKey() string { return c.applicationKey }

// ApplicationSecret returns the application secret, possibly empty.
func (c *Credential) ApplicationSecret() string { return c.applicationSecret }

// ConsumerKey returns the user-scoped consumer key. It is empty for
// credentials built with FromApplication, where no user authorization
// exists yet.
func (c *Credential) ConsumerKey() string { return c.consumerKey }

// SourcePath returns the file the credential was loaded from. The second
// return is false for credentials built from explicit parameters.
func (c *Credential) SourcePath() (string, bool) {
	return c.sourcePath, c.section != nil
}

// Extra looks up an additional string key in the endpoint table the
// credential was loaded from. It reports false for parameter-built
// credentials, absent keys, and non-string values.
func (c *Credential) Extra(key string) (string, bool) {
	value, ok := c.section[key].(string)
	return value, ok
}

// FromDefaultFile loads a credential from DefaultPath in the working
// directory.
func FromDefaultFile() (*Credential, error) {
	return FromFile(DefaultPath)
}

// FromFile loads a credential from the TOML file at path. The file must
// carry a default.endpoint key and a table named after that endpoint
// (verbatim, not the resolved host) holding application_key,
// application_secret, and consumer_key.
func FromFile(path string) (*Credential, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRead, err)
	}
	var tree map[string]any
	if err := toml.Unmarshal(data, &tree); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrParse, path, err)
	}
	return fromTree(path, tree)
}

// FromApplication builds a credential from an endpoint and an application
// key/secret pair. The consumer key is left empty until one is obtained.
func FromApplication(endpoint, applicationKey, applicationSecret string) *Credential {
	return FromCredential(endpoint, applicationKey, applicationSecret, "")
}

// FromCredential builds a credential from an endpoint and a full key
// triple. No validation is performed on the values; empty strings are
// accepted.
func FromCredential(endpoint, applicationKey, applicationSecret, consumerKey string) *Credential {
	return &Credential{
		host:              endpoints.Host(endpoint),
		applicationKey:    applicationKey,
		applicationSecret: applicationSecret,
		consumerKey:       consumerKey,
	}
}

func fromTree(path string, tree map[string]any) (*Credential, error) {
	defaults, ok := tree["default"].(map[string]any)
	if !ok {
		return nil, &MissingFieldError{Field: "default.endpoint"}
	}
	endpoint, ok := defaults["endpoint"].(string)
	if !ok {
		return nil, &MissingFieldError{Field: "default.endpoint"}
	}
	// Credentials live under the endpoint identifier itself, not the host.
	section, ok := tree[endpoint].(map[string]any)
	if !ok {
		return nil, &MissingFieldError{Field: endpoint}
	}
	applicationKey, err := requireString(section, endpoint, "application_key")
	if err != nil {
		return nil, err
	}
	applicationSecret, err := requireString(section, endpoint, "application_secret")
	if err != nil {
		return nil, err
	}
	consumerKey, err := requireString(section, endpoint, "consumer_key")
	if err != nil {
		return nil, err
	}
	return &Credential{
		host:              endpoints.Host(endpoint),
		applicationKey:    applicationKey,
		applicationSecret: applicationSecret,
		consumerKey:       consumerKey,
		sourcePath:        path,
		section:           section,
	}, nil
}

func requireString(section map[string]any, endpoint, field string) (string, error) {
	value, ok := section[field].(string)
	if !ok {
		return "", &MissingFieldError{Field: endpoint + "." + field}
	}
	return value, nil
}

// CreateSample writes a sample credential file to the specified location,
// creating parent directories as needed. The file is written with owner-only
// permissions since it will hold secrets.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create credential directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(sampleConfig), 0o600); err != nil {
		return fmt.Errorf("write sample credential file: %w", err)
	}
	return nil
}
