package types

import "errors"

// Config holds backend selection and parameters for store construction.
type Config struct {
	Backend  string `json:"backend" yaml:"backend"`
	DataDir  string `json:"data_dir" yaml:"data_dir"`
	IDScheme string `json:"id_scheme" yaml:"id_scheme"`
}

// Supported backend names.
const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// Supported id scheme names.
const (
	IDSchemeShort = "short"
	IDSchemeUUID  = "uuid"
)

// Config validation errors.
var (
	ErrBackendEmpty    = errors.New("backend must not be empty")
	ErrBackendUnknown  = errors.New("unknown backend")
	ErrIDSchemeUnknown = errors.New("unknown id scheme")
)

// knownBackends lists the backends that Validate accepts.
var knownBackends = map[string]bool{
	BackendJSON:   true,
	BackendSQLite: true,
	BackendMemory: true,
}

// knownIDSchemes lists the id schemes that Validate accepts.
var knownIDSchemes = map[string]bool{
	IDSchemeShort: true,
	IDSchemeUUID:  true,
}

// Validate checks that the Config is well-formed. An empty IDScheme is valid
// and means the default short scheme.
func (c Config) Validate() error {
	if c.Backend == "" {
		return ErrBackendEmpty
	}
	if !knownBackends[c.Backend] {
		return ErrBackendUnknown
	}
	if c.IDScheme != "" && !knownIDSchemes[c.IDScheme] {
		return ErrIDSchemeUnknown
	}
	return nil
}
