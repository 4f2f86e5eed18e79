package odoo

import (
	"fmt"
)

// ConnectionOptions holds the credentials and endpoint coordinates of one Odoo
// server. All values are supplied once at construction and never modified
// afterwards. There are no defaults; malformed values are rejected by the
// remote server, not locally.
type ConnectionOptions struct {
	Hostname string `json:"hostname,omitempty"`
	Port     int    `json:"port,omitempty"`
	Schema   string `json:"schema,omitempty"`
	Database string `json:"database,omitempty"`
	Username string `json:"username,omitempty"`
	Password string `json:"password,omitempty"`
	URL      string `json:"url,omitempty"`
}

// endpointBase returns the base URL the RPC endpoints are resolved against.
// A configured URL wins; otherwise the base is derived from schema, hostname
// and port.
func (options ConnectionOptions) endpointBase() string {
	if len(options.URL) > 0 {
		return options.URL
	}
	return fmt.Sprintf("%v://%v:%v", options.Schema, options.Hostname, options.Port)
}
