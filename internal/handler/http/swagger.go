package http

import (
	"net/url"

	"github.com/MKhiriev/monnify-relay/docs"
)

// ConfigureSwagger points the served API document at the relay's public
// base URL. An unparseable baseURL leaves the defaults untouched.
func ConfigureSwagger(baseURL string) {
	u, err := url.Parse(baseURL)
	if err != nil || u.Host == "" {
		return
	}

	docs.SwaggerInfo.Host = u.Host
	if u.Scheme != "" {
		docs.SwaggerInfo.Schemes = []string{u.Scheme}
	}
	if u.Path != "" && u.Path != "/" {
		docs.SwaggerInfo.BasePath = u.Path
	}
}
