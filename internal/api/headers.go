package api

import (
	"strings"

	"github.com/gptkit/client-go/internal/config"
)

// Header names sent to the service.
const (
	HeaderAuthorization = "Authorization"
	HeaderOrganization  = "OpenAI-Organization"
	HeaderContentType   = "Content-type"
)

// Header is a single request header.
type Header struct {
	Name  string
	Value string
}

// BuildHeaders returns the headers for a JSON request. The organization
// header comes first and is present only when the provider returns a
// non-blank organization.
func BuildHeaders(p config.Provider) []Header {
	headers := make([]Header, 0, 3)
	if org := strings.TrimSpace(p.Organization()); org != "" {
		headers = append(headers, Header{Name: HeaderOrganization, Value: org})
	}
	return append(headers,
		bearer(p),
		Header{Name: HeaderContentType, Value: "application/json"},
	)
}

// BuildMultipartHeaders returns the headers for a multipart upload. Only the
// bearer token is set; the multipart writer supplies the content type.
func BuildMultipartHeaders(p config.Provider) []Header {
	return []Header{bearer(p)}
}

func bearer(p config.Provider) Header {
	return Header{Name: HeaderAuthorization, Value: "Bearer " + p.APIKey()}
}
