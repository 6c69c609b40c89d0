package headers

import (
	"net"
	"net/url"
	"strings"

	"github.com/Bahjat/header-insight-tool/internal/platform/errs"
	"golang.org/x/net/idna"
)

const invalidURLMessage = "Invalid URL format. Please ensure you entered a valid URL (e.g., https://example.com)."

// hostProfile maps hosts the way lookups do but, like browsers, accepts
// underscores and other non-STD3 ASCII in labels.
var hostProfile = idna.New(
	idna.MapForLookup(),
	idna.StrictDomainName(false),
	idna.BidiRule(),
)

// ValidateURL checks that raw is an absolute http(s) URL and returns it with
// the host in its ASCII (punycode) form. It never touches the network.
func ValidateURL(raw string) (string, error) {
	parsed, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return "", &errs.AppError{Kind: errs.InvalidInput, Message: invalidURLMessage, Cause: err}
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return "", &errs.AppError{Kind: errs.InvalidInput, Message: invalidURLMessage}
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", &errs.AppError{
			Kind:    errs.InvalidInput,
			Message: "Only http and https URLs are supported.",
		}
	}

	host := parsed.Hostname()
	if host == "" {
		return "", &errs.AppError{Kind: errs.InvalidInput, Message: invalidURLMessage}
	}
	if net.ParseIP(host) != nil {
		return parsed.String(), nil
	}

	ascii, err := hostProfile.ToASCII(host)
	if err != nil {
		return "", &errs.AppError{
			Kind:    errs.InvalidInput,
			Message: "The URL host is not a valid domain name.",
			Cause:   err,
		}
	}

	if port := parsed.Port(); port != "" {
		parsed.Host = net.JoinHostPort(ascii, port)
	} else {
		parsed.Host = ascii
	}
	return parsed.String(), nil
}
