package headers

import (
	"errors"
	"testing"

	"github.com/Bahjat/header-insight-tool/internal/platform/errs"
)

func TestValidateURL(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "plain https", raw: "https://example.com", want: "https://example.com"},
		{name: "path and query kept", raw: "http://example.com/a?b=c", want: "http://example.com/a?b=c"},
		{name: "surrounding whitespace", raw: "  https://example.com/  ", want: "https://example.com/"},
		{name: "uppercase scheme and host", raw: "HTTPS://Example.COM", want: "https://example.com"},
		{name: "IDN host", raw: "https://bücher.example/", want: "https://xn--bcher-kva.example/"},
		{name: "IDN host with port", raw: "https://bücher.example:8443/x", want: "https://xn--bcher-kva.example:8443/x"},
		{name: "underscore host", raw: "https://my_host.example.com/x", want: "https://my_host.example.com/x"},
		{name: "IPv4 literal", raw: "http://93.184.216.34:8080/", want: "http://93.184.216.34:8080/"},
		{name: "IPv6 literal", raw: "http://[2606:4700::1]/", want: "http://[2606:4700::1]/"},

		{name: "not a url", raw: "not-a-url", wantErr: true},
		{name: "empty", raw: "", wantErr: true},
		{name: "missing host", raw: "https://", wantErr: true},
		{name: "relative path", raw: "/just/a/path", wantErr: true},
		{name: "ftp scheme", raw: "ftp://example.com", wantErr: true},
		{name: "javascript scheme", raw: "javascript:alert(1)", wantErr: true},
		{name: "unparseable", raw: "http://[::1", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidateURL(tt.raw)
			if tt.wantErr {
				var appErr *errs.AppError
				if !errors.As(err, &appErr) {
					t.Fatalf("ValidateURL(%q) error = %v, want *errs.AppError", tt.raw, err)
				}
				if appErr.Kind != errs.InvalidInput {
					t.Errorf("Kind = %v, want %v", appErr.Kind, errs.InvalidInput)
				}
				return
			}
			if err != nil {
				t.Fatalf("ValidateURL(%q) unexpected error: %v", tt.raw, err)
			}
			if got != tt.want {
				t.Errorf("ValidateURL(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}
