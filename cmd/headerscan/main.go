// Package main provides the headerscan CLI.
//
// headerscan checks one or more URLs for the common security response
// headers and, when a Groq API key is configured, adds remediation advice.
//
// Usage:
//
//	headerscan scan https://example.com
//	headerscan scan --list urls.txt --format markdown
package main

func main() {
	Execute()
}
