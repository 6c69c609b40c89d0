package remediation

import (
	"strings"

	"github.com/Bahjat/header-insight-tool/internal/model"
)

const systemPrompt = "You are a helpful security assistant."

// BuildPrompt renders the user message sent to the completion service.
func BuildPrompt(analysis model.HeaderAnalysis) string {
	var b strings.Builder
	b.WriteString("You are a security assistant. Given the following HTTP response headers for a website, ")
	b.WriteString("explain which security headers are missing and provide concise remediation steps.\n\n")
	b.WriteString("Headers present: " + strings.Join(analysis.Present(), ", ") + "\n")
	b.WriteString("Headers missing: " + strings.Join(analysis.Missing(), ", ") + "\n\n")
	b.WriteString("Return a short, bullet-style summary.")
	return b.String()
}
