package remediation

import (
	"regexp"
	"strings"
)

// Title heads every successful summary.
const Title = "AI Security Header Analysis"

// space also matches \v, the C0 separators and Unicode spaces, which \s alone misses.
const space = `[\s\v\x{1c}-\x{1f}\x{85}\p{Z}]`

var (
	leadingTitleRe = regexp.MustCompile(`^` + space + `*\*+` + Title + `\*+`)
	emphasisRe     = regexp.MustCompile(`\*+`)

	lineLeadingPlusRe = regexp.MustCompile(`\n` + space + `*\+`)
	plusRe            = regexp.MustCompile(`\+`)
	bulletRe          = regexp.MustCompile(`\n- `)

	inlineCodeRe  = regexp.MustCompile("``([^`]+)``")
	exampleRe     = regexp.MustCompile(`Example: ([^\n]+)`)
	extraNewlines = regexp.MustCompile(`\n{3,}`)
)

type sectionLabel struct {
	re          *regexp.Regexp
	replacement string
}

func newSectionLabel(name string) sectionLabel {
	return sectionLabel{
		re:          regexp.MustCompile(regexp.QuoteMeta(name) + `:?`),
		replacement: "\n**" + name + ":**\n",
	}
}

// sectionLabels are rewritten, in this order, as bold lines of their own.
var sectionLabels = []sectionLabel{
	newSectionLabel("Missing Security Header"),
	newSectionLabel("Header Name"),
	newSectionLabel("Purpose"),
	newSectionLabel("Description"),
	newSectionLabel("Remediation Steps"),
}

// Normalize rewrites free-form model output into the markdown layout the
// landing page renders. The rules run in a fixed order; later rules depend
// on the text produced by earlier ones.
func Normalize(raw string) string {
	md := strings.TrimSpace(raw)

	md = leadingTitleRe.ReplaceAllLiteralString(md, "")

	md = emphasisRe.ReplaceAllLiteralString(md, "")
	md = strings.ReplaceAll(md, "'", "")

	for _, l := range sectionLabels {
		md = l.re.ReplaceAllLiteralString(md, l.replacement)
	}

	md = lineLeadingPlusRe.ReplaceAllLiteralString(md, "\n- ")
	md = plusRe.ReplaceAllLiteralString(md, "\n- ")
	md = bulletRe.ReplaceAllLiteralString(md, "\n\n- ")

	md = inlineCodeRe.ReplaceAllString(md, "\n\n```${1}```\n\n")
	md = exampleRe.ReplaceAllString(md, "\n**Example:**\n\n```${1}```\n")

	md = extraNewlines.ReplaceAllLiteralString(md, "\n\n")

	return "**" + Title + "**\n\n" + strings.TrimSpace(md)
}
