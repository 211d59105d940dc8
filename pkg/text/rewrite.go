package text

import (
	"context"
	"io"
	"regexp"
	"strings"

	"gitlab.com/tozd/go/errors"
)

// RewriteRule describes a single regex rewrite pass. All non-overlapping
// matches are replaced in one left-to-right scan.
type RewriteRule struct {
	Name    string         // Short name for logging
	Pattern *regexp.Regexp // What to match
	Replace string         // Expansion template (supports ${1})
}

// RewriteResult reports what a rewrite pass did
type RewriteResult struct {
	OriginalContent  []byte
	ModifiedContent  []byte
	WasModified      bool
	ReplacementCount int
}

// RegexRewriter applies a sequence of regex rewrite rules. Each rule's
// output feeds the next rule, so the passes are order-sensitive and the
// sequence as a whole is not idempotent: a prefix-injection rule run
// twice prefixes twice.
type RegexRewriter struct{}

// NewRegexRewriter creates a new RegexRewriter
func NewRegexRewriter() *RegexRewriter {
	return &RegexRewriter{}
}

// RewriteText applies each rule in order to the full content
func (r *RegexRewriter) RewriteText(ctx context.Context, content io.Reader, rules []RewriteRule) (*RewriteResult, error) {
	originalContent, err := io.ReadAll(content)
	if err != nil {
		return nil, errors.Errorf("reading content: %w", err)
	}

	result := &RewriteResult{
		OriginalContent: originalContent,
		ModifiedContent: originalContent,
	}

	currentContent := string(originalContent)
	for _, rule := range rules {
		if rule.Pattern == nil {
			continue
		}

		matches := len(rule.Pattern.FindAllStringIndex(currentContent, -1))
		if matches == 0 {
			continue
		}

		currentContent = rule.Pattern.ReplaceAllString(currentContent, rule.Replace)
		result.WasModified = true
		result.ReplacementCount += matches
	}

	result.ModifiedContent = []byte(currentContent)
	return result, nil
}

// includeCall matches include("X") or include('X') with a single quoted
// argument. Mismatched quote pairs do not match and are left untouched.
var includeCall = regexp.MustCompile(`include\((?:["'])([^"']+)(?:["'])\)`)

// IncludePrefixRule rewrites every include call so its argument gains
// the given prefix, forcing double quotes on the result:
// include('Foo') -> include("Utils_Foo").
func IncludePrefixRule(prefix string) RewriteRule {
	return RewriteRule{
		Name:    "include-calls",
		Pattern: includeCall,
		Replace: `include("` + prefix + `${1}")`,
	}
}

// IdentifierPrefixRule rewrites standalone identifier tokens from the
// given set with a prefix. Word boundaries keep partial identifiers
// (e.g. MyCoreUtilsExtra) untouched. An already-prefixed token still
// matches, so reapplying the rule stacks another prefix on top.
func IdentifierPrefixRule(name, prefix string, idents ...string) RewriteRule {
	quoted := make([]string, len(idents))
	for i, id := range idents {
		quoted[i] = regexp.QuoteMeta(id)
	}
	pattern := `\b((?:` + regexp.QuoteMeta(prefix) + `)*(?:` + strings.Join(quoted, "|") + `))\b`
	return RewriteRule{
		Name:    name,
		Pattern: regexp.MustCompile(pattern),
		Replace: prefix + `${1}`,
	}
}
