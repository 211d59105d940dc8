package text

import (
	"context"
	"io"
	"strings"

	"gitlab.com/tozd/go/errors"
)

// ReplacementRule describes a single literal replacement
type ReplacementRule struct {
	FromText string // Literal to search for
	ToText   string // Replacement; empty removes the literal
}

// ReplacementResult reports what a replacement pass did
type ReplacementResult struct {
	OriginalContent  []byte
	ModifiedContent  []byte
	WasModified      bool
	ReplacementCount int
}

// SimpleTextReplacer applies literal string replacement rules
type SimpleTextReplacer struct{}

// NewSimpleTextReplacer creates a new SimpleTextReplacer
func NewSimpleTextReplacer() *SimpleTextReplacer {
	return &SimpleTextReplacer{}
}

// ReplaceText applies each rule in order to the full content. Absence
// of a match is a no-op, not an error, so repeating a removal pass on
// already-clean content changes nothing.
func (r *SimpleTextReplacer) ReplaceText(ctx context.Context, content io.Reader, rules []ReplacementRule) (*ReplacementResult, error) {
	originalContent, err := io.ReadAll(content)
	if err != nil {
		return nil, errors.Errorf("reading content: %w", err)
	}

	result := &ReplacementResult{
		OriginalContent: originalContent,
		ModifiedContent: originalContent,
	}

	currentContent := string(originalContent)
	for _, rule := range rules {
		if rule.FromText == "" {
			continue
		}

		newContent := strings.ReplaceAll(currentContent, rule.FromText, rule.ToText)
		if newContent != currentContent {
			result.WasModified = true
			result.ReplacementCount += strings.Count(currentContent, rule.FromText)
		}
		currentContent = newContent
	}

	result.ModifiedContent = []byte(currentContent)
	return result, nil
}

// ValidateRules checks the rules for obvious mistakes
func (r *SimpleTextReplacer) ValidateRules(rules []ReplacementRule) error {
	for i, rule := range rules {
		if rule.FromText == "" {
			return errors.Errorf("rule %d: from_text is required", i)
		}
	}
	return nil
}
