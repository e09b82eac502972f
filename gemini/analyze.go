package gemini

import (
	"context"
	"fmt"
)

// previewLimit caps the content echo in analysis results.
const previewLimit = 100

// Analysis is the result of AnalyzeContent. Content holds at most the
// first 100 characters (code points) of the input, with "..." appended
// when truncated.
type Analysis struct {
	Type    string `json:"analysis_type"`
	Content string `json:"content"`
	Result  string `json:"result"`
}

// defaultAnalysisType is the declared fallback entry in analysisPrompts
// for unrecognized analysis types.
const defaultAnalysisType = "general"

// analysisPrompts maps an analysis type to its prompt template.
var analysisPrompts = map[string]string{
	"sentiment": "Analyze the sentiment of the following text:\n%s",
	"summary":   "Provide a concise summary of the following text:\n%s",
	"keywords":  "Extract key themes and keywords from the following text:\n%s",
	"general":   "Analyze the following content:\n%s",
}

// AnalyzeContent runs a canned analysis prompt over content. Types
// outside the template table use the general template; the requested
// type is still echoed back in the result.
func (c *Client) AnalyzeContent(ctx context.Context, content, analysisType string) (Analysis, error) {
	tmpl, ok := analysisPrompts[analysisType]
	if !ok {
		tmpl = analysisPrompts[defaultAnalysisType]
	}

	result, err := c.GenerateText(ctx, fmt.Sprintf(tmpl, content), SamplingParams{})
	if err != nil {
		return Analysis{}, err
	}

	return Analysis{
		Type:    analysisType,
		Content: truncate(content, previewLimit),
		Result:  result,
	}, nil
}

// truncate limits s to n characters, not bytes, so multibyte content
// keeps a valid UTF-8 preview.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}
