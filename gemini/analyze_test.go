package gemini_test

import (
	"context"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"

	"github.com/earthly-ai/backend/gemini"
)

func analyzeClient(t *testing.T, prompts *[]string) *gemini.Client {
	t.Helper()
	caller := &fakeCaller{}
	caller.GenerateContentFn = func(_ context.Context, _ string, contents []*genai.Content, _ *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
		*prompts = append(*prompts, promptText(t, contents))
		return textResponse("analysis result"), nil
	}
	return gemini.NewWithCaller(caller, "gemini-pro")
}

func TestAnalyzeContent_TruncatesLongContent(t *testing.T) {
	t.Parallel()
	var prompts []string
	client := analyzeClient(t, &prompts)
	content := strings.Repeat("a", 150)

	got, err := client.AnalyzeContent(context.Background(), content, "summary")

	require.NoError(t, err)
	assert.Equal(t, strings.Repeat("a", 100)+"...", got.Content)
}

func TestAnalyzeContent_TruncatesMultibyteByCharacter(t *testing.T) {
	t.Parallel()
	var prompts []string
	client := analyzeClient(t, &prompts)
	content := strings.Repeat("é", 150)

	got, err := client.AnalyzeContent(context.Background(), content, "summary")

	require.NoError(t, err)
	assert.Equal(t, strings.Repeat("é", 100)+"...", got.Content)
	assert.True(t, utf8.ValidString(got.Content))
}

func TestAnalyzeContent_ShortContentUnchanged(t *testing.T) {
	t.Parallel()
	var prompts []string
	client := analyzeClient(t, &prompts)

	got, err := client.AnalyzeContent(context.Background(), "short text", "summary")

	require.NoError(t, err)
	assert.Equal(t, "short text", got.Content)
}

func TestAnalyzeContent_ExactlyLimitUnchanged(t *testing.T) {
	t.Parallel()
	var prompts []string
	client := analyzeClient(t, &prompts)
	content := strings.Repeat("b", 100)

	got, err := client.AnalyzeContent(context.Background(), content, "general")

	require.NoError(t, err)
	assert.Equal(t, content, got.Content)
}

func TestAnalyzeContent_SelectsTemplateByType(t *testing.T) {
	t.Parallel()
	var prompts []string
	client := analyzeClient(t, &prompts)

	got, err := client.AnalyzeContent(context.Background(), "great product", "sentiment")

	require.NoError(t, err)
	assert.Equal(t, "sentiment", got.Type)
	assert.Equal(t, "analysis result", got.Result)
	require.Len(t, prompts, 1)
	assert.Equal(t, "Analyze the sentiment of the following text:\ngreat product", prompts[0])
}

func TestAnalyzeContent_UnknownTypeFallsBackToGeneral(t *testing.T) {
	t.Parallel()
	var prompts []string
	client := analyzeClient(t, &prompts)

	got, err := client.AnalyzeContent(context.Background(), "some text", "astrology")

	require.NoError(t, err)
	assert.Equal(t, "astrology", got.Type, "requested type is echoed back even when unrecognized")
	require.Len(t, prompts, 1)
	assert.Equal(t, "Analyze the following content:\nsome text", prompts[0])
}

func TestTruncate(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "abc", gemini.Truncate("abc", 5))
	assert.Equal(t, "abcde", gemini.Truncate("abcde", 5))
	assert.Equal(t, "abcde...", gemini.Truncate("abcdef", 5))
	assert.Equal(t, "日本語日本...", gemini.Truncate("日本語日本語日", 5))

	got := gemini.Truncate(strings.Repeat("日", 50), 100)
	assert.Equal(t, strings.Repeat("日", 50), got)
	assert.True(t, utf8.ValidString(gemini.Truncate(strings.Repeat("日", 80), 75)))
}
