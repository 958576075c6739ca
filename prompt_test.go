package vibecheck

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func exampleFrom(t *testing.T, prompt string) string {
	t.Helper()
	_, example, found := strings.Cut(prompt, "Example format:\n")
	require.True(t, found)
	return example
}

func TestPromptBuilder_Render(t *testing.T) {
	p, err := newPromptBuilder(false)
	require.NoError(t, err)

	prompt, err := p.Render(42)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(prompt, "You are a mystical number whisperer"))
	assert.Contains(t, prompt, "determine if the number 42 is even or odd")
	assert.Contains(t, prompt, "- isEven: boolean (true if even and false if odd)\n")
	assert.Contains(t, prompt, "- confidence: number (between 0 and 1 for how confident you are)\n")
	assert.Contains(t, prompt, "- reasoning: string (your mathematical reasoning)\n")
	assert.Contains(t, prompt, "Be creative with your reasoning, but ensure the mathematical answer is correct.")
	assert.NotContains(t, prompt, "- vibe:")
	assert.NotContains(t, prompt, "vibe description")

	example := gjson.Parse(exampleFrom(t, prompt))
	require.True(t, gjson.Valid(example.Raw))
	assert.True(t, example.Get("isEven").Bool())
	assert.Equal(t, 0.95, example.Get("confidence").Float())
	assert.False(t, example.Get("vibe").Exists())
}

func TestPromptBuilder_RenderWithVibes(t *testing.T) {
	p, err := newPromptBuilder(true)
	require.NoError(t, err)

	prompt, err := p.Render(-3)
	require.NoError(t, err)

	assert.Contains(t, prompt, "determine if the number -3 is even or odd")
	assert.Contains(t, prompt, "- vibe: string (describe the mystical vibe/energy you get from this number)")
	assert.Contains(t, prompt, "Be creative with your reasoning and vibe description")

	example := gjson.Parse(exampleFrom(t, prompt))
	assert.Equal(t, "This number radiates balanced, harmonious energy ✨", example.Get("vibe").String())
}

func TestPromptBuilder_FieldOrder(t *testing.T) {
	p, err := newPromptBuilder(true)
	require.NoError(t, err)

	names := make([]string, len(p.fields))
	for i, f := range p.fields {
		names[i] = f.Name
	}
	assert.Equal(t, []string{"isEven", "confidence", "reasoning", "vibe"}, names)
}
