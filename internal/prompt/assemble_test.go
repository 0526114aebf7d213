package prompt

import (
	"testing"

	"github.com/jmflorez/lienzo/internal/request"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

func TestAssemblePromptOnly(t *testing.T) {
	contents := Assemble(&request.Request{Prompt: "un paisaje"})

	require.Len(t, contents, 1)
	assert.EqualValues(t, genai.RoleUser, contents[0].Role)
	require.Len(t, contents[0].Parts, 1)
	assert.Equal(t, "un paisaje", contents[0].Parts[0].Text)
}

func TestAssembleWithNegativePrompt(t *testing.T) {
	contents := Assemble(&request.Request{Prompt: "un paisaje", NegativePrompt: "edificios"})

	require.Len(t, contents, 1)
	require.Len(t, contents[0].Parts, 2)
	assert.Equal(t, "un paisaje", contents[0].Parts[0].Text)
	assert.Equal(t, "Evita: edificios", contents[0].Parts[1].Text)
}
