package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSuggestions(t *testing.T) {
	content := "```json\n[{\"name\":\"Draft plan\",\"priority\":1,\"due_string\":\"tomorrow\"}]\n```"

	tasks, err := parseSuggestions(content)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, SuggestedTask{Name: "Draft plan", Priority: 1, DueString: "tomorrow"}, tasks[0])

	tasks, err = parseSuggestions("[]")
	require.NoError(t, err)
	assert.Empty(t, tasks)

	_, err = parseSuggestions("sure, here you go")
	assert.Error(t, err)
}
