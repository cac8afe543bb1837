package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"
)

// TaskSuggester drafts tasks from free text.
type TaskSuggester interface {
	SuggestTasks(ctx context.Context, projectName, text string) ([]SuggestedTask, error)
}

// SuggestedTask is a draft as returned by the model. DueString is free text
// and is resolved by the task validator.
type SuggestedTask struct {
	Name      string `json:"name"`
	Priority  int    `json:"priority"`
	DueString string `json:"due_string"`
}

type AIService struct {
	client *openai.Client
	model  string
}

func NewAIService(apiKey string) *AIService {
	return &AIService{
		client: openai.NewClient(apiKey),
		model:  openai.GPT4o,
	}
}

// SuggestTasks asks the model to break text into tasks for a project.
func (s *AIService) SuggestTasks(ctx context.Context, projectName, text string) ([]SuggestedTask, error) {
	if s.client == nil {
		return nil, fmt.Errorf("OpenAI client not initialized")
	}

	prompt := fmt.Sprintf(`You extract actionable tasks for the project %q from the notes below.

Today is %s.

Notes:
%s

Reply with a JSON array only, no prose:
[
  {
    "name": "short imperative task name",
    "priority": 1,
    "due_string": "when it is due, in plain English such as \"tomorrow\" or \"next friday\", or an empty string"
  }
]

Rules:
- priority is 1 (High), 2 (Med), 3 (Low) or 4 (Who cares?)
- return [] when the notes contain no tasks`, projectName, time.Now().Format("Monday 2006-01-02"), text)

	resp, err := s.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: s.model,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleUser,
					Content: prompt,
				},
			},
			Temperature: 0.3,
		},
	)
	if err != nil {
		return nil, fmt.Errorf("OpenAI API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("no response from OpenAI")
	}

	return parseSuggestions(resp.Choices[0].Message.Content)
}

// parseSuggestions decodes the model reply, tolerating a fenced code block.
func parseSuggestions(content string) ([]SuggestedTask, error) {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")

	var tasks []SuggestedTask
	if err := json.Unmarshal([]byte(strings.TrimSpace(content)), &tasks); err != nil {
		return nil, fmt.Errorf("failed to parse AI response: %w (response: %s)", err, content)
	}
	return tasks, nil
}
