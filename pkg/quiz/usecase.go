package quiz

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/nsmirnov/quizgen/pkg/llm"
)

const systemPrompt = `You are a quiz generator. Given a text, you must generate exactly 3 multiple-choice quiz questions based on its content.

Respond ONLY with a valid JSON object in this exact format, no other text:
{
  "quizzes": [
    {
      "question": "The question text",
      "a": {"text": "Option A", "correct": false},
      "b": {"text": "Option B", "correct": true},
      "c": {"text": "Option C", "correct": false},
      "d": {"text": "Option D", "correct": false}
    }
  ]
}

Rules:
- Generate exactly 3 questions
- Each question must have exactly 4 options (a, b, c, d)
- Exactly one option per question must have "correct": true
- All other options must have "correct": false`

// Service describes the quiz-generation use case.
type Service interface {
	Generate(ctx context.Context, text string) (Response, error)
}

type service struct {
	llm            llm.ChatModel
	maxPromptChars int
}

// NewService creates the default implementation.
func NewService(model llm.ChatModel) Service {
	return &service{
		llm:            model,
		maxPromptChars: 12_000,
	}
}

func (s *service) Generate(ctx context.Context, text string) (Response, error) {
	if len(text) > s.maxPromptChars {
		text = text[:s.maxPromptChars]
	}
	raw, err := s.llm.Ask(ctx, systemPrompt, text)
	if err != nil {
		return Response{}, err
	}
	resp, err := parseResponse(raw)
	if err != nil {
		return Response{}, err
	}
	if err := validate(resp); err != nil {
		return Response{}, err
	}
	return resp, nil
}

// parseResponse unmarshals the model reply, falling back to the outermost
// brace slice for replies wrapped in prose or code fences.
func parseResponse(raw string) (Response, error) {
	raw = strings.TrimSpace(raw)
	var resp Response
	if err := json.Unmarshal([]byte(raw), &resp); err == nil {
		return resp, nil
	}
	if i := strings.Index(raw, "{"); i >= 0 {
		if j := strings.LastIndex(raw, "}"); j > i {
			if err := json.Unmarshal([]byte(raw[i:j+1]), &resp); err == nil {
				return resp, nil
			}
		}
	}
	return Response{}, fmt.Errorf("model reply is not valid quiz JSON")
}

func validate(resp Response) error {
	if len(resp.Quizzes) == 0 {
		return fmt.Errorf("model returned no quizzes")
	}
	for i, q := range resp.Quizzes {
		if strings.TrimSpace(q.Question) == "" {
			return fmt.Errorf("quiz %d has an empty question", i)
		}
		correct := 0
		for _, opt := range []Option{q.A, q.B, q.C, q.D} {
			if strings.TrimSpace(opt.Text) == "" {
				return fmt.Errorf("quiz %d has an empty option", i)
			}
			if opt.Correct {
				correct++
			}
		}
		if correct != 1 {
			return fmt.Errorf("quiz %d has %d correct options, want exactly 1", i, correct)
		}
	}
	return nil
}
