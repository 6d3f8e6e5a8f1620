package quiz

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validReply = `{
  "quizzes": [
    {
      "question": "What is Go?",
      "a": {"text": "A language", "correct": true},
      "b": {"text": "A snake", "correct": false},
      "c": {"text": "A car", "correct": false},
      "d": {"text": "A planet", "correct": false}
    }
  ]
}`

type stubModel struct {
	reply string
	err   error
}

func (s stubModel) Ask(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	return s.reply, s.err
}

func TestGenerate(t *testing.T) {
	svc := NewService(stubModel{reply: validReply})

	resp, err := svc.Generate(context.Background(), "some text about Go")
	require.NoError(t, err)
	require.Len(t, resp.Quizzes, 1)
	assert.Equal(t, "What is Go?", resp.Quizzes[0].Question)
	assert.True(t, resp.Quizzes[0].A.Correct)
}

func TestGenerateFencedReply(t *testing.T) {
	svc := NewService(stubModel{reply: "Here is your quiz:\n```json\n" + validReply + "\n```"})

	resp, err := svc.Generate(context.Background(), "text")
	require.NoError(t, err)
	assert.Len(t, resp.Quizzes, 1)
}

func TestGenerateModelError(t *testing.T) {
	svc := NewService(stubModel{err: errors.New("upstream down")})

	_, err := svc.Generate(context.Background(), "text")
	assert.Error(t, err)
}

func TestGenerateNonJSONReply(t *testing.T) {
	svc := NewService(stubModel{reply: "I cannot do that"})

	_, err := svc.Generate(context.Background(), "text")
	assert.Error(t, err)
}

func TestGenerateRejectsBadSchema(t *testing.T) {
	cases := map[string]string{
		"no quizzes":     `{"quizzes": []}`,
		"empty question": `{"quizzes": [{"question": " ", "a": {"text": "x", "correct": true}, "b": {"text": "x"}, "c": {"text": "x"}, "d": {"text": "x"}}]}`,
		"no correct":     `{"quizzes": [{"question": "q", "a": {"text": "x"}, "b": {"text": "x"}, "c": {"text": "x"}, "d": {"text": "x"}}]}`,
		"two correct":    `{"quizzes": [{"question": "q", "a": {"text": "x", "correct": true}, "b": {"text": "x", "correct": true}, "c": {"text": "x"}, "d": {"text": "x"}}]}`,
		"missing option": `{"quizzes": [{"question": "q", "a": {"text": "x", "correct": true}, "b": {"text": "x"}, "c": {"text": "x"}, "d": {"text": ""}}]}`,
	}
	for name, reply := range cases {
		t.Run(name, func(t *testing.T) {
			svc := NewService(stubModel{reply: reply})
			_, err := svc.Generate(context.Background(), "text")
			assert.Error(t, err)
		})
	}
}

func TestGenerateTruncatesLongInput(t *testing.T) {
	var seen string
	svc := NewService(askFunc(func(ctx context.Context, system, user string) (string, error) {
		seen = user
		return validReply, nil
	}))

	long := make([]byte, 20_000)
	for i := range long {
		long[i] = 'a'
	}
	_, err := svc.Generate(context.Background(), string(long))
	require.NoError(t, err)
	assert.Len(t, seen, 12_000)
}

type askFunc func(ctx context.Context, systemPrompt, userPrompt string) (string, error)

func (f askFunc) Ask(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	return f(ctx, systemPrompt, userPrompt)
}
