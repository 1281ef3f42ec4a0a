package content

import (
	"context"
	"errors"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/menshealthfinder/api/ent"
	"github.com/menshealthfinder/api/ent/enttest"
	"github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubCompleter struct {
	response string
	err      error
	prompt   string
}

func (s *stubCompleter) CreateChatCompletion(_ context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	if len(req.Messages) > 0 {
		s.prompt = req.Messages[len(req.Messages)-1].Content
	}
	if s.err != nil {
		return openai.ChatCompletionResponse{}, s.err
	}
	return openai.ChatCompletionResponse{
		Choices: []openai.ChatCompletionChoice{
			{Message: openai.ChatCompletionMessage{Content: s.response}},
		},
	}, nil
}

func contentTestClinic(t *testing.T) *ent.Clinic {
	client := enttest.Open(t, "sqlite3", "file:"+t.Name()+"?mode=memory&_fk=1")
	t.Cleanup(func() { client.Close() })

	row, err := client.Clinic.Create().
		SetName("Apex Men's Health").
		SetSlug("apex-mens-health-austin").
		SetCity("Austin").
		SetState("TX").
		SetServices([]string{"trt", "ed_treatment"}).
		SetRatingAvg(4.5).
		SetReviewCount(12).
		Save(context.Background())
	require.NoError(t, err)
	return row
}

func TestDescribe_TemplateFallbackWithoutKey(t *testing.T) {
	row := contentTestClinic(t)
	generator := NewGenerator("", "")

	first, err := generator.Describe(context.Background(), row)
	require.NoError(t, err)
	assert.Contains(t, first, "Apex Men's Health")
	assert.Contains(t, first, "Austin, TX")
	assert.Contains(t, first, "testosterone replacement therapy and ED treatment")
	assert.Contains(t, first, "4.5 out of 5 across 12 reviews")

	// Deterministic: same clinic, same copy.
	second, err := generator.Describe(context.Background(), row)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestDescribe_UsesChatCompletion(t *testing.T) {
	row := contentTestClinic(t)
	stub := &stubCompleter{response: "  Generated listing copy.  "}
	generator := &Generator{client: stub, model: openai.GPT4oMini}

	got, err := generator.Describe(context.Background(), row)
	require.NoError(t, err)
	assert.Equal(t, "Generated listing copy.", got)

	// The prompt carries the clinic facts the model is allowed to use.
	assert.Contains(t, stub.prompt, "Apex Men's Health")
	assert.Contains(t, stub.prompt, "testosterone replacement therapy")
	assert.Contains(t, stub.prompt, "4.5/5")
}

func TestDescribe_FallsBackOnAPIError(t *testing.T) {
	row := contentTestClinic(t)
	generator := &Generator{client: &stubCompleter{err: errors.New("rate limited")}, model: openai.GPT4oMini}

	got, err := generator.Describe(context.Background(), row)
	require.NoError(t, err)
	assert.Contains(t, got, "Apex Men's Health is a men's health clinic")
}
