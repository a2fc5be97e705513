package engine

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/google/generative-ai-go/genai"
	"go.uber.org/zap"
	"google.golang.org/api/option"

	"github.com/tatianab/treasure-hunter/internal/models"
)

//go:embed prompts/describe_treasure.txt
var describeTreasurePrompt string

var describeTreasureTmpl = template.Must(template.New("describe_treasure").Parse(describeTreasurePrompt))

// GeminiNarrator asks Gemini to describe each find, and falls back to the
// fixed table whenever the model fails or says nothing.
type GeminiNarrator struct {
	client *genai.Client
	model  *genai.GenerativeModel
	table  *TableNarrator
	logger *zap.Logger
}

func NewGeminiNarrator(ctx context.Context, apiKey, modelName string, table *TableNarrator, logger *zap.Logger) (*GeminiNarrator, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("creating gemini client: %w", err)
	}

	return &GeminiNarrator{
		client: client,
		model:  client.GenerativeModel(modelName),
		table:  table,
		logger: logger,
	}, nil
}

func (g *GeminiNarrator) Close() {
	g.client.Close()
}

func (g *GeminiNarrator) Describe(ctx context.Context, treasure models.Treasure, terrain models.TerrainKind) string {
	example := g.table.Describe(ctx, treasure, terrain)
	text, err := g.generate(ctx, treasure, terrain, example)
	if err != nil {
		g.logger.Warn("narration failed, using table",
			zap.String("treasure", string(treasure)),
			zap.String("terrain", string(terrain)),
			zap.Error(err),
		)
		return example
	}
	return text
}

func (g *GeminiNarrator) generate(ctx context.Context, treasure models.Treasure, terrain models.TerrainKind, example string) (string, error) {
	var buf bytes.Buffer
	data := struct {
		Treasure models.Treasure
		Terrain  models.TerrainKind
		Example  string
	}{treasure, terrain, example}
	if err := describeTreasureTmpl.Execute(&buf, data); err != nil {
		return "", err
	}

	resp, err := g.model.GenerateContent(ctx, genai.Text(buf.String()))
	if err != nil {
		return "", err
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no content returned from Gemini")
	}

	part := resp.Candidates[0].Content.Parts[0]
	text, ok := part.(genai.Text)
	if !ok {
		return "", fmt.Errorf("unexpected response type from Gemini")
	}

	out := strings.TrimSpace(string(text))
	if out == "" {
		return "", fmt.Errorf("empty narration from Gemini")
	}
	return out, nil
}
