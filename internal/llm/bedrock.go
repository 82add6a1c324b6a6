package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime/types"
	"go.opentelemetry.io/contrib/instrumentation/github.com/aws/aws-sdk-go-v2/otelaws"
)

var novaModels = map[string]string{
	"nova-lite": "us.amazon.nova-2-lite-v1:0",
	"nova-pro":  "us.amazon.nova-2-pro-v1:0",
}

const novaMaxTokens = 16384

// NovaGateway serves GenerateJSON through the Bedrock Converse API. Like
// Claude, Nova takes the output contract as part of the system text.
type NovaGateway struct {
	client *bedrockruntime.Client
	model  string
}

// NewNovaGateway builds a gateway for the given Nova variant using the
// default AWS credential chain.
func NewNovaGateway(ctx context.Context, variant string) (*NovaGateway, error) {
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("load AWS config: %w", err)
	}
	otelaws.AppendMiddlewares(&cfg.APIOptions)

	model := novaModels[variant]
	if model == "" {
		model = novaModels["nova-lite"]
	}
	return &NovaGateway{
		client: bedrockruntime.NewFromConfig(cfg),
		model:  model,
	}, nil
}

func (g *NovaGateway) GenerateJSON(ctx context.Context, req Request) (string, error) {
	if req.GroundSearch {
		return "", ErrUnsupportedCapability
	}

	system := req.SystemInstruction
	if req.Schema != nil {
		contract, err := json.Marshal(req.Schema)
		if err != nil {
			return "", fmt.Errorf("marshal output contract: %w", err)
		}
		system = system + "\n\nRespond with a single JSON object matching this schema exactly. No prose, no markdown fences:\n" + string(contract)
	}

	userText, err := flattenParts(req.Parts)
	if err != nil {
		return "", err
	}

	resp, err := g.client.Converse(ctx, &bedrockruntime.ConverseInput{
		ModelId: aws.String(g.model),
		System: []types.SystemContentBlock{
			&types.SystemContentBlockMemberText{Value: system},
		},
		Messages: []types.Message{
			{
				Role: types.ConversationRoleUser,
				Content: []types.ContentBlock{
					&types.ContentBlockMemberText{Value: userText},
				},
			},
		},
		InferenceConfig: &types.InferenceConfiguration{
			MaxTokens:   aws.Int32(novaMaxTokens),
			Temperature: aws.Float32(float32(req.Temperature)),
		},
	})
	if err != nil {
		var respErr *awshttp.ResponseError
		if errors.As(err, &respErr) {
			return "", &TransportError{Status: respErr.HTTPStatusCode(), Message: respErr.Error()}
		}
		return "", &TransportError{Status: 0, Message: err.Error()}
	}

	return extractNovaText(resp), nil
}

func extractNovaText(resp *bedrockruntime.ConverseOutput) string {
	if resp.Output == nil {
		return ""
	}
	msg, ok := resp.Output.(*types.ConverseOutputMemberMessage)
	if !ok {
		return ""
	}
	for _, block := range msg.Value.Content {
		if tb, ok := block.(*types.ContentBlockMemberText); ok {
			return tb.Value
		}
	}
	return ""
}
