package store

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// scriptItem is the DynamoDB record for a saved script. Single-table
// layout: PK "SCRIPT#<id>" for direct lookup, GSI1 keyed by creation time
// for newest-first listing, and a separate "USAGE#<date>" item family for
// daily counters.
type scriptItem struct {
	PK     string `dynamodbav:"PK"`
	SK     string `dynamodbav:"SK"`
	GSI1PK string `dynamodbav:"GSI1PK"`
	GSI1SK string `dynamodbav:"GSI1SK"`

	ScriptID    string `dynamodbav:"scriptId"`
	Topic       string `dynamodbav:"topic,omitempty"`
	Title       string `dynamodbav:"title,omitempty"`
	Platform    string `dynamodbav:"platform,omitempty"`
	Duration    string `dynamodbav:"duration,omitempty"`
	Language    string `dynamodbav:"language,omitempty"`
	CreatorID   string `dynamodbav:"creatorId,omitempty"`
	CreatorName string `dynamodbav:"creatorName,omitempty"`

	// Full document and analysis ride as JSON blobs; the projected columns
	// above exist for listing without unmarshaling everything.
	DocumentJSON string `dynamodbav:"documentJson"`
	AnalysisJSON string `dynamodbav:"analysisJson,omitempty"`

	CreatedAt string `dynamodbav:"createdAt"`
}

// DynamoStore implements Store on a single DynamoDB table.
type DynamoStore struct {
	client    *dynamodb.Client
	tableName string
	now       func() time.Time
}

// NewDynamoStore creates a store over the given table.
func NewDynamoStore(client *dynamodb.Client, tableName string) *DynamoStore {
	return &DynamoStore{client: client, tableName: tableName, now: time.Now}
}

// Save upserts the script by id. The GSI1 sort key keeps the original
// creation time so updates do not reorder history.
func (s *DynamoStore) Save(ctx context.Context, entry *SavedScript) error {
	if entry.ID == "" {
		return fmt.Errorf("save script: empty id")
	}
	createdAt := entry.CreatedAt
	if createdAt.IsZero() {
		createdAt = s.now().UTC()
	}

	docJSON, err := json.Marshal(entry.Document)
	if err != nil {
		return fmt.Errorf("marshal document: %w", err)
	}

	item := scriptItem{
		PK:           "SCRIPT#" + entry.ID,
		SK:           "METADATA",
		GSI1PK:       "SCRIPTS",
		GSI1SK:       createdAt.Format(time.RFC3339) + "#" + entry.ID,
		ScriptID:     entry.ID,
		Topic:        entry.Topic,
		Title:        entry.Title,
		Platform:     entry.Platform,
		Duration:     entry.Duration,
		Language:     entry.Language,
		CreatorID:    entry.CreatorID,
		CreatorName:  entry.CreatorName,
		DocumentJSON: string(docJSON),
		CreatedAt:    createdAt.Format(time.RFC3339),
	}
	if entry.Analysis != nil {
		analysisJSON, err := json.Marshal(entry.Analysis)
		if err != nil {
			return fmt.Errorf("marshal analysis: %w", err)
		}
		item.AnalysisJSON = string(analysisJSON)
	}

	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return fmt.Errorf("marshal script item: %w", err)
	}
	if _, err := s.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: &s.tableName,
		Item:      av,
	}); err != nil {
		return fmt.Errorf("put script item: %w", err)
	}
	return nil
}

// Get retrieves a saved script by id. A missing id returns (nil, nil).
func (s *DynamoStore) Get(ctx context.Context, id string) (*SavedScript, error) {
	result, err := s.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: &s.tableName,
		Key: map[string]types.AttributeValue{
			"PK": &types.AttributeValueMemberS{Value: "SCRIPT#" + id},
			"SK": &types.AttributeValueMemberS{Value: "METADATA"},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("get script: %w", err)
	}
	if result.Item == nil {
		return nil, nil
	}

	var item scriptItem
	if err := attributevalue.UnmarshalMap(result.Item, &item); err != nil {
		return nil, fmt.Errorf("unmarshal script: %w", err)
	}
	return item.toSaved()
}

// List returns saved scripts newest first via GSI1, with cursor paging.
func (s *DynamoStore) List(ctx context.Context, limit int, cursor string) ([]SavedScript, string, error) {
	if limit <= 0 {
		limit = 20
	}

	input := &dynamodb.QueryInput{
		TableName:              &s.tableName,
		IndexName:              aws.String("GSI1"),
		KeyConditionExpression: aws.String("GSI1PK = :pk"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pk": &types.AttributeValueMemberS{Value: "SCRIPTS"},
		},
		ScanIndexForward: aws.Bool(false),
		Limit:            aws.Int32(int32(limit)),
	}
	if cursor != "" {
		// cursor is the full GSI1SK value ({timestamp}#{id})
		parts := strings.SplitN(cursor, "#", 2)
		if len(parts) != 2 {
			return nil, "", fmt.Errorf("invalid cursor format")
		}
		input.ExclusiveStartKey = map[string]types.AttributeValue{
			"PK":     &types.AttributeValueMemberS{Value: "SCRIPT#" + parts[1]},
			"SK":     &types.AttributeValueMemberS{Value: "METADATA"},
			"GSI1PK": &types.AttributeValueMemberS{Value: "SCRIPTS"},
			"GSI1SK": &types.AttributeValueMemberS{Value: cursor},
		}
	}

	result, err := s.client.Query(ctx, input)
	if err != nil {
		return nil, "", fmt.Errorf("list scripts: %w", err)
	}

	var items []scriptItem
	if err := attributevalue.UnmarshalListOfMaps(result.Items, &items); err != nil {
		return nil, "", fmt.Errorf("unmarshal script list: %w", err)
	}

	out := make([]SavedScript, 0, len(items))
	for _, item := range items {
		saved, err := item.toSaved()
		if err != nil {
			return nil, "", err
		}
		out = append(out, *saved)
	}

	var nextCursor string
	if result.LastEvaluatedKey != nil {
		if gsi1sk, ok := result.LastEvaluatedKey["GSI1SK"].(*types.AttributeValueMemberS); ok {
			nextCursor = gsi1sk.Value
		}
	}
	return out, nextCursor, nil
}

// Delete removes a saved script. Deleting an unknown id is not an error.
func (s *DynamoStore) Delete(ctx context.Context, id string) error {
	_, err := s.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: &s.tableName,
		Key: map[string]types.AttributeValue{
			"PK": &types.AttributeValueMemberS{Value: "SCRIPT#" + id},
			"SK": &types.AttributeValueMemberS{Value: "METADATA"},
		},
	})
	if err != nil {
		return fmt.Errorf("delete script: %w", err)
	}
	return nil
}

func (s *DynamoStore) usageKey() map[string]types.AttributeValue {
	day := s.now().UTC().Format("2006-01-02")
	return map[string]types.AttributeValue{
		"PK": &types.AttributeValueMemberS{Value: "USAGE#" + day},
		"SK": &types.AttributeValueMemberS{Value: "COUNTER"},
	}
}

// IncrementUsage bumps today's generation counter atomically and returns
// the new count. The counter item is keyed by UTC date, so rollover to a
// new day starts from zero without a reset job.
func (s *DynamoStore) IncrementUsage(ctx context.Context) (int, error) {
	result, err := s.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:        &s.tableName,
		Key:              s.usageKey(),
		UpdateExpression: aws.String("ADD #count :one"),
		ExpressionAttributeNames: map[string]string{
			"#count": "count",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":one": &types.AttributeValueMemberN{Value: "1"},
		},
		ReturnValues: types.ReturnValueUpdatedNew,
	})
	if err != nil {
		return 0, fmt.Errorf("increment usage: %w", err)
	}
	return usageCount(result.Attributes)
}

// Usage returns today's generation count.
func (s *DynamoStore) Usage(ctx context.Context) (int, error) {
	result, err := s.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: &s.tableName,
		Key:       s.usageKey(),
	})
	if err != nil {
		return 0, fmt.Errorf("get usage: %w", err)
	}
	if result.Item == nil {
		return 0, nil
	}
	return usageCount(result.Item)
}

// CheckLimit reports whether the plan allows another generation today.
// Pro is unlimited.
func (s *DynamoStore) CheckLimit(ctx context.Context, plan Plan) (bool, error) {
	if plan == PlanPro {
		return true, nil
	}
	count, err := s.Usage(ctx)
	if err != nil {
		return false, err
	}
	return count < FreeDailyLimit, nil
}

func usageCount(attrs map[string]types.AttributeValue) (int, error) {
	n, ok := attrs["count"].(*types.AttributeValueMemberN)
	if !ok {
		return 0, nil
	}
	count, err := strconv.Atoi(n.Value)
	if err != nil {
		return 0, fmt.Errorf("parse usage count: %w", err)
	}
	return count, nil
}

func (item scriptItem) toSaved() (*SavedScript, error) {
	var saved SavedScript
	if err := json.Unmarshal([]byte(item.DocumentJSON), &saved.Document); err != nil {
		return nil, fmt.Errorf("unmarshal document %s: %w", item.ScriptID, err)
	}
	if item.AnalysisJSON != "" {
		if err := json.Unmarshal([]byte(item.AnalysisJSON), &saved.Analysis); err != nil {
			return nil, fmt.Errorf("unmarshal analysis %s: %w", item.ScriptID, err)
		}
	}
	return &saved, nil
}
