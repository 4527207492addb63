package db

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/fieldscout/interactionintel/internal/clients"
	"github.com/fieldscout/interactionintel/internal/models"
)

const (
	REPORTS_TABLE_NAME       = "IntelligenceReports"
	OPPORTUNITIES_TABLE_NAME = "ContentOpportunities"
)

var dbClient *dynamodb.Client

func InitDynamoDB() {
	dbClient = clients.GetDynamoDBClient()
}

// StoreReport writes the report summary for a client. The full combined
// insights are stored as a JSON document attribute since the dashboard
// reads them back as a unit.
func StoreReport(ctx context.Context, rep models.IntelligenceReport) error {
	if dbClient == nil {
		dbClient = clients.GetDynamoDBClient()
	}

	item, err := ReportToDynamoDBItem(rep)
	if err != nil {
		return err
	}

	_, err = dbClient.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(REPORTS_TABLE_NAME),
		Item:      item,
	})
	if err != nil {
		return fmt.Errorf("[DynamoDB] Failed to store report: %w", err)
	}

	slog.Info("[DynamoDB] Stored intelligence report",
		slog.String("client_id", rep.ClientID),
		slog.Int("total_interactions", rep.TotalInteractions))
	return nil
}

func ReportToDynamoDBItem(rep models.IntelligenceReport) (map[string]types.AttributeValue, error) {
	insights, err := json.Marshal(rep.CombinedInsights)
	if err != nil {
		return nil, fmt.Errorf("[DynamoDB] Failed to serialize combined insights: %w", err)
	}
	sources, err := json.Marshal(rep.Sources)
	if err != nil {
		return nil, fmt.Errorf("[DynamoDB] Failed to serialize source breakdowns: %w", err)
	}

	expirationTime := time.Now().Add(30 * 24 * time.Hour).Unix()

	item := map[string]types.AttributeValue{
		"client_id":          &types.AttributeValueMemberS{Value: rep.ClientID},
		"generated_at":       &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", rep.GeneratedAt.Unix())},
		"period_days":        &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", rep.PeriodDays)},
		"total_interactions": &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", rep.TotalInteractions)},
		"combined_insights":  &types.AttributeValueMemberS{Value: string(insights)},
		"sources":            &types.AttributeValueMemberS{Value: string(sources)},
		"expires_at":         &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", expirationTime)},
	}
	if rep.SkippedSources > 0 {
		item["skipped_sources"] = &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", rep.SkippedSources)}
	}
	return item, nil
}

// BatchInsertOpportunities writes the generated opportunities for a
// client, chunked at the BatchWriteItem limit with retries for
// unprocessed items.
func BatchInsertOpportunities(ctx context.Context, clientID string, opportunities []models.ContentOpportunity) error {
	if dbClient == nil {
		dbClient = clients.GetDynamoDBClient()
	}
	if len(opportunities) == 0 {
		return nil
	}

	const maxBatchSize = 25
	for i := 0; i < len(opportunities); i += maxBatchSize {
		select {
		case <-ctx.Done():
			slog.Warn("[DynamoDB] context canceled")
			return ctx.Err()
		default:
			end := i + maxBatchSize
			if end > len(opportunities) {
				end = len(opportunities)
			}

			writeRequests := make([]types.WriteRequest, 0, maxBatchSize)
			for pos, opp := range opportunities[i:end] {
				item, err := OpportunityToDynamoDBItem(clientID, i+pos, opp)
				if err != nil {
					return err
				}
				writeRequests = append(writeRequests, types.WriteRequest{
					PutRequest: &types.PutRequest{Item: item},
				})
			}

			out, err := dbClient.BatchWriteItem(ctx, &dynamodb.BatchWriteItemInput{
				RequestItems: map[string][]types.WriteRequest{
					OPPORTUNITIES_TABLE_NAME: writeRequests,
				},
			})
			if err != nil {
				return fmt.Errorf("[DynamoDB] Failed to batch write opportunities: %w", err)
			}

			retryCount := 0
			backoff := 500 * time.Millisecond
			for len(out.UnprocessedItems) > 0 && retryCount < 3 {
				time.Sleep(backoff)
				backoff *= 2
				slog.Warn("[DynamoDB] Retrying unprocessed opportunity items...",
					slog.Int("attempt", retryCount+1),
					slog.Int("remaining", len(out.UnprocessedItems[OPPORTUNITIES_TABLE_NAME])))

				out, err = dbClient.BatchWriteItem(ctx, &dynamodb.BatchWriteItemInput{
					RequestItems: out.UnprocessedItems,
				})
				if err != nil {
					return fmt.Errorf("[DynamoDB] Failed to retry batch write: %w", err)
				}
				retryCount++
			}

			if len(out.UnprocessedItems) > 0 {
				slog.Error("[DynamoDB] Some opportunities were not written even after retries",
					slog.Int("remaining", len(out.UnprocessedItems[OPPORTUNITIES_TABLE_NAME])))
			}
		}
	}

	slog.Info("[DynamoDB] Successfully stored all opportunities",
		slog.String("client_id", clientID),
		slog.Int("count", len(opportunities)))
	return nil
}

func OpportunityToDynamoDBItem(clientID string, position int, opp models.ContentOpportunity) (map[string]types.AttributeValue, error) {
	item := make(map[string]types.AttributeValue)

	item["client_id"] = &types.AttributeValueMemberS{Value: clientID}
	item["opportunity_id"] = &types.AttributeValueMemberS{Value: fmt.Sprintf("%s#%03d", clientID, position)}
	item["type"] = &types.AttributeValueMemberS{Value: string(opp.Type)}
	item["priority"] = &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", opp.Priority)}
	item["title"] = &types.AttributeValueMemberS{Value: opp.Title}
	item["description"] = &types.AttributeValueMemberS{Value: opp.Description}
	item["created_at"] = &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", time.Now().Unix())}
	item["ttl"] = &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", time.Now().Add(30*24*time.Hour).Unix())}

	if len(opp.SupportingData) > 0 {
		data, err := attributevalue.MarshalList(opp.SupportingData)
		if err != nil {
			return nil, fmt.Errorf("[DynamoDB] Failed to marshal supporting data: %w", err)
		}
		item["supporting_data"] = &types.AttributeValueMemberL{Value: data}
	}
	if len(opp.Outline) > 0 {
		outline := make([]types.AttributeValue, 0, len(opp.Outline))
		for _, line := range opp.Outline {
			outline = append(outline, &types.AttributeValueMemberS{Value: line})
		}
		item["outline"] = &types.AttributeValueMemberL{Value: outline}
	}
	if opp.TotalPosts > 0 {
		item["total_posts"] = &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", opp.TotalPosts)}
	}

	return item, nil
}

// GetOpportunities loads the stored opportunities for a client, used by
// the dashboard query path.
func GetOpportunities(ctx context.Context, clientID string) ([]models.ContentOpportunity, error) {
	if dbClient == nil {
		dbClient = clients.GetDynamoDBClient()
	}

	keyCond := "client_id = :cid"
	input := &dynamodb.QueryInput{
		TableName:              aws.String(OPPORTUNITIES_TABLE_NAME),
		KeyConditionExpression: aws.String(keyCond),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cid": &types.AttributeValueMemberS{Value: clientID},
		},
	}

	var opportunities []models.ContentOpportunity
	paginator := dynamodb.NewQueryPaginator(dbClient, input)
	for paginator.HasMorePages() {
		out, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("[DynamoDB] Query for opportunities failed: %w", err)
		}
		var page []models.ContentOpportunity
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &page); err != nil {
			slog.Error("[DynamoDB] Unable to unmarshal opportunity page", slog.String("error", err.Error()))
			return nil, err
		}
		opportunities = append(opportunities, page...)
	}

	slog.Info("[DynamoDB] Successfully retrieved opportunities",
		slog.String("client_id", clientID),
		slog.Int("count", len(opportunities)))
	return opportunities, nil
}
