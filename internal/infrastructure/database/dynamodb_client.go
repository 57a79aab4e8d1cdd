package database

import (
	"context"

	"b2b_sourcing/internal/infrastructure/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"go.uber.org/zap"
)

// ConnectDynamoDB creates a DynamoDB client from the service config. Static
// credentials default to "local" so DynamoDB Local works without AWS setup.
func ConnectDynamoDB(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*dynamodb.Client, error) {
	awsCfg, err := NewAWSConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}
	logger.Info("dynamodb client configured",
		zap.String("region", cfg.AWSRegion),
		zap.String("endpoint", cfg.DynamoDBEndpoint),
		zap.String("requests_table", cfg.QuoteRequestsTable),
		zap.String("orders_table", cfg.OrdersTable),
	)
	return dynamodb.NewFromConfig(awsCfg, endpointOption(cfg.DynamoDBEndpoint)), nil
}

func NewAWSConfig(ctx context.Context, cfg *config.Config) (aws.Config, error) {
	creds := credentials.NewStaticCredentialsProvider(cfg.AWSAccessKeyID, cfg.AWSSecretAccessKey, "")
	return awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.AWSRegion),
		awsconfig.WithCredentialsProvider(creds),
	)
}

func endpointOption(endpoint string) func(*dynamodb.Options) {
	return func(o *dynamodb.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
	}
}
