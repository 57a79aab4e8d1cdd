package database

import (
	"context"
	"testing"

	"b2b_sourcing/internal/infrastructure/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewAWSConfig(t *testing.T) {
	cfg := &config.Config{AWSRegion: "sa-east-1", AWSAccessKeyID: "ak", AWSSecretAccessKey: "sk"}
	awsCfg, err := NewAWSConfig(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, "sa-east-1", awsCfg.Region)

	creds, err := awsCfg.Credentials.Retrieve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "ak", creds.AccessKeyID)
}

func TestEndpointOption(t *testing.T) {
	var o dynamodb.Options
	endpointOption("")(&o)
	assert.Nil(t, o.BaseEndpoint)

	endpointOption("http://dynamodb:8000")(&o)
	assert.Equal(t, "http://dynamodb:8000", aws.ToString(o.BaseEndpoint))
}

func TestConnectDynamoDB(t *testing.T) {
	cfg := &config.Config{AWSRegion: "us-east-1", AWSAccessKeyID: "local", AWSSecretAccessKey: "local", DynamoDBEndpoint: "http://localhost:8000"}
	client, err := ConnectDynamoDB(context.Background(), cfg, zap.NewNop())
	require.NoError(t, err)
	assert.NotNil(t, client)
}
