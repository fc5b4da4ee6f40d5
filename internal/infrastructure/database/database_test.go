package database

import (
	"context"
	"testing"

	appconfig "agency_estimator/internal/infrastructure/config"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRedis(t *testing.T) {
	t.Run("pings a live server", func(t *testing.T) {
		mr := miniredis.RunT(t)

		rdb, err := NewRedis(appconfig.RedisConfig{URL: "redis://" + mr.Addr() + "/0"})
		require.NoError(t, err)
		defer rdb.Close()

		assert.NoError(t, PingRedis(context.Background(), rdb))
	})

	t.Run("rejects a malformed url", func(t *testing.T) {
		_, err := NewRedis(appconfig.RedisConfig{URL: "not-a-url"})
		assert.Error(t, err)
	})
}

func TestNewDynamoDB_Endpoint(t *testing.T) {
	awsCfg, err := LoadAWSConfig(context.Background(), appconfig.AWSConfig{
		Region:          "us-east-1",
		AccessKeyID:     "local",
		SecretAccessKey: "local",
	})
	require.NoError(t, err)
	assert.Equal(t, "us-east-1", awsCfg.Region)

	client := NewDynamoDB(awsCfg, appconfig.DynamoDBConfig{Endpoint: "http://localhost:8000"})
	require.NotNil(t, client)
	assert.Equal(t, "http://localhost:8000", *client.Options().BaseEndpoint)
}
