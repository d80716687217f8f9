package storage

import (
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

type Client struct {
	s3  *s3.Client
	cfg config
}

type config struct {
	DashboardBucketName *string
}

func NewClient(s3Client *s3.Client) *Client {
	return &Client{
		s3:  s3Client,
		cfg: loadConfig(),
	}
}

func loadConfig() config {
	var cfg config
	if v, ok := os.LookupEnv("DASHBOARD_BUCKET_NAME"); ok {
		cfg.DashboardBucketName = aws.String(v)
	}
	return cfg
}
