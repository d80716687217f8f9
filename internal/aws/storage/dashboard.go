package storage

import (
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// UploadDashboard writes one rendered document to the dashboard bucket.
func (client *Client) UploadDashboard(
	ctx context.Context,
	key string,
	body string,
	contentType string,
) error {
	if client.cfg.DashboardBucketName == nil {
		return fmt.Errorf("dashboard bucket not configured")
	}
	_, err := client.s3.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      client.cfg.DashboardBucketName,
		Key:         aws.String(key),
		Body:        strings.NewReader(body),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return fmt.Errorf("failed to upload dashboard: %w", err)
	}
	return nil
}
