package main

import (
	"context"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"go.uber.org/zap"

	"github.com/skillet-labs/chessdash/internal/app/dashboard"
	"github.com/skillet-labs/chessdash/internal/aws/storage"
	"github.com/skillet-labs/chessdash/pkg/logging"
)

var storageClient *storage.Client

func init() {
	cfg, _ := config.LoadDefaultConfig(context.TODO())
	storageClient = storage.NewClient(s3.NewFromConfig(cfg))
}

func handler(ctx context.Context, event events.CloudWatchEvent) error {
	cfg, err := dashboard.LoadConfig()
	if err != nil {
		logging.Error("couldn't load config", zap.Error(err))
		return err
	}

	artifacts, err := dashboard.NewApp(cfg).Generate(ctx)
	if err != nil {
		logging.Error("dashboard run failed", zap.Error(err))
		return err
	}

	if err := storageClient.UploadDashboard(
		ctx, "index.html", artifacts.Html, "text/html",
	); err != nil {
		logging.Error("failed to upload html report", zap.Error(err))
		return err
	}
	if err := storageClient.UploadDashboard(
		ctx, "REPORT.md", artifacts.Markdown, "text/markdown",
	); err != nil {
		logging.Error("failed to upload markdown report", zap.Error(err))
		return err
	}

	logging.Info(
		"dashboard published",
		zap.String("run_id", artifacts.RunId),
		zap.String("trigger", event.DetailType),
	)
	return nil
}

func main() {
	lambda.Start(handler)
}
