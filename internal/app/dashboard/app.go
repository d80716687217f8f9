// Package dashboard wires the fetchers, analyzers and renderers into the
// batch run: fetch stats and games, aggregate, render, write or upload.
package dashboard

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/skillet-labs/chessdash/internal/chesscom"
	"github.com/skillet-labs/chessdash/internal/domains/dtos"
	"github.com/skillet-labs/chessdash/internal/narrative"
	"github.com/skillet-labs/chessdash/internal/report"
	"github.com/skillet-labs/chessdash/internal/stats"
	"github.com/skillet-labs/chessdash/pkg/logging"
)

const (
	htmlFileName     = "index.html"
	markdownFileName = "REPORT.md"
)

type App struct {
	cfg       Config
	chesscom  *chesscom.Client
	narrative *narrative.Client
}

func NewApp(cfg Config) *App {
	return &App{
		cfg:       cfg,
		chesscom:  chesscom.NewClient(cfg.ArchiveFetchDelay),
		narrative: narrative.NewClient(cfg.AnthropicApiKey, cfg.AnthropicModel),
	}
}

// Artifacts are the rendered documents of one run.
type Artifacts struct {
	RunId    string
	Html     string
	Markdown string
}

// Generate runs one full fetch-analyze-render cycle.
func (app *App) Generate(ctx context.Context) (Artifacts, error) {
	runId := uuid.NewString()
	logging.Info(
		"starting dashboard run",
		zap.String("run_id", runId),
		zap.String("username", app.cfg.Username),
		zap.String("time_class", app.cfg.TimeClass),
	)

	statsResp := app.chesscom.FetchPlayerStats(ctx, app.cfg.Username)
	record := dtos.PlayerRecordFromStats(statsResp, app.cfg.TimeClass)

	games := app.chesscom.FetchAllGames(ctx, app.cfg.Username)
	logging.Info(
		"fetched game history",
		zap.String("run_id", runId),
		zap.Int("games", len(games)),
	)

	analysis := "No recent games to analyze."
	if last, ok := stats.LatestGame(games, app.cfg.Username); ok {
		analysis = app.narrative.AnalyzeGame(ctx, last, app.cfg.Username)
	}

	data := report.Build(
		app.cfg.Username,
		record,
		games,
		analysis,
		runId,
		time.Now().UTC(),
	)

	html, err := report.RenderHTML(data)
	if err != nil {
		return Artifacts{}, fmt.Errorf("failed to render html: %w", err)
	}
	markdown, err := report.RenderMarkdown(data)
	if err != nil {
		return Artifacts{}, fmt.Errorf("failed to render markdown: %w", err)
	}

	return Artifacts{RunId: runId, Html: html, Markdown: markdown}, nil
}

// Run generates the report and writes both documents to the output dir.
func (app *App) Run(ctx context.Context) error {
	artifacts, err := app.Generate(ctx)
	if err != nil {
		return err
	}

	htmlPath := filepath.Join(app.cfg.OutputDir, htmlFileName)
	if err := os.WriteFile(htmlPath, []byte(artifacts.Html), 0o644); err != nil {
		return fmt.Errorf("failed to write html report: %w", err)
	}
	markdownPath := filepath.Join(app.cfg.OutputDir, markdownFileName)
	if err := os.WriteFile(markdownPath, []byte(artifacts.Markdown), 0o644); err != nil {
		return fmt.Errorf("failed to write markdown report: %w", err)
	}

	logging.Info(
		"dashboard written",
		zap.String("run_id", artifacts.RunId),
		zap.String("html", htmlPath),
		zap.String("markdown", markdownPath),
	)
	return nil
}
