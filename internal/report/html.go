package report

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"html/template"

	"github.com/skillet-labs/chessdash/internal/domains/entities"
)

//go:embed templates/dashboard.html.tmpl templates/report.md.tmpl
var templateFs embed.FS

var htmlTemplate = template.Must(
	template.ParseFS(templateFs, "templates/dashboard.html.tmpl"),
)

type htmlView struct {
	Data

	// Chart payload, pre-marshaled so the template can inline it into the
	// chart script.
	RatingsJson template.JS
	DatesJson   template.JS
}

// RenderHTML produces the dashboard page.
func RenderHTML(data Data) (string, error) {
	ratingsJson, datesJson, err := chartSeries(data.RatingHistory)
	if err != nil {
		return "", fmt.Errorf("failed to build chart series: %w", err)
	}

	view := htmlView{
		Data:        data,
		RatingsJson: template.JS(ratingsJson),
		DatesJson:   template.JS(datesJson),
	}
	buf := new(bytes.Buffer)
	if err := htmlTemplate.Execute(buf, view); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}
	return buf.String(), nil
}

func chartSeries(history []entities.RatingPoint) (ratingsJson, datesJson string, err error) {
	ratings := make([]int, 0, len(history))
	dates := make([]string, 0, len(history))
	for _, point := range history {
		ratings = append(ratings, point.Rating)
		dates = append(dates, point.Date.Format("2006-01-02"))
	}

	ratingsBytes, err := json.Marshal(ratings)
	if err != nil {
		return "", "", err
	}
	datesBytes, err := json.Marshal(dates)
	if err != nil {
		return "", "", err
	}
	return string(ratingsBytes), string(datesBytes), nil
}
