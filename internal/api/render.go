package api

import (
	"bytes"
	"io"
	"net/http"
	"time"

	chart "github.com/wcharczuk/go-chart/v2"

	"github.com/labstack/echo/v4"
)

// Server-rendered PNG variants of the chart tabs, for embedding the
// dashboard in places that cannot run a charting frontend.

func (h *Handler) GetCategoryChartPNG(c echo.Context) error {
	ds, err := h.dataset()
	if err != nil {
		return err
	}
	data := h.categoryChart(c, ds)
	if data.Unavailable || len(data.Groups) == 0 {
		return c.NoContent(http.StatusNoContent)
	}

	bars := make([]chart.Value, len(data.Groups))
	for i, g := range data.Groups {
		bars[i] = chart.Value{Label: g.Key, Value: g.Revenue}
	}

	graph := chart.BarChart{
		Title:    data.Title,
		Width:    1024,
		Height:   512,
		BarWidth: 40,
		Bars:     bars,
		Background: chart.Style{
			Padding: chart.Box{Top: 40},
		},
	}
	return renderPNG(c, graph.Render)
}

func (h *Handler) GetDailyChartPNG(c echo.Context) error {
	ds, err := h.dataset()
	if err != nil {
		return err
	}
	data := h.dailySeries(c, ds)
	if data.Unavailable || len(data.Points) == 0 {
		return c.NoContent(http.StatusNoContent)
	}

	xs := make([]time.Time, 0, len(data.Points))
	ys := make([]float64, 0, len(data.Points))
	for _, p := range data.Points {
		t, err := time.Parse("2006-01-02", p.Date)
		if err != nil {
			continue
		}
		xs = append(xs, t)
		ys = append(ys, p.Revenue)
	}
	if len(xs) == 0 {
		return c.NoContent(http.StatusNoContent)
	}
	// go-chart needs at least two X values to draw a line.
	if len(xs) == 1 {
		xs = append(xs, xs[0].Add(24*time.Hour))
		ys = append(ys, ys[0])
	}

	graph := chart.Chart{
		Title:  data.Title,
		Width:  1024,
		Height: 512,
		XAxis: chart.XAxis{
			ValueFormatter: chart.TimeDateValueFormatter,
		},
		Series: []chart.Series{
			chart.TimeSeries{
				Name:    "Revenue",
				XValues: xs,
				YValues: ys,
			},
		},
	}
	return renderPNG(c, graph.Render)
}

func renderPNG(c echo.Context, render func(chart.RendererProvider, io.Writer) error) error {
	var buf bytes.Buffer
	if err := render(chart.PNG, &buf); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "chart render failed: "+err.Error())
	}
	return c.Blob(http.StatusOK, "image/png", buf.Bytes())
}
