package api

import (
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/pratikdevelop/amazon-sales-report-analysis-dashboard/internal/engine"
	"github.com/pratikdevelop/amazon-sales-report-analysis-dashboard/internal/geo"
	"github.com/pratikdevelop/amazon-sales-report-analysis-dashboard/internal/models"
)

// previewCap bounds the raw-data table; the dashboard never pages.
const previewCap = 1000

type Handler struct {
	store *engine.Store
}

func NewHandler(store *engine.Store) *Handler {
	return &Handler{store: store}
}

func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	api := e.Group("/api")
	api.GET("/summary", h.GetSummary)
	api.GET("/options", h.GetOptions)
	api.GET("/charts/category", h.GetCategoryChart)
	api.GET("/charts/category.png", h.GetCategoryChartPNG)
	api.GET("/charts/daily", h.GetDailyChart)
	api.GET("/charts/daily.png", h.GetDailyChartPNG)
	api.GET("/charts/products", h.GetProductChart)
	api.GET("/map/cities", h.GetCityMap)
	api.GET("/orders", h.GetOrders)
	api.GET("/export", h.ExportOrders)
}

// dataset fetches the cached report. While the initial background load
// is still running (or failed), the API answers 503 with the load
// error instead of rendering partial data.
func (h *Handler) dataset() (*engine.Dataset, error) {
	ds, err := h.store.Get()
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusServiceUnavailable, err.Error())
	}
	return ds, nil
}

// parseFilter reads the sidebar state from query parameters. Repeated
// category/status/fulfilment params form the multi-select values; the
// "All" sentinel and empty lists mean unrestricted.
func parseFilter(c echo.Context) engine.Filter {
	q := c.QueryParams()
	return engine.Filter{
		From:        parseYMD(c.QueryParam("from")),
		To:          parseYMD(c.QueryParam("to")),
		Categories:  q["category"],
		Statuses:    q["status"],
		Fulfilments: q["fulfilment"],
	}
}

func parseYMD(s string) int32 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return 0
	}
	return int32(t.Year()*10000 + int(t.Month())*100 + t.Day())
}

// --- HANDLERS ---

func (h *Handler) GetSummary(c echo.Context) error {
	ds, err := h.dataset()
	if err != nil {
		return err
	}
	rows := parseFilter(c).Apply(ds)
	return c.JSON(http.StatusOK, engine.Summarize(ds, rows))
}

func (h *Handler) GetOptions(c echo.Context) error {
	ds, err := h.dataset()
	if err != nil {
		return err
	}
	opts := models.Options{
		Categories:  dictValues(&ds.Category),
		Statuses:    dictValues(&ds.Status),
		Fulfilments: dictValues(&ds.Fulfilment),
	}
	if lo, hi := ds.DateBounds(); lo != 0 {
		opts.DateMin = ymdString(lo)
		opts.DateMax = ymdString(hi)
	}
	return c.JSON(http.StatusOK, opts)
}

func (h *Handler) GetCategoryChart(c echo.Context) error {
	ds, err := h.dataset()
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, h.categoryChart(c, ds))
}

func (h *Handler) categoryChart(c echo.Context, ds *engine.Dataset) models.Chart {
	chart := models.Chart{Title: "Revenue by Category (Top 12)", Groups: []engine.GroupTotal{}}
	if !ds.Category.Present() {
		chart.Unavailable = true
		chart.Reason = "Category column not found"
		return chart
	}
	rows := parseFilter(c).Apply(ds)
	if g := engine.GroupRevenue(ds, rows, &ds.Category, engine.TopCategories); g != nil {
		chart.Groups = g
	}
	return chart
}

func (h *Handler) GetProductChart(c echo.Context) error {
	ds, err := h.dataset()
	if err != nil {
		return err
	}
	chart := models.Chart{Groups: []engine.GroupTotal{}}
	if !ds.Product.Present() {
		chart.Title = "Top Products"
		chart.Unavailable = true
		chart.Reason = "No SKU / Style column found"
		return c.JSON(http.StatusOK, chart)
	}
	chart.Title = "Top 10 " + ds.Schema.Product.Name + " by Revenue"
	rows := parseFilter(c).Apply(ds)
	if g := engine.GroupRevenue(ds, rows, &ds.Product, engine.TopProducts); g != nil {
		chart.Groups = g
	}
	return c.JSON(http.StatusOK, chart)
}

func (h *Handler) GetDailyChart(c echo.Context) error {
	ds, err := h.dataset()
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, h.dailySeries(c, ds))
}

func (h *Handler) dailySeries(c echo.Context, ds *engine.Dataset) models.Series {
	series := models.Series{Title: "Daily Revenue Trend", Points: []engine.DayTotal{}}
	if !ds.Schema.Date.Resolved() {
		series.Unavailable = true
		series.Reason = "Date column not found"
		return series
	}
	rows := parseFilter(c).Apply(ds)
	if p := engine.DailyRevenue(ds, rows); p != nil {
		series.Points = p
	}
	return series
}

func (h *Handler) GetCityMap(c echo.Context) error {
	ds, err := h.dataset()
	if err != nil {
		return err
	}
	m := models.CityMap{Cities: []models.MapCity{}}
	if !ds.City.Present() {
		m.Unavailable = true
		m.Reason = "Shipping city column not found"
		return c.JSON(http.StatusOK, m)
	}
	rows := parseFilter(c).Apply(ds)
	for _, g := range engine.GroupRevenue(ds, rows, &ds.City, engine.TopCities) {
		if p, ok := geo.Lookup(g.Key); ok {
			m.Cities = append(m.Cities, models.MapCity{
				City:    g.Key,
				Revenue: g.Revenue,
				Orders:  g.Orders,
				Point:   p,
			})
		} else {
			m.Unmapped = append(m.Unmapped, g)
		}
	}
	return c.JSON(http.StatusOK, m)
}

func (h *Handler) GetOrders(c echo.Context) error {
	ds, err := h.dataset()
	if err != nil {
		return err
	}
	rows := parseFilter(c).Apply(ds)

	limit := previewCap
	if n, err := strconv.Atoi(c.QueryParam("limit")); err == nil && n > 0 && n < previewCap {
		limit = n
	}

	out := models.Orders{
		Headers: ds.Headers,
		Rows:    make([][]string, 0, min(limit, len(rows))),
		Total:   len(rows),
	}
	for _, i := range rows {
		if len(out.Rows) == limit {
			out.Truncated = true
			break
		}
		out.Rows = append(out.Rows, ds.Rows[i])
	}
	return c.JSON(http.StatusOK, out)
}

// --- helpers ---

// dictValues returns the distinct non-empty values of a dimension,
// sorted, for the sidebar option lists.
func dictValues(d *engine.DimColumn) []string {
	out := []string{}
	for _, v := range d.Dict {
		if v != "" {
			out = append(out, v)
		}
	}
	sort.Strings(out)
	return out
}

func ymdString(d int32) string {
	return time.Date(int(d/10000), time.Month(d/100%100), int(d%100), 0, 0, 0, 0, time.UTC).
		Format("2006-01-02")
}
