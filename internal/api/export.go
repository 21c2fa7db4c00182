package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/xuri/excelize/v2"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportOrders streams the filtered rows as an XLSX workbook. The
// workbook is built in memory and written straight to the response;
// nothing is persisted server-side.
func (h *Handler) ExportOrders(c echo.Context) error {
	ds, err := h.dataset()
	if err != nil {
		return err
	}
	rows := parseFilter(c).Apply(ds)

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Orders"
	f.SetSheetName("Sheet1", sheet)

	sw, err := f.NewStreamWriter(sheet)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	writeRow := func(rowNum int, values []string) error {
		cells := make([]interface{}, len(values))
		for i, v := range values {
			cells[i] = v
		}
		ref, err := excelize.CoordinatesToCellName(1, rowNum)
		if err != nil {
			return err
		}
		return sw.SetRow(ref, cells)
	}

	if err := writeRow(1, ds.Headers); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	for n, i := range rows {
		if err := writeRow(n+2, ds.Rows[i]); err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}
	if err := sw.Flush(); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	c.Response().Header().Set(echo.HeaderContentDisposition,
		`attachment; filename="amazon-sale-report-filtered.xlsx"`)
	c.Response().Header().Set(echo.HeaderContentType, xlsxContentType)
	c.Response().WriteHeader(http.StatusOK)
	return f.Write(c.Response())
}
