package adminapi

import (
	"bytes"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/360EntSecGroup-Skylar/excelize"
	"github.com/aerotools/catalogd/internal/domain"
	"github.com/aerotools/catalogd/internal/webserver"
	"github.com/gocarina/gocsv"
	"github.com/labstack/echo/v4"
)

func registerReportRoutes() {
	webserver.ApiGET("/products/report/csv", exportCsvReport)
	webserver.ApiGET("/products/report/xlsx", exportXlsxReport)
}

// productRow is the flat projection used by the spreadsheet reports.
type productRow struct {
	ID            string `csv:"id"`
	Slug          string `csv:"slug"`
	Name          string `csv:"name"`
	Category      string `csv:"category"`
	PriceDisplay  string `csv:"price_display"`
	PriceRange    string `csv:"price_range"`
	Material      string `csv:"material"`
	InStock       bool   `csv:"in_stock"`
	IsNew         bool   `csv:"is_new"`
	IsFeatured    bool   `csv:"is_featured"`
	LeadTime      string `csv:"lead_time"`
	MinOrder      int    `csv:"min_order"`
	Compatibility string `csv:"compatibility"`
	Usage         string `csv:"usage"`
}

func flattenRows(items []domain.Product) []productRow {
	rows := make([]productRow, 0, len(items))
	for _, p := range items {
		rows = append(rows, productRow{
			ID:            p.ID,
			Slug:          p.Slug,
			Name:          p.Name,
			Category:      p.Category,
			PriceDisplay:  p.PriceDisplay,
			PriceRange:    p.PriceRange,
			Material:      p.Material,
			InStock:       p.InStock,
			IsNew:         p.IsNew,
			IsFeatured:    p.IsFeatured,
			LeadTime:      p.LeadTime,
			MinOrder:      p.MinOrder,
			Compatibility: strings.Join(p.Compatibility, "; "),
			Usage:         strings.Join(p.Usage, "; "),
		})
	}
	return rows
}

func exportCsvReport(c echo.Context) error {
	rows := flattenRows(GetEngine(c).List())
	data, err := gocsv.MarshalString(&rows)
	if err != nil {
		return fail(c, http.StatusInternalServerError, "INTERNAL_ERROR", "csv report failed", err.Error())
	}
	name := fmt.Sprintf("aerotools-products-%s.csv", time.Now().Format("2006-01-02"))
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+name+`"`)
	return c.Blob(http.StatusOK, "text/csv", []byte(data))
}

func exportXlsxReport(c echo.Context) error {
	rows := flattenRows(GetEngine(c).List())

	headers := []string{
		"Id", "Slug", "Name", "Category", "Price", "Price Range", "Material",
		"In Stock", "New", "Featured", "Lead Time", "Min Order", "Compatibility", "Usage",
	}
	f := excelize.NewFile()
	for i, h := range headers {
		f.SetCellValue("Sheet1", excelize.ToAlphaString(i)+"1", h)
	}
	for r, row := range rows {
		values := []interface{}{
			row.ID, row.Slug, row.Name, row.Category, row.PriceDisplay, row.PriceRange,
			row.Material, row.InStock, row.IsNew, row.IsFeatured, row.LeadTime,
			row.MinOrder, row.Compatibility, row.Usage,
		}
		for i, v := range values {
			f.SetCellValue("Sheet1", fmt.Sprintf("%s%d", excelize.ToAlphaString(i), r+2), v)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return fail(c, http.StatusInternalServerError, "INTERNAL_ERROR", "xlsx report failed", err.Error())
	}
	name := fmt.Sprintf("aerotools-products-%s.xlsx", time.Now().Format("2006-01-02"))
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+name+`"`)
	return c.Blob(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}
