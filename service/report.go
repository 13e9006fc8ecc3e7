package service

import (
	"context"
	"sort"

	"github.com/omerkonca/kantin23/models"

	"github.com/shopspring/decimal"
)

const (
	DefaultDailyWindow   = 7
	DefaultProductWindow = 100
	DefaultTopProducts   = 5
)

// DailySalesRow is one day of the sales trend, oldest day first.
type DailySalesRow struct {
	Date  string          `json:"date"` // YYYY-MM-DD
	Total decimal.Decimal `json:"total"`
	Count int64           `json:"count"`
}

// TopProductRow is one product of the best-sellers view.
type TopProductRow struct {
	ProductID uint            `json:"product_id"`
	Name      string          `json:"name"`
	Quantity  int64           `json:"quantity"`
	Total     decimal.Decimal `json:"total"`
}

func (s *service) DailySales(ctx context.Context, window int) ([]DailySalesRow, error) {
	if window <= 0 {
		window = DefaultDailyWindow
	}

	var sales []models.Sale
	if err := s.db.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Limit(window).
		Find(&sales).Error; err != nil {
		return nil, err
	}

	totals := make(map[string]*DailySalesRow)
	for _, sale := range sales {
		day := sale.CreatedAt.Format("2006-01-02")
		row, ok := totals[day]
		if !ok {
			row = &DailySalesRow{Date: day, Total: decimal.Zero}
			totals[day] = row
		}
		row.Total = row.Total.Add(sale.TotalPrice)
		row.Count++
	}

	rows := make([]DailySalesRow, 0, len(totals))
	for _, row := range totals {
		rows = append(rows, *row)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Date < rows[j].Date })
	return rows, nil
}

func (s *service) TopProducts(ctx context.Context, window, top int) ([]TopProductRow, error) {
	if window <= 0 {
		window = DefaultProductWindow
	}
	if top <= 0 {
		top = DefaultTopProducts
	}

	var sales []models.Sale
	if err := s.db.WithContext(ctx).
		Preload("Product").
		Order("created_at DESC, id DESC").
		Limit(window).
		Find(&sales).Error; err != nil {
		return nil, err
	}

	totals := make(map[uint]*TopProductRow)
	for _, sale := range sales {
		row, ok := totals[sale.ProductID]
		if !ok {
			row = &TopProductRow{
				ProductID: sale.ProductID,
				Name:      sale.Product.Name,
				Total:     decimal.Zero,
			}
			totals[sale.ProductID] = row
		}
		row.Quantity += sale.Quantity
		row.Total = row.Total.Add(sale.TotalPrice)
	}

	rows := make([]TopProductRow, 0, len(totals))
	for _, row := range totals {
		rows = append(rows, *row)
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Quantity != rows[j].Quantity {
			return rows[i].Quantity > rows[j].Quantity
		}
		return rows[i].Name < rows[j].Name
	})
	if len(rows) > top {
		rows = rows[:top]
	}
	return rows, nil
}
