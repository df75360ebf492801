package archive

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"time"

	"warungpos/internal/ledger"
)

var ErrNoSales = errors.New("no sales to archive for this branch")

// ObjectStorage is the upload contract; the R2 client satisfies it.
type ObjectStorage interface {
	Put(ctx context.Context, key, contentType string, body []byte) (string, error)
}

type Service struct {
	store   ledger.Store
	storage ObjectStorage
}

func NewService(store ledger.Store, storage ObjectStorage) *Service {
	return &Service{store: store, storage: storage}
}

// ArchiveSales exports every sale row of a branch as CSV to object storage
// and returns the object URL.
func (s *Service) ArchiveSales(ctx context.Context, branchID string) (string, error) {
	sales, err := s.store.ListSales(ctx, branchID)
	if err != nil {
		return "", err
	}

	if len(sales) == 0 {
		return "", ErrNoSales
	}

	body, err := renderCSV(sales)
	if err != nil {
		return "", err
	}

	key := fmt.Sprintf(
		"archives/%s/sales-%s.csv",
		branchID,
		time.Now().Format("20060102-150405"),
	)

	return s.storage.Put(ctx, key, "text/csv", body)
}

func renderCSV(sales []ledger.SaleRecord) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{
		"attempt_id", "branch_id", "sold_at", "menu_name", "qty",
		"total_price", "total_cogs", "profit",
	}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	for _, sale := range sales {
		row := []string{
			sale.AttemptID,
			sale.BranchID,
			sale.SoldAt.Format(time.RFC3339),
			sale.MenuName,
			fmt.Sprintf("%d", sale.Qty),
			sale.TotalPrice.String(),
			sale.TotalCOGS.String(),
			sale.Profit.String(),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	w.Flush()
	return buf.Bytes(), w.Error()
}
