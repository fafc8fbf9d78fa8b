package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/voyagedesk/passport-tracker/internal/repository"
)

// Service is a tiny façade over repositories that produces XLSX bytes for exports.
type Service struct {
	passports repository.PassportRepository
	logger    *slog.Logger
}

func NewService(passports repository.PassportRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{passports: passports, logger: logger}
}

// ExportPassportsXLSX returns an XLSX workbook (as bytes) with the owner's
// passports, optionally narrowed to one destination.
func (s *Service) ExportPassportsXLSX(ctx context.Context, ownerID uuid.UUID, destination string) ([]byte, error) {
	start := time.Now()

	passports, err := s.passports.List(ctx, repository.PassportFilter{
		OwnerID:     ownerID,
		Destination: destination,
	})
	if err != nil {
		return nil, fmt.Errorf("query passports: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Passports"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		_, err := f.NewSheet(sheet)
		if err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Last Name",
		"First Name",
		"Passport Number",
		"Nationality",
		"Birth Date",
		"Expiration Date",
		"Delivery Date",
		"Confidence",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, p := range passports {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		write(1, p.LastName)
		write(2, p.FirstName)
		write(3, p.PassportNumber)
		write(4, p.Nationality)
		write(5, p.BirthDate.Format("2006-01-02"))
		write(6, p.ExpirationDate.Format("2006-01-02"))
		if p.DeliveryDate != nil {
			write(7, p.DeliveryDate.Format("2006-01-02"))
		} else {
			write(7, "")
		}
		if p.ConfidenceScore != nil {
			write(8, fmt.Sprintf("%.2f", *p.ConfidenceScore))
		} else {
			write(8, "")
		}

		row++
	}

	// Widen a few columns
	_ = f.SetColWidth(sheet, "A", "B", 20) // names
	_ = f.SetColWidth(sheet, "C", "C", 18) // number
	_ = f.SetColWidth(sheet, "D", "D", 12) // nationality
	_ = f.SetColWidth(sheet, "E", "G", 16) // dates
	_ = f.SetColWidth(sheet, "H", "H", 12) // confidence

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"owner_id", ownerID.String(),
		"rows", len(passports),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}
