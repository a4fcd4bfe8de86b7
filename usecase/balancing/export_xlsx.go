package balancing

import (
	"context"
	"fmt"

	"github.com/labstack/gommon/log"
	"github.com/xuri/excelize/v2"

	"github.com/kahawa/coffee-balancing/entity"
)

const xlsxSheet = "Balancing"

// ExportDetailXLSX is the spreadsheet variant of the detail export, same
// rows and column order as the CSV.
func (u *balancingUsecase) ExportDetailXLSX(ctx context.Context, req entity.ReportRequest) (filename string, data []byte, err error) {
	defer u.recoverLoad(&err)

	rng, filtered, failure := u.exportRows(ctx, req)
	if failure != nil {
		return "", nil, failure
	}

	f := excelize.NewFile()
	index, err := f.NewSheet(xlsxSheet)
	if err != nil {
		return "", nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	for col, h := range detailHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return "", nil, err
		}
		if err := f.SetCellValue(xlsxSheet, cell, h); err != nil {
			return "", nil, err
		}
	}

	for i, row := range filtered {
		for col, value := range detailRecord(row) {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return "", nil, err
			}
			if err := f.SetCellValue(xlsxSheet, cell, value); err != nil {
				return "", nil, err
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return "", nil, fmt.Errorf("failed to write workbook: %w", err)
	}

	log.Infof("[Export] Detail XLSX: %d rows", len(filtered))
	return u.exportName("balancing_detail", rng, "xlsx"), buf.Bytes(), nil
}
