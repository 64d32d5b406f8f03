package service

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"gasdepot-backend/internal/domain"
)

type importRow struct {
	line     int
	serial   string
	cylinder *domain.Cylinder
	err      string
}

// parseImportCSV reads the bulk-import format: a header row
// serialCode,gasType,size,status,lastLocation followed by one row per
// cylinder. Enum violations are reported per row; an invalid or absent
// status defaults to Available.
func parseImportCSV(r io.Reader) ([]importRow, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}
	if len(header) < len(csvHeader) {
		return nil, fmt.Errorf("expected columns %s: %w", strings.Join(csvHeader, ","), domain.ErrValidation)
	}

	var rows []importRow
	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			rows = append(rows, importRow{line: line, err: "malformed row"})
			continue
		}

		row := importRow{line: line, serial: strings.TrimSpace(record[0])}
		gas := domain.GasType(strings.ToUpper(strings.TrimSpace(record[1])))
		size := domain.CylinderSize(strings.ToUpper(strings.TrimSpace(record[2])))
		status := domain.CylinderStatus(strings.ToUpper(strings.TrimSpace(record[3])))
		location := strings.TrimSpace(record[4])

		switch {
		case row.serial == "":
			row.err = "missing serial code"
		case !gas.Valid():
			row.err = fmt.Sprintf("unknown gas type %q", record[1])
		case !size.Valid():
			row.err = fmt.Sprintf("unknown size %q", record[2])
		}
		if row.err != "" {
			rows = append(rows, row)
			continue
		}

		if !status.Valid() {
			status = domain.CylinderStatusAvailable
		}
		if location == "" {
			location = domain.WarehouseLocation
		}
		row.cylinder = &domain.Cylinder{
			SerialCode:   row.serial,
			GasType:      gas,
			Size:         size,
			Status:       status,
			HolderType:   domain.HolderNone,
			LastLocation: location,
		}
		rows = append(rows, row)
	}
	return rows, nil
}
