package importers

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
)

// CredentialRow is one username/password pair from the users source file.
type CredentialRow struct {
	Username string
	Password string
}

// ParseCredentialsCSV reads every row of r as a credential pair. Rows with
// fewer than two fields are skipped and extra fields are ignored. Values are
// kept exactly as written: no header detection, trimming or de-duplication.
func ParseCredentialsCSV(r io.Reader) ([]CredentialRow, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // Allow variable number of fields

	var rows []CredentialRow
	lineNum := 0

	for {
		lineNum++
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNum, err)
		}
		if len(record) < 2 {
			continue
		}
		rows = append(rows, CredentialRow{Username: record[0], Password: record[1]})
	}

	return rows, nil
}

// ReadCredentialsFile opens path and parses it with ParseCredentialsCSV.
func ReadCredentialsFile(path string) ([]CredentialRow, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open users source: %w", err)
	}
	defer file.Close()

	rows, err := ParseCredentialsCSV(file)
	if err != nil {
		return nil, fmt.Errorf("failed to parse users source %s: %w", path, err)
	}
	return rows, nil
}
