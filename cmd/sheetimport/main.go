// Command sheetimport replaces the items catalog with the contents of a
// Google Sheet. It is a one-shot batch job, run by hand, and is not part
// of the running server.
package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	_ "github.com/go-sql-driver/mysql"
	"github.com/joho/godotenv"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

type sheetRow struct {
	Name     string
	Category string
	Quantity int
	Price    float64
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: Error loading .env file: %v", err)
	}

	spreadsheetID := os.Getenv("SPREADSHEET_ID")
	sheetName := os.Getenv("SHEET_NAME")
	apiKey := os.Getenv("SHEETS_API_KEY")
	dsn := os.Getenv("DATABASE_URL")

	if spreadsheetID == "" || sheetName == "" || apiKey == "" || dsn == "" {
		log.Fatal("SPREADSHEET_ID, SHEET_NAME, SHEETS_API_KEY and DATABASE_URL must be set")
	}

	ctx := context.Background()

	rows, err := fetchSheetRows(ctx, spreadsheetID, sheetName, apiKey)
	if err != nil {
		log.Fatalf("Failed to fetch sheet data: %v", err)
	}
	if len(rows) == 0 {
		log.Println("No rows to import")
		return
	}

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		log.Fatalf("Failed to open DB: %v", err)
	}
	defer db.Close()
	if err := db.PingContext(ctx); err != nil {
		log.Fatalf("Failed to ping DB: %v", err)
	}

	imported, err := importRows(ctx, db, rows)
	if err != nil {
		log.Fatalf("Import failed: %v", err)
	}
	log.Printf("Imported %d items", imported)
}

// fetchSheetRows reads the sheet and maps each data row through the
// lowercased header row. Expected headers: name, category, quantity and
// optionally price.
func fetchSheetRows(ctx context.Context, spreadsheetID, sheetName, apiKey string) ([]sheetRow, error) {
	svc, err := sheets.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, err
	}

	resp, err := svc.Spreadsheets.Values.Get(spreadsheetID, sheetName).Context(ctx).Do()
	if err != nil {
		return nil, err
	}
	if len(resp.Values) < 2 {
		return nil, nil
	}

	headers := make([]string, len(resp.Values[0]))
	for i, h := range resp.Values[0] {
		headers[i] = strings.ToLower(strings.TrimSpace(fmt.Sprint(h)))
	}

	var rows []sheetRow
	for _, raw := range resp.Values[1:] {
		fields := map[string]string{}
		for i, cell := range raw {
			if i < len(headers) && headers[i] != "" {
				fields[headers[i]] = strings.TrimSpace(fmt.Sprint(cell))
			}
		}

		name := fields["name"]
		if name == "" {
			log.Printf("Skipping row without a name: %v", raw)
			continue
		}

		quantity, err := strconv.Atoi(fields["quantity"])
		if err != nil || quantity < 0 {
			quantity = 0
		}
		price, err := strconv.ParseFloat(fields["price"], 64)
		if err != nil || price < 0 {
			price = 0
		}

		rows = append(rows, sheetRow{
			Name:     name,
			Category: fields["category"],
			Quantity: quantity,
			Price:    price,
		})
	}
	return rows, nil
}

// importRows clears the items table and inserts the sheet rows inside
// one transaction, so a failed import leaves the old catalog intact.
func importRows(ctx context.Context, db *sql.DB, rows []sheetRow) (int, error) {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS items (
			id INT AUTO_INCREMENT PRIMARY KEY,
			name TEXT NOT NULL,
			category TEXT NOT NULL,
			quantity INT NOT NULL DEFAULT 1,
			price DOUBLE NOT NULL DEFAULT 0
		)
	`)
	if err != nil {
		return 0, err
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM items`); err != nil {
		tx.Rollback()
		return 0, err
	}

	query := `INSERT INTO items (name, category, quantity, price) VALUES (?, ?, ?, ?)`
	for _, row := range rows {
		if _, err := tx.ExecContext(ctx, query, row.Name, row.Category, row.Quantity, row.Price); err != nil {
			tx.Rollback()
			return 0, err
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return len(rows), nil
}
