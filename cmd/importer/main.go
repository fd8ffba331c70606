package main

import (
	"context"
	"encoding/csv"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"foodtrucks-api/internal/config"
	"foodtrucks-api/internal/models"

	"github.com/jackc/pgx/v5"
)

// Column headers of the SF Mobile Food Facility Permit CSV export that the
// importer consumes. The dataset ships 29 columns; the rest are ignored.
var requiredColumns = []string{
	"locationid", "Applicant", "FacilityType", "cnn", "Address",
	"Status", "FoodItems", "Latitude", "Longitude", "Approved",
	"ExpirationDate", "Location",
}

var dateLayouts = []string{
	"01/02/2006 03:04:05 PM",
	"01/02/2006",
}

func main() {
	file := flag.String("file", "", "Path to the CSV file to import")
	flag.Parse()

	if *file == "" {
		fmt.Println("Error: --file flag is required")
		os.Exit(1)
	}

	fmt.Printf("Starting import from file: %s\n", *file)

	records, err := parseCSV(*file)
	if err != nil {
		fmt.Printf("Error parsing CSV: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Parsed %d records\n", len(records))

	// Load config
	cfg, err := config.LoadConfig("configs")
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Connect to DB
	conn, err := pgx.Connect(context.Background(), cfg.DBSource)
	if err != nil {
		fmt.Printf("Error connecting to database: %v\n", err)
		os.Exit(1)
	}
	defer conn.Close(context.Background())

	// Ensure table exists
	err = createTableIfNotExists(conn)
	if err != nil {
		fmt.Printf("Error creating table: %v\n", err)
		os.Exit(1)
	}

	// Insert records
	err = insertRecords(conn, records)
	if err != nil {
		fmt.Printf("Error inserting records: %v\n", err)
		os.Exit(1)
	}

	// Verify data
	err = verifyImport(conn, len(records))
	if err != nil {
		fmt.Printf("Error verifying import: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Successfully imported %d records\n", len(records))
}

func parseCSV(filePath string) ([]models.FacilityRecord, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1 // Allow variable number of fields

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	columns, err := mapColumns(header)
	if err != nil {
		return nil, err
	}

	var records []models.FacilityRecord
	for {
		row, err := reader.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("failed to read record: %w", err)
		}

		field := func(name string) string {
			idx := columns[name]
			if idx >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[idx])
		}

		locationID, err := strconv.ParseInt(field("locationid"), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid locationid: %q", field("locationid"))
		}

		record := models.FacilityRecord{
			LocationID:     locationID,
			Applicant:      field("Applicant"),
			FacilityType:   field("FacilityType"),
			Cnn:            field("cnn"),
			Address:        field("Address"),
			Status:         field("Status"),
			FoodItems:      field("FoodItems"),
			Approved:       parseDate(field("Approved")),
			ExpirationDate: parseDate(field("ExpirationDate")),
			Location:       field("Location"),
		}
		record.Latitude, record.Longitude = parseCoordinates(field("Latitude"), field("Longitude"))

		records = append(records, record)
	}

	return records, nil
}

func mapColumns(header []string) (map[string]int, error) {
	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.TrimSpace(name)] = i
	}
	for _, name := range requiredColumns {
		if _, ok := columns[name]; !ok {
			return nil, fmt.Errorf("missing required column: %q", name)
		}
	}
	return columns, nil
}

// parseCoordinates turns the raw latitude/longitude fields into an optional
// coordinate pair. The dataset encodes rows the city never geocoded as 0,0;
// those become NULL, as do unparsable and out-of-range values. Rows without
// coordinates are kept — they stay reachable through name and street search
// and are only excluded from proximity ranking.
func parseCoordinates(latStr, lonStr string) (*float64, *float64) {
	lat, latErr := strconv.ParseFloat(latStr, 64)
	lon, lonErr := strconv.ParseFloat(lonStr, 64)

	if latErr != nil || lonErr != nil {
		return nil, nil
	}
	if lat == 0 && lon == 0 {
		return nil, nil
	}
	if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		return nil, nil
	}

	return &lat, &lon
}

func parseDate(value string) *time.Time {
	if value == "" {
		return nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return &t
		}
	}
	return nil
}

func createTableIfNotExists(conn *pgx.Conn) error {
	query := `
	CREATE TABLE IF NOT EXISTS food_facilities (
		locationid BIGINT PRIMARY KEY,
		applicant TEXT,
		facility_type TEXT,
		cnn TEXT,
		address TEXT,
		status TEXT,
		food_items TEXT,
		latitude DOUBLE PRECISION,
		longitude DOUBLE PRECISION,
		approved TIMESTAMPTZ,
		expiration_date TIMESTAMPTZ,
		location TEXT
	);
	CREATE INDEX IF NOT EXISTS food_facilities_applicant_idx ON food_facilities (LOWER(applicant));
	CREATE INDEX IF NOT EXISTS food_facilities_address_idx ON food_facilities (LOWER(address));
	CREATE INDEX IF NOT EXISTS food_facilities_status_idx ON food_facilities (LOWER(status));
	`
	_, err := conn.Exec(context.Background(), query)
	return err
}

func insertRecords(conn *pgx.Conn, records []models.FacilityRecord) error {
	// Use CopyFrom for bulk insert
	_, err := conn.CopyFrom(
		context.Background(),
		pgx.Identifier{"food_facilities"},
		[]string{
			"locationid", "applicant", "facility_type", "cnn", "address",
			"status", "food_items", "latitude", "longitude", "approved",
			"expiration_date", "location",
		},
		pgx.CopyFromSlice(len(records), func(i int) ([]interface{}, error) {
			r := records[i]
			return []interface{}{
				r.LocationID, r.Applicant, r.FacilityType, r.Cnn, r.Address,
				r.Status, r.FoodItems, r.Latitude, r.Longitude, r.Approved,
				r.ExpirationDate, r.Location,
			}, nil
		}),
	)
	return err
}

func verifyImport(conn *pgx.Conn, expectedCount int) error {
	var count int
	err := conn.QueryRow(context.Background(), "SELECT COUNT(*) FROM food_facilities").Scan(&count)
	if err != nil {
		return fmt.Errorf("failed to count records: %w", err)
	}

	if count != expectedCount {
		return fmt.Errorf("record count mismatch: expected %d, got %d", expectedCount, count)
	}

	var geocoded int
	err = conn.QueryRow(context.Background(),
		"SELECT COUNT(*) FROM food_facilities WHERE latitude IS NOT NULL AND longitude IS NOT NULL").Scan(&geocoded)
	if err != nil {
		return fmt.Errorf("failed to count geocoded records: %w", err)
	}

	fmt.Printf("Geocoded records: %d of %d\n", geocoded, count)
	return nil
}
