// Package importer handles bulk clinic imports from CSV and JSON files.
// Both the import CLI and the admin import endpoint run through it.
package importer

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/menshealthfinder/api/ent"
	"github.com/menshealthfinder/api/ent/clinic"
	"github.com/menshealthfinder/api/pkg/clinics"
	"github.com/menshealthfinder/api/pkg/phone"
)

// Service handles bulk import of clinics
type Service struct {
	client *ent.Client
}

// NewService creates a new import service
func NewService(client *ent.Client) *Service {
	return &Service{client: client}
}

// Options holds configuration for an import run
type Options struct {
	DryRun    bool // Validate and report without writing anything
	Merge     bool // Update existing clinics on slug/place_id match
	MaxRows   int  // Maximum rows to process (0 = unlimited)
	BatchSize int  // Rows per transaction
}

// DefaultOptions returns the default import configuration
func DefaultOptions() Options {
	return Options{
		MaxRows:   10000,
		BatchSize: 100,
	}
}

// Result holds the outcome of an import run
type Result struct {
	TotalRows    int        `json:"total_rows"`
	Created      int        `json:"created"`
	Updated      int        `json:"updated"`
	FailureCount int        `json:"failure_count"`
	Errors       []RowError `json:"errors,omitempty"`
	DryRun       bool       `json:"dry_run"`
	Duration     string     `json:"duration"`
}

// RowError represents a single failed row
type RowError struct {
	Row     int    `json:"row"`
	Field   string `json:"field,omitempty"`
	Value   string `json:"value,omitempty"`
	Message string `json:"message"`
}

// Record is one clinic row from an input file.
type Record struct {
	Name       string   `json:"name"`
	City       string   `json:"city"`
	State      string   `json:"state"`
	Address    string   `json:"address,omitempty"`
	PostalCode string   `json:"postal_code,omitempty"`
	Phone      string   `json:"phone,omitempty"`
	Email      string   `json:"email,omitempty"`
	Website    string   `json:"website,omitempty"`
	Latitude   float64  `json:"latitude,omitempty"`
	Longitude  float64  `json:"longitude,omitempty"`
	PlaceID    string   `json:"place_id,omitempty"`
	Services   []string `json:"services,omitempty"`
	Tier       string   `json:"tier,omitempty"`
}

// requiredColumns are the CSV columns every import file must carry.
var requiredColumns = []string{"name", "city", "state"}

// optionalColumns are recognized but not required.
var optionalColumns = []string{
	"address", "postal_code", "phone", "email", "website",
	"latitude", "longitude", "place_id", "services", "tier",
}

// ImportCSV imports clinics from a CSV reader. The first row must be a
// header naming at least the required columns.
func (s *Service) ImportCSV(ctx context.Context, r io.Reader, opts Options) (*Result, error) {
	start := time.Now()
	result := &Result{DryRun: opts.DryRun}

	csvReader := csv.NewReader(r)
	csvReader.TrimLeadingSpace = true
	csvReader.FieldsPerRecord = -1

	headers, err := csvReader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	headerMap := make(map[string]int)
	for i, header := range headers {
		headerMap[strings.ToLower(strings.TrimSpace(header))] = i
	}
	for _, column := range requiredColumns {
		if _, ok := headerMap[column]; !ok {
			return nil, fmt.Errorf("missing required column: %s", column)
		}
	}

	log.Printf("✅ CSV headers validated: %v", headers)

	var records []Record
	var rowErrors []RowError
	rowNum := 1
	for {
		if opts.MaxRows > 0 && rowNum > opts.MaxRows {
			log.Printf("⚠️  Reached max rows limit: %d", opts.MaxRows)
			break
		}

		row, err := csvReader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			rowErrors = append(rowErrors, RowError{
				Row:     rowNum,
				Message: fmt.Sprintf("CSV read error: %v", err),
			})
			result.TotalRows++
			rowNum++
			continue
		}

		records = append(records, parseCSVRow(row, headerMap))
		result.TotalRows++
		rowNum++
	}

	s.importRecords(ctx, records, rowErrors, opts, result)
	result.Duration = time.Since(start).String()

	log.Printf("✅ Import completed: %d created, %d updated, %d failures in %s",
		result.Created, result.Updated, result.FailureCount, result.Duration)
	return result, nil
}

// ImportJSON imports clinics from a JSON array of records.
func (s *Service) ImportJSON(ctx context.Context, r io.Reader, opts Options) (*Result, error) {
	start := time.Now()
	result := &Result{DryRun: opts.DryRun}

	var records []Record
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("failed to decode JSON input: %w", err)
	}
	if opts.MaxRows > 0 && len(records) > opts.MaxRows {
		log.Printf("⚠️  Reached max rows limit: %d", opts.MaxRows)
		records = records[:opts.MaxRows]
	}
	result.TotalRows = len(records)

	s.importRecords(ctx, records, nil, opts, result)
	result.Duration = time.Since(start).String()

	log.Printf("✅ Import completed: %d created, %d updated, %d failures in %s",
		result.Created, result.Updated, result.FailureCount, result.Duration)
	return result, nil
}

func (s *Service) importRecords(ctx context.Context, records []Record, rowErrors []RowError, opts Options, result *Result) {
	result.Errors = rowErrors
	result.FailureCount = len(rowErrors)

	if opts.BatchSize == 0 {
		opts.BatchSize = DefaultOptions().BatchSize
	}

	for offset := 0; offset < len(records); offset += opts.BatchSize {
		end := offset + opts.BatchSize
		if end > len(records) {
			end = len(records)
		}
		s.processBatch(ctx, records[offset:end], offset+1, opts, result)
	}
}

// processBatch validates and writes one batch inside a transaction. Dry runs
// go through the same validation but never open a transaction.
func (s *Service) processBatch(ctx context.Context, batch []Record, startRow int, opts Options, result *Result) {
	var tx *ent.Tx
	if !opts.DryRun {
		var err error
		tx, err = s.client.Tx(ctx)
		if err != nil {
			for i := range batch {
				result.Errors = append(result.Errors, RowError{
					Row:     startRow + i,
					Message: fmt.Sprintf("failed to start transaction: %v", err),
				})
				result.FailureCount++
			}
			return
		}
	}

	for i, record := range batch {
		rowNum := startRow + i
		if rowErr := validateRecord(record, rowNum); rowErr != nil {
			result.Errors = append(result.Errors, *rowErr)
			result.FailureCount++
			continue
		}

		if opts.DryRun {
			// Dry runs count what would happen without writing.
			existing, err := s.findExisting(ctx, s.client, record)
			if err != nil {
				result.Errors = append(result.Errors, RowError{Row: rowNum, Message: err.Error()})
				result.FailureCount++
				continue
			}
			if existing != nil && opts.Merge {
				result.Updated++
			} else {
				result.Created++
			}
			continue
		}

		created, err := s.importRecord(ctx, tx, record, opts)
		if err != nil {
			result.Errors = append(result.Errors, RowError{Row: rowNum, Message: err.Error()})
			result.FailureCount++
			continue
		}
		if created {
			result.Created++
		} else {
			result.Updated++
		}
	}

	if tx != nil {
		if err := tx.Commit(); err != nil {
			log.Printf("⚠️  Batch commit error: %v", err)
		}
	}
}

// importRecord writes one record. Reports true when a new clinic was created,
// false when merge mode updated an existing one.
func (s *Service) importRecord(ctx context.Context, tx *ent.Tx, record Record, opts Options) (bool, error) {
	existing, err := s.findExisting(ctx, tx.Client(), record)
	if err != nil {
		return false, err
	}

	if existing != nil && opts.Merge {
		builder := tx.Clinic.UpdateOne(existing)
		applyRecordUpdate(builder, record)
		if err := builder.Exec(ctx); err != nil {
			return false, fmt.Errorf("failed to update clinic: %v", err)
		}
		return false, nil
	}

	slug, err := uniqueSlugTx(ctx, tx, clinics.Slugify(record.Name, record.City))
	if err != nil {
		return false, err
	}

	tier := clinic.TierFree
	if record.Tier != "" {
		tier = clinic.Tier(record.Tier)
	}

	builder := tx.Clinic.Create().
		SetName(record.Name).
		SetSlug(slug).
		SetCity(record.City).
		SetState(strings.ToUpper(record.State)).
		SetTier(tier).
		SetFeatures(clinics.FeaturesForTier(tier))
	applyRecordCreate(builder, record)

	if err := builder.Exec(ctx); err != nil {
		return false, fmt.Errorf("failed to create clinic: %v", err)
	}
	return true, nil
}

// findExisting matches by place_id first, then by derived slug.
func (s *Service) findExisting(ctx context.Context, client *ent.Client, record Record) (*ent.Clinic, error) {
	if record.PlaceID != "" {
		row, err := client.Clinic.Query().
			Where(clinic.PlaceID(record.PlaceID)).
			First(ctx)
		if err == nil {
			return row, nil
		}
		if !ent.IsNotFound(err) {
			return nil, fmt.Errorf("failed to match by place_id: %v", err)
		}
	}

	row, err := client.Clinic.Query().
		Where(clinic.Slug(clinics.Slugify(record.Name, record.City))).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to match by slug: %v", err)
	}
	return row, nil
}

func uniqueSlugTx(ctx context.Context, tx *ent.Tx, base string) (string, error) {
	slug := base
	for i := 2; ; i++ {
		exists, err := tx.Clinic.Query().Where(clinic.Slug(slug)).Exist(ctx)
		if err != nil {
			return "", fmt.Errorf("failed to check slug: %v", err)
		}
		if !exists {
			return slug, nil
		}
		slug = fmt.Sprintf("%s-%d", base, i)
	}
}

func applyRecordCreate(builder *ent.ClinicCreate, record Record) {
	if record.Address != "" {
		builder.SetAddress(record.Address)
	}
	if record.PostalCode != "" {
		builder.SetPostalCode(record.PostalCode)
	}
	if record.Phone != "" {
		builder.SetPhone(normalizePhone(record.Phone))
	}
	if record.Email != "" {
		builder.SetEmail(record.Email)
	}
	if record.Website != "" {
		builder.SetWebsite(record.Website)
	}
	if record.Latitude != 0 {
		builder.SetLatitude(record.Latitude)
	}
	if record.Longitude != 0 {
		builder.SetLongitude(record.Longitude)
	}
	if record.PlaceID != "" {
		builder.SetPlaceID(record.PlaceID)
	}
	if len(record.Services) > 0 {
		builder.SetServices(record.Services)
	}
}

func applyRecordUpdate(builder *ent.ClinicUpdateOne, record Record) {
	if record.Address != "" {
		builder.SetAddress(record.Address)
	}
	if record.PostalCode != "" {
		builder.SetPostalCode(record.PostalCode)
	}
	if record.Phone != "" {
		builder.SetPhone(normalizePhone(record.Phone))
	}
	if record.Email != "" {
		builder.SetEmail(record.Email)
	}
	if record.Website != "" {
		builder.SetWebsite(record.Website)
	}
	if record.Latitude != 0 {
		builder.SetLatitude(record.Latitude)
	}
	if record.Longitude != 0 {
		builder.SetLongitude(record.Longitude)
	}
	if record.PlaceID != "" {
		builder.SetPlaceID(record.PlaceID)
	}
	if len(record.Services) > 0 {
		builder.SetServices(record.Services)
	}
}

func normalizePhone(raw string) string {
	normalized, err := phone.Normalize(raw)
	if err != nil {
		return raw
	}
	return normalized
}

func parseCSVRow(row []string, headerMap map[string]int) Record {
	getField := func(name string) string {
		if idx, ok := headerMap[name]; ok && idx < len(row) {
			return strings.TrimSpace(row[idx])
		}
		return ""
	}

	record := Record{
		Name:       getField("name"),
		City:       getField("city"),
		State:      getField("state"),
		Address:    getField("address"),
		PostalCode: getField("postal_code"),
		Phone:      getField("phone"),
		Email:      getField("email"),
		Website:    getField("website"),
		PlaceID:    getField("place_id"),
		Tier:       getField("tier"),
	}
	if lat := getField("latitude"); lat != "" {
		record.Latitude, _ = strconv.ParseFloat(lat, 64)
	}
	if lng := getField("longitude"); lng != "" {
		record.Longitude, _ = strconv.ParseFloat(lng, 64)
	}
	if services := getField("services"); services != "" {
		for _, tag := range strings.Split(services, "|") {
			if tag = strings.TrimSpace(tag); tag != "" {
				record.Services = append(record.Services, tag)
			}
		}
	}
	return record
}

func validateRecord(record Record, rowNum int) *RowError {
	if record.Name == "" {
		return &RowError{Row: rowNum, Field: "name", Message: "name is required"}
	}
	if record.City == "" {
		return &RowError{Row: rowNum, Field: "city", Message: "city is required"}
	}
	if len(record.State) != 2 {
		return &RowError{
			Row:     rowNum,
			Field:   "state",
			Value:   record.State,
			Message: "state must be a two-letter code",
		}
	}
	if record.Tier != "" {
		switch clinic.Tier(record.Tier) {
		case clinic.TierFree, clinic.TierStandard, clinic.TierAdvanced:
		default:
			return &RowError{
				Row:     rowNum,
				Field:   "tier",
				Value:   record.Tier,
				Message: "invalid tier",
			}
		}
	}
	return nil
}
