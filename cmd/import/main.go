// Command import bulk-loads clinics from a CSV or JSON file.
//
// Usage:
//
//	import -file clinics.csv [-format csv|json] [-dry-run] [-merge]
//
// Required CSV columns: name, city, state. Optional: address, postal_code,
// phone, email, website, latitude, longitude, place_id, services (pipe
// separated), tier. JSON input is an array of objects with the same fields.
// Exits 0 when every row imported, 1 otherwise.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/menshealthfinder/api/config"
	"github.com/menshealthfinder/api/pkg/database"
	"github.com/menshealthfinder/api/pkg/importer"
)

func main() {
	var (
		file    = flag.String("file", "", "path to the CSV or JSON input file (required)")
		format  = flag.String("format", "", "input format: csv or json (default: by file extension)")
		dryRun  = flag.Bool("dry-run", false, "validate and report without writing anything")
		merge   = flag.Bool("merge", false, "update existing clinics on slug/place_id match")
		maxRows = flag.Int("max-rows", 10000, "maximum rows to process (0 = unlimited)")
	)
	flag.Parse()

	if *file == "" {
		flag.Usage()
		os.Exit(1)
	}

	inputFormat := *format
	if inputFormat == "" {
		switch strings.ToLower(filepath.Ext(*file)) {
		case ".json":
			inputFormat = "json"
		default:
			inputFormat = "csv"
		}
	}
	if inputFormat != "csv" && inputFormat != "json" {
		log.Fatalf("❌ Unknown format: %s", inputFormat)
	}

	cfg := config.Load()
	db, err := database.NewClient(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("❌ Failed to connect to database: %v", err)
	}
	defer db.Close()

	input, err := os.Open(*file)
	if err != nil {
		log.Fatalf("❌ Failed to open input file: %v", err)
	}
	defer input.Close()

	opts := importer.DefaultOptions()
	opts.DryRun = *dryRun
	opts.Merge = *merge
	opts.MaxRows = *maxRows

	service := importer.NewService(db.Ent)
	ctx := context.Background()

	var result *importer.Result
	if inputFormat == "json" {
		result, err = service.ImportJSON(ctx, input, opts)
	} else {
		result, err = service.ImportCSV(ctx, input, opts)
	}
	if err != nil {
		log.Fatalf("❌ Import failed: %v", err)
	}

	printSummary(result)
	if result.FailureCount > 0 {
		os.Exit(1)
	}
}

func printSummary(result *importer.Result) {
	mode := "import"
	if result.DryRun {
		mode = "dry run"
	}
	log.Printf("📊 %s summary: %d rows, %d created, %d updated, %d failed (%s)",
		mode, result.TotalRows, result.Created, result.Updated, result.FailureCount, result.Duration)

	if len(result.Errors) > 0 {
		detail, _ := json.MarshalIndent(result.Errors, "", "  ")
		log.Printf("⚠️  Row errors:\n%s", detail)
	}
}
