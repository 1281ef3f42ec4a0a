// Command seed fills the directory with realistic fake clinics and CRM
// contacts for local development and demos.
//
// Usage:
//
//	seed [-states tx,ca] [-clinics-per-state 50] [-contacts-per-clinic 3] [-reset] [-batch-size 100]
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"github.com/menshealthfinder/api/config"
	"github.com/menshealthfinder/api/ent/clinic"
	"github.com/menshealthfinder/api/ent/contact"
	"github.com/menshealthfinder/api/pkg/database"
	"github.com/menshealthfinder/api/pkg/testdata"
)

func main() {
	var (
		states            = flag.String("states", "", "Comma-separated states to seed (e.g. tx,ca). Empty = every state with city data")
		clinicsPerState   = flag.Int("clinics-per-state", 50, "Number of clinics to generate per state")
		contactsPerClinic = flag.Int("contacts-per-clinic", 3, "Number of CRM contacts to attach per clinic")
		reset             = flag.Bool("reset", false, "Delete all existing clinics and contacts before seeding")
		batchSize         = flag.Int("batch-size", 100, "Number of rows to insert per batch")
	)
	flag.Parse()

	var statesToSeed []string
	if *states == "" {
		for state := range testdata.CityData {
			statesToSeed = append(statesToSeed, state)
		}
		sort.Strings(statesToSeed)
	} else {
		for _, s := range strings.Split(*states, ",") {
			statesToSeed = append(statesToSeed, strings.ToUpper(strings.TrimSpace(s)))
		}
	}

	cfg := config.Load()
	db, err := database.NewClient(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("❌ Failed to connect to database: %v", err)
	}
	defer db.Close()

	client := db.Ent
	ctx := context.Background()

	if *reset {
		fmt.Println("⚠️  Resetting database (deleting all contacts and clinics)...")
		deletedContacts, err := client.Contact.Delete().Exec(ctx)
		if err != nil {
			log.Fatalf("Failed to delete contacts: %v", err)
		}
		deletedClinics, err := client.Clinic.Delete().Exec(ctx)
		if err != nil {
			log.Fatalf("Failed to delete clinics: %v", err)
		}
		fmt.Printf("✅ Deleted %d contacts and %d clinics\n\n", deletedContacts, deletedClinics)
	}

	fmt.Printf("🌱 Seeding %d clinics across %d states...\n", *clinicsPerState*len(statesToSeed), len(statesToSeed))

	totalClinics := 0
	totalContacts := 0
	for _, state := range statesToSeed {
		if _, ok := testdata.CityData[state]; !ok {
			fmt.Printf("⚠️  No city data for state: %s (skipping)\n", state)
			continue
		}

		fmt.Printf("\n📊 Seeding %s: %d clinics\n", state, *clinicsPerState)
		start := time.Now()

		creates := testdata.GenerateClinicsForState(client, state, *clinicsPerState)
		clinicIDs, err := testdata.BulkInsertClinics(ctx, client, creates, *batchSize)
		if err != nil {
			log.Printf("❌ Failed to seed %s clinics: %v", state, err)
			continue
		}
		totalClinics += len(clinicIDs)

		contactCreates := testdata.GenerateContactsForClinics(client, clinicIDs, *contactsPerClinic)
		if err := testdata.BulkInsertContacts(ctx, client, contactCreates, *batchSize); err != nil {
			log.Printf("❌ Failed to seed %s contacts: %v", state, err)
			continue
		}
		totalContacts += len(contactCreates)

		duration := time.Since(start)
		fmt.Printf("✅ Completed in %s (%.0f clinics/sec)\n",
			duration.Round(time.Millisecond),
			float64(len(clinicIDs))/duration.Seconds())
	}

	fmt.Println("\n" + strings.Repeat("=", 60))
	fmt.Println("📈 SEEDING SUMMARY")
	fmt.Println(strings.Repeat("=", 60))

	for _, state := range statesToSeed {
		count, err := client.Clinic.Query().
			Where(clinic.StateEQ(state)).
			Count(ctx)
		if err != nil {
			log.Printf("Failed to count %s clinics: %v", state, err)
			continue
		}
		fmt.Printf("%-3s: %4d clinics\n", state, count)
	}

	clinicCount, _ := client.Clinic.Query().Count(ctx)
	contactCount, _ := client.Contact.Query().Count(ctx)
	fmt.Println(strings.Repeat("-", 60))
	fmt.Printf("TOTAL: %d clinics, %d contacts (this run: %d / %d)\n",
		clinicCount, contactCount, totalClinics, totalContacts)

	fmt.Println("\n🪜 Pipeline Distribution:")
	stages := []contact.Stage{
		contact.StageNew, contact.StageContacted, contact.StageQualified,
		contact.StageProposal, contact.StageNegotiation,
		contact.StageClosedWon, contact.StageClosedLost, contact.StageNurturing,
	}
	for _, stage := range stages {
		count, err := client.Contact.Query().
			Where(contact.StageEQ(stage)).
			Count(ctx)
		if err != nil || count == 0 {
			continue
		}
		fmt.Printf("%-12s: %4d contacts\n", stage, count)
	}

	fmt.Println("\n📧 Data Completeness:")
	withPhone, _ := client.Clinic.Query().Where(clinic.PhoneNotNil()).Count(ctx)
	withEmail, _ := client.Clinic.Query().Where(clinic.EmailNotNil()).Count(ctx)
	withWebsite, _ := client.Clinic.Query().Where(clinic.WebsiteNotNil()).Count(ctx)
	if clinicCount > 0 {
		fmt.Printf("Phone:   %4d clinics (%.1f%%)\n", withPhone, float64(withPhone)/float64(clinicCount)*100)
		fmt.Printf("Email:   %4d clinics (%.1f%%)\n", withEmail, float64(withEmail)/float64(clinicCount)*100)
		fmt.Printf("Website: %4d clinics (%.1f%%)\n", withWebsite, float64(withWebsite)/float64(clinicCount)*100)
	}

	fmt.Println(strings.Repeat("=", 60))
	fmt.Println("✅ Seeding completed successfully!")
}
