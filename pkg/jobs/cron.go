package jobs

import (
	"context"
	"log"
	"time"

	"github.com/menshealthfinder/api/pkg/engagement"
	"github.com/menshealthfinder/api/pkg/followup"
	"github.com/menshealthfinder/api/pkg/session"
	"github.com/menshealthfinder/api/pkg/sitemap"
	"github.com/robfig/cron/v3"
)

// CronManager manages scheduled jobs
type CronManager struct {
	cron       *cron.Cron
	engagement *engagement.Service
	followup   *followup.Service
	sessions   *session.Service
	sitemap    *sitemap.Generator
	logger     *log.Logger
}

// NewCronManager creates a new cron manager
func NewCronManager(engagementSvc *engagement.Service, followupSvc *followup.Service, sessionSvc *session.Service, sitemapGen *sitemap.Generator, logger *log.Logger) *CronManager {
	if logger == nil {
		logger = log.Default()
	}

	return &CronManager{
		cron:       cron.New(),
		engagement: engagementSvc,
		followup:   followupSvc,
		sessions:   sessionSvc,
		sitemap:    sitemapGen,
		logger:     logger,
	}
}

// SetupJobs configures all scheduled jobs
func (cm *CronManager) SetupJobs() error {
	cm.logger.Println("Setting up cron jobs...")

	// Daily at 2 AM: recompute engagement metrics for every listing
	_, err := cm.cron.AddFunc("0 2 * * *", func() {
		cm.logger.Println("🕐 Running nightly engagement recompute...")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
		defer cancel()

		updated, err := cm.engagement.RecomputeAll(ctx)
		if err != nil {
			cm.logger.Printf("❌ Engagement recompute failed: %v", err)
			return
		}

		cm.logger.Printf("✅ Engagement recompute completed (%d listings updated)", updated)
	})

	if err != nil {
		return err
	}

	// Daily at 3 AM: run the follow-up rule engine over active contacts
	_, err = cm.cron.AddFunc("0 3 * * *", func() {
		cm.logger.Println("🕐 Running daily follow-up evaluation...")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
		defer cancel()

		result, err := cm.followup.EvaluateAllContacts(ctx)
		if err != nil {
			cm.logger.Printf("❌ Follow-up evaluation failed: %v", err)
			return
		}

		if result.ContactsFailed > 0 {
			cm.logger.Printf("⚠️ Follow-up evaluation completed with errors (%d contacts failed)", result.ContactsFailed)
		}

		cm.logger.Printf("✅ Follow-up evaluation completed (%d contacts, %d tasks created)", result.ContactsEvaluated, result.TasksCreated)
	})

	if err != nil {
		return err
	}

	// Hourly: flush expired lead sessions to the database
	_, err = cm.cron.AddFunc("0 * * * *", func() {
		cm.logger.Println("🕐 Sweeping expired lead sessions...")

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()

		flushed, err := cm.sessions.SweepExpired(ctx)
		if err != nil {
			cm.logger.Printf("❌ Session sweep failed: %v", err)
			return
		}

		if flushed > 0 {
			cm.logger.Printf("✅ Session sweep completed (%d sessions flushed)", flushed)
		}
	})

	if err != nil {
		return err
	}

	// Daily at 4 AM: regenerate the sitemap from active listings
	_, err = cm.cron.AddFunc("0 4 * * *", func() {
		cm.logger.Println("🕐 Regenerating sitemap...")

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()

		urls, err := cm.sitemap.Regenerate(ctx)
		if err != nil {
			cm.logger.Printf("❌ Sitemap regeneration failed: %v", err)
			return
		}

		cm.logger.Printf("✅ Sitemap regenerated (%d URLs)", urls)
	})

	if err != nil {
		return err
	}

	cm.logger.Println("✅ Cron jobs configured successfully")
	cm.logger.Println("  - Daily at 2 AM: Recompute engagement metrics")
	cm.logger.Println("  - Daily at 3 AM: Evaluate follow-up rules")
	cm.logger.Println("  - Hourly: Sweep expired lead sessions")
	cm.logger.Println("  - Daily at 4 AM: Regenerate sitemap")

	return nil
}

// Start starts the cron scheduler
func (cm *CronManager) Start() {
	cm.logger.Println("🚀 Starting cron scheduler...")
	cm.cron.Start()
}

// Stop stops the cron scheduler
func (cm *CronManager) Stop() {
	cm.logger.Println("🛑 Stopping cron scheduler...")
	cm.cron.Stop()
}
