package services

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// SweeperService periodically removes expired session rows. Verification
// codes are left alone: they expire lazily at verification time and stay
// on disk for audit.
type SweeperService struct {
	cron     *cron.Cron
	sessions *SessionService
}

// NewSweeperService creates a new sweeper service
func NewSweeperService(sessions *SessionService) *SweeperService {
	return &SweeperService{
		cron:     cron.New(),
		sessions: sessions,
	}
}

// Start schedules the hourly session sweep
func (s *SweeperService) Start() {
	s.cron.AddFunc("@hourly", s.sweepSessions)
	s.cron.Start()
	log.Println("🚀 Session sweeper started (hourly)")
}

// Stop stops the scheduler, waiting for a running sweep to finish
func (s *SweeperService) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	log.Println("🛑 Session sweeper stopped")
}

func (s *SweeperService) sweepSessions() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	purged, err := s.sessions.PurgeExpired(ctx)
	if err != nil {
		log.Printf("⚠️ Session sweep failed: %v", err)
		return
	}
	if purged > 0 {
		log.Printf("🧹 Session sweep removed %d expired sessions", purged)
	}
}
