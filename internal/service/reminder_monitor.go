package service

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/hydrobuddy/hydro-tracker/internal/domain"
	"github.com/hydrobuddy/hydro-tracker/internal/repository"
	"github.com/prometheus/client_golang/prometheus"
)

var reminderAlertsTotal = prometheus.NewCounter(
	prometheus.CounterOpts{
		Name: "reminder_alerts_total",
		Help: "Total number of hydration reminder alerts fired",
	},
)

func init() {
	prometheus.MustRegister(reminderAlertsTotal)
}

// ReminderMonitor watches the drink log for staleness. It runs a periodic
// check and fires an alert only on the quiet-to-alerting edge: once the
// alert has fired, the monitor stays silent until a new drink log re-arms it.
type ReminderMonitor struct {
	drinkLogRepo repository.DrinkLogRepository
	profileRepo  repository.ProfileRepository
	tick         time.Duration
	now          func() time.Time

	mu          sync.Mutex
	alerting    bool
	lastAlertAt time.Time
	alertCount  int64

	cancel context.CancelFunc
	done   chan struct{}
}

// NewReminderMonitor creates a monitor checking every tick.
func NewReminderMonitor(drinkLogRepo repository.DrinkLogRepository, profileRepo repository.ProfileRepository, tick time.Duration) *ReminderMonitor {
	return &ReminderMonitor{
		drinkLogRepo: drinkLogRepo,
		profileRepo:  profileRepo,
		tick:         tick,
		now:          time.Now,
	}
}

// Start launches the periodic check. It runs until Stop is called or the
// parent context is cancelled.
func (m *ReminderMonitor) Start(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	m.cancel = cancel
	m.done = make(chan struct{})

	go func() {
		defer close(m.done)
		ticker := time.NewTicker(m.tick)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if _, err := m.Check(ctx); err != nil {
					log.Printf("reminder check failed: %v", err)
				}
			}
		}
	}()
}

// Stop cancels the periodic check and waits for the loop to exit.
func (m *ReminderMonitor) Stop() {
	if m.cancel == nil {
		return
	}
	m.cancel()
	<-m.done
}

// Check runs one staleness evaluation. It returns true when this call fired
// an alert, i.e. on the quiet-to-alerting transition only. An empty log
// history counts as stale since the epoch, so a fresh install alerts after
// one interval.
func (m *ReminderMonitor) Check(ctx context.Context) (bool, error) {
	interval, err := m.reminderInterval(ctx)
	if err != nil {
		return false, err
	}

	lastLogAt, err := m.drinkLogRepo.LastLoggedAt(ctx)
	if err != nil {
		return false, err
	}

	now := m.now()
	stale := now.Sub(lastLogAt) > interval

	m.mu.Lock()
	defer m.mu.Unlock()

	if !stale {
		// A new drink log cleared the condition; re-arm for the next window.
		m.alerting = false
		return false, nil
	}

	if m.alerting {
		// Still stale but already alerted for this window.
		return false, nil
	}

	m.alerting = true
	m.lastAlertAt = now
	m.alertCount++
	reminderAlertsTotal.Inc()
	log.Printf("hydration reminder: no drinks logged for over %s", interval)

	return true, nil
}

// Status reports the monitor's current state for the reminder endpoint.
func (m *ReminderMonitor) Status(ctx context.Context) (*domain.ReminderStatusResponse, error) {
	interval, err := m.reminderInterval(ctx)
	if err != nil {
		return nil, err
	}

	lastLogAt, err := m.drinkLogRepo.LastLoggedAt(ctx)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	status := &domain.ReminderStatusResponse{
		State:           domain.ReminderQuiet,
		AlertCount:      m.alertCount,
		IntervalMinutes: int(interval / time.Minute),
	}
	if m.alerting {
		status.State = domain.ReminderAlerting
	}
	if !lastLogAt.IsZero() {
		t := lastLogAt
		status.LastLogAt = &t
	}
	if !m.lastAlertAt.IsZero() {
		t := m.lastAlertAt
		status.LastAlertAt = &t
	}

	return status, nil
}

func (m *ReminderMonitor) reminderInterval(ctx context.Context) (time.Duration, error) {
	profile, err := m.profileRepo.Get(ctx)
	if err != nil {
		if err == domain.ErrProfileNotFound {
			return domain.DefaultReminderMinutes * time.Minute, nil
		}
		return 0, err
	}
	return time.Duration(profile.ReminderMinutes) * time.Minute, nil
}
