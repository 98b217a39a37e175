// Package sync runs the per-site export pipeline: sequencing buckets,
// deciding what to fetch, fetching with retry, reconciling the response
// schema and persisting per-bucket files. Failures are isolated at bucket
// granularity so one bad period never aborts the whole export.
package sync

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"solarsync/internal/api"
	"solarsync/internal/buckets"
	"solarsync/internal/config"
	"solarsync/internal/models"
	"solarsync/internal/reconcile"
	"solarsync/internal/retry"
	"solarsync/internal/store"
	"solarsync/internal/tzdb"
)

// Client is the slice of the remote API the orchestrator consumes.
type Client interface {
	SiteConfig(ctx context.Context, siteID int64) (*models.SiteConfig, error)
	CalendarHistory(ctx context.Context, q api.HistoryQuery) ([]models.Record, error)
}

// kindDef binds a data kind to its bucket granularity and failure policy.
type kindDef struct {
	kind       models.Kind
	unit       buckets.Unit
	period     string
	derive     bool // compute load_power
	bestEffort bool // empty responses skip instead of fail
}

// Kinds are processed in this order. State of charge is best-effort: not
// every site reports it.
var kindDefs = []kindDef{
	{kind: models.KindEnergy, unit: buckets.Month, period: "month"},
	{kind: models.KindPower, unit: buckets.Day, period: "day", derive: true},
	{kind: models.KindSoe, unit: buckets.Day, period: "day", bestEffort: true},
}

// Result summarizes one site run.
type Result struct {
	Skipped int
	Fetched int
	Failed  int
}

type outcomeState int

const (
	outcomeSkipped outcomeState = iota
	outcomeFetched
	outcomeFailed
)

// outcome is the explicit per-bucket result consumed by the run loop;
// errors are data, not control flow.
type outcome struct {
	state outcomeState
	err   error
}

type Syncer struct {
	client Client
	store  *store.Store
	cfg    *config.Config
	log    *zap.Logger

	// replaceable for tests
	sleep func(time.Duration)
}

func New(client Client, st *store.Store, cfg *config.Config, logger *zap.Logger) *Syncer {
	return &Syncer{
		client: client,
		store:  st,
		cfg:    cfg,
		log:    logger,
		sleep:  time.Sleep,
	}
}

// Run exports all kinds for one site, walking each kind's bucket sequence
// from now back to the installation boundary. now is captured once by the
// caller so all bucket boundaries within the run agree. The returned error
// is non-nil only for site-fatal conditions (config lookup, auth); bucket
// failures are counted in the result instead.
func (s *Syncer) Run(ctx context.Context, now time.Time, site models.Product) (Result, error) {
	var res Result

	siteCfg, err := s.client.SiteConfig(ctx, site.EnergySiteID)
	if err != nil {
		return res, fmt.Errorf("fetching site config: %w", err)
	}

	loc, err := tzdb.FromConfig(siteCfg.InstallationTimeZone, siteCfg.InstallationDate)
	if err != nil {
		return res, fmt.Errorf("resolving timezone: %w", err)
	}

	log := s.log.With(zap.Int64("site", site.EnergySiteID))
	log.Debug("site resolved",
		zap.String("timezone", loc.String()),
		zap.Time("installation", siteCfg.InstallationDate),
		zap.Time("now", now.In(loc)))

	for _, kd := range kindDefs {
		removed, err := s.store.CleanupPartials(site.EnergySiteID, kd.kind)
		if err != nil {
			log.Warn("partial cleanup failed",
				zap.String("kind", string(kd.kind)), zap.Error(err))
		} else if removed > 0 {
			log.Debug("removed stale partial files",
				zap.String("kind", string(kd.kind)), zap.Int("count", removed))
		}

		seq := buckets.New(kd.unit, now, siteCfg.InstallationDate, loc)
		for {
			b, ok := seq.Next()
			if !ok {
				break
			}

			if s.store.Decide(site.EnergySiteID, kd.kind, b) == store.Skip {
				res.Skipped++
				continue
			}

			log.Info("fetching bucket",
				zap.String("kind", string(kd.kind)),
				zap.String("bucket", b.Label),
				zap.Bool("partial", b.Partial))

			out := s.processBucket(ctx, site.EnergySiteID, kd, b, loc)
			switch out.state {
			case outcomeFetched:
				res.Fetched++
			case outcomeSkipped:
				res.Skipped++
				log.Debug("bucket skipped",
					zap.String("kind", string(kd.kind)),
					zap.String("bucket", b.Label))
			case outcomeFailed:
				if api.IsFatal(out.err) {
					return res, fmt.Errorf("bucket %s/%s: %w", kd.kind, b.Label, out.err)
				}
				res.Failed++
				log.Error("bucket failed",
					zap.String("kind", string(kd.kind)),
					zap.String("bucket", b.Label),
					zap.Bool("partial", b.Partial),
					zap.Error(out.err))
			}
		}
	}

	log.Info("site done",
		zap.Int("fetched", res.Fetched),
		zap.Int("skipped", res.Skipped),
		zap.Int("failed", res.Failed))
	return res, nil
}

// processBucket runs fetch → reconcile → write for one bucket and reports
// the outcome. It never touches other buckets' files.
func (s *Syncer) processBucket(ctx context.Context, siteID int64, kd kindDef, b buckets.Bucket, loc *time.Location) outcome {
	var records []models.Record

	retryCfg := retry.Config{
		Attempts:  s.cfg.Export.RetryAttempts,
		Delay:     s.cfg.RetryDelay(),
		Permanent: api.IsFatal,
	}
	operation := fmt.Sprintf("%s/%s", kd.kind, b.Label)

	err := retry.Do(s.log, operation, retryCfg, func() error {
		var fetchErr error
		records, fetchErr = s.client.CalendarHistory(ctx, api.HistoryQuery{
			SiteID:   siteID,
			Kind:     kd.kind,
			Period:   kd.period,
			Start:    b.Start,
			End:      b.End,
			TimeZone: loc.String(),
		})
		// Courtesy delay after every attempt: the remote is rate-limited.
		s.sleep(s.cfg.RequestDelay())
		return fetchErr
	})
	if err != nil {
		if kd.bestEffort && errors.Is(err, api.ErrNoTimeSeries) {
			return outcome{state: outcomeSkipped}
		}
		return outcome{state: outcomeFailed, err: err}
	}

	if len(records) == 0 {
		if kd.bestEffort {
			return outcome{state: outcomeSkipped}
		}
		return outcome{state: outcomeFailed, err: api.ErrNoTimeSeries}
	}

	table, err := reconcile.Reconcile(records, reconcile.Options{
		Excluded:        s.cfg.Export.ExcludedColumns,
		DeriveLoadPower: kd.derive,
		Location:        loc,
	})
	if err != nil {
		return outcome{state: outcomeFailed, err: fmt.Errorf("reconciling: %w", err)}
	}

	if _, err := s.store.WriteBucket(siteID, kd.kind, b, table); err != nil {
		return outcome{state: outcomeFailed, err: fmt.Errorf("writing: %w", err)}
	}
	return outcome{state: outcomeFetched}
}
