package geolib

import (
	"errors"
	"fmt"
	"net"
	"sync"
	"time"

	"github.com/dgraph-io/ristretto"
	"github.com/panjf2000/ants/v2"
)

const (
	DefaultWorkerPoolSize = 4096

	DatabaseCity = "city"
	DatabaseASN  = "asn"

	workerPoolExpireTime = time.Minute
)

// ResolverOpts are optional parameters of Resolver. Zero value is a
// valid configuration: no logging, no metrics, no cache and a default
// size of the worker pool.
type ResolverOpts struct {
	Logger         Logger
	Metrics        *Metrics
	WorkerPoolSize int

	// CacheSize is a number of resolved records to keep in memory. 0
	// disables caching.
	CacheSize uint

	// CacheTTL is a time to live of a cached record. 0 means records
	// live until evicted.
	CacheTTL time.Duration
}

type Resolver struct {
	db         Database
	logger     Logger
	metrics    *Metrics
	cache      *ristretto.Cache
	cacheTTL   time.Duration
	cityStats  *UsageStats
	asnStats   *UsageStats
	workerPool *ants.PoolWithFunc
	closeOnce  sync.Once

	// closedLock is held for reading during the whole Resolve so
	// Shutdown never closes the cache under an in-flight lookup.
	closedLock sync.RWMutex
	closed     bool
}

// Resolve looks up a single IP address. An error is returned only if
// the city database has no record for this address. Problems with ASN
// database are not errors: ASN fields stay empty.
func (r *Resolver) Resolve(ip net.IP) (GeoRecord, error) {
	r.closedLock.RLock()
	defer r.closedLock.RUnlock()

	if r.closed {
		return GeoRecord{}, ErrResolverShutdown
	}

	if ip.To16() == nil {
		return GeoRecord{}, ErrInvalidIP
	}

	if r.cache == nil {
		return r.lookup(ip)
	}

	cacheKey := ip.String()

	if value, ok := r.cache.Get(cacheKey); ok {
		r.metrics.observeCache(true)

		return value.(GeoRecord).Copy(), nil
	}

	r.metrics.observeCache(false)

	rv, err := r.lookup(ip)
	if err != nil {
		return rv, err
	}

	r.cache.SetWithTTL(cacheKey, rv.Copy(), 1, r.cacheTTL)

	return rv, nil
}

// ResolveBatch resolves each identifier independently. Identifiers which
// are not IP addresses get ErrInvalidIP. If the same identifier is given
// several times, the outcome of its last occurrence is reported.
func (r *Resolver) ResolveBatch(identifiers []string) BatchResult {
	outcomes := make([]batchOutcome, len(identifiers))
	wg := &sync.WaitGroup{}

	for i, v := range identifiers {
		task := &batchTask{
			identifier: v,
			outcome:    &outcomes[i],
			wg:         wg,
		}

		wg.Add(1)

		if err := r.workerPool.Invoke(task); err != nil {
			r.resolveTask(task)
		}
	}

	wg.Wait()
	r.metrics.observeBatch(len(identifiers))

	return collectBatch(identifiers, outcomes)
}

func collectBatch(identifiers []string, outcomes []batchOutcome) BatchResult {
	rv := BatchResult{
		Results: make(map[string]GeoRecord, len(identifiers)),
		Errors:  map[string]string{},
	}

	for i, v := range identifiers {
		if err := outcomes[i].err; err != nil {
			delete(rv.Results, v)
			rv.Errors[v] = err.Error()
		} else {
			delete(rv.Errors, v)
			rv.Results[v] = outcomes[i].record
		}
	}

	return rv
}

// UsageStats returns statistics for city and ASN databases.
func (r *Resolver) UsageStats() []*UsageStats {
	return []*UsageStats{r.cityStats, r.asnStats}
}

// Shutdown waits for lookups in progress and releases resources.
// Subsequent lookups return ErrResolverShutdown.
func (r *Resolver) Shutdown() {
	r.closeOnce.Do(func() {
		r.closedLock.Lock()
		r.closed = true
		r.closedLock.Unlock()

		r.workerPool.Release()

		if r.cache != nil {
			r.cache.Close()
		}
	})
}

func (r *Resolver) lookup(ip net.IP) (GeoRecord, error) {
	cityRecord, err := r.db.LookupCity(ip)

	r.cityStats.Used(err)
	r.metrics.observeLookup(DatabaseCity, err)

	if err != nil {
		if !errors.Is(err, ErrAddressNotFound) {
			r.logger.LookupError(ip, DatabaseCity, err)
		}

		return GeoRecord{}, err
	}

	rv := ExtractGeo(cityRecord)

	if r.db.HasASN() {
		asnRecord, err := r.db.LookupASN(ip)

		r.asnStats.Used(err)
		r.metrics.observeLookup(DatabaseASN, err)

		if err != nil && !errors.Is(err, ErrAddressNotFound) {
			r.logger.LookupError(ip, DatabaseASN, err)
		}

		rv.ASN, rv.Organization = ExtractASN(asnRecord, err)
	}

	return rv, nil
}

func (r *Resolver) resolveTask(args interface{}) {
	task := args.(*batchTask)
	defer task.wg.Done()

	ip := net.ParseIP(task.identifier)
	if ip == nil {
		task.outcome.err = ErrInvalidIP

		return
	}

	task.outcome.record, task.outcome.err = r.Resolve(ip)
}

type batchOutcome struct {
	record GeoRecord
	err    error
}

type batchTask struct {
	identifier string
	outcome    *batchOutcome
	wg         *sync.WaitGroup
}

func NewResolver(db Database, opts ResolverOpts) (*Resolver, error) {
	rv := &Resolver{
		db:       db,
		logger:   opts.Logger,
		metrics:  opts.Metrics,
		cacheTTL: opts.CacheTTL,
		cityStats: &UsageStats{
			Name:      DatabaseCity,
			Available: true,
		},
		asnStats: &UsageStats{
			Name:      DatabaseASN,
			Available: db.HasASN(),
		},
	}

	if rv.logger == nil {
		rv.logger = NoopLogger{}
	}

	if opts.CacheSize > 0 {
		cache, err := ristretto.NewCache(&ristretto.Config{
			MaxCost:     int64(opts.CacheSize),
			NumCounters: 10 * int64(opts.CacheSize),
			BufferItems: 64,
		})
		if err != nil {
			return nil, fmt.Errorf("cannot create a cache: %w", err)
		}

		rv.cache = cache
	}

	poolSize := opts.WorkerPoolSize
	if poolSize <= 0 {
		poolSize = DefaultWorkerPoolSize
	}

	pool, err := ants.NewPoolWithFunc(poolSize, rv.resolveTask,
		ants.WithExpiryDuration(workerPoolExpireTime))
	if err != nil {
		return nil, fmt.Errorf("cannot create a worker pool: %w", err)
	}

	rv.workerPool = pool

	return rv, nil
}
