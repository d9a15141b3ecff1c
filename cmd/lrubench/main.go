// Command lrubench runs a synthetic workload against an LRU map and exposes
// optional pprof/Prometheus endpoints.
package main

import (
	"context"
	"flag"
	"fmt"
	"hash/maphash"
	"log"
	"net/http"
	_ "net/http/pprof" // registers /debug/pprof/* on DefaultServeMux
	"strconv"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/exp/rand"
	"golang.org/x/sync/errgroup"

	"github.com/ekuvardin/commons-collections/internal/util"
	"github.com/ekuvardin/commons-collections/metrics/prom"
	"github.com/ekuvardin/commons-collections/omap"
	"github.com/ekuvardin/commons-collections/policy"
)

func main() {
	// ---- Flags ----
	var (
		maxSize = flag.Int("max", 100_000, "map bound (entries)")
		scan    = flag.Bool("scan", false, "scan past vetoed entries instead of exceeding the bound")
		pinN    = flag.Int("pin", 0, "pin the first N keys against eviction (0 = no policy)")
		hasher  = flag.String("hash", "seeded", "hash function: seeded | fnv")

		workers  = flag.Int("workers", 1, "worker goroutines; >1 wraps the map in Synchronized")
		duration = flag.Duration("duration", 10*time.Second, "benchmark duration")
		readPct  = flag.Int("reads", 80, "read percentage [0..100]")

		keys    = flag.Int("keys", 1_000_000, "keyspace size")
		zipfS   = flag.Float64("zipf_s", 1.1, "Zipf s > 1 (skew)")
		zipfV   = flag.Float64("zipf_v", 1.0, "Zipf v")
		seed    = flag.Uint64("seed", uint64(time.Now().UnixNano()), "random seed")
		preload = flag.Int("preload", 0, "preload entries (0 = max/2)")

		pprofAddr   = flag.String("pprof", "", "serve pprof at addr (e.g. :6060); empty = disabled")
		metricsAddr = flag.String("http", "", "serve Prometheus metrics at addr; empty = disabled")
	)
	flag.Parse()

	// ---- pprof server (on DefaultServeMux) ----
	if *pprofAddr != "" {
		go func() {
			log.Printf("pprof: serving at %s", *pprofAddr)
			log.Println(http.ListenAndServe(*pprofAddr, nil))
		}()
	}

	// ---- Build map ----
	opt := omap.Options[string, string]{
		MaxSize:            *maxSize,
		ScanUntilRemovable: *scan,
	}
	if *metricsAddr != "" {
		opt.Metrics = prom.New(nil, "omap", "bench", nil)
		http.Handle("/metrics", promhttp.Handler())
		go func() {
			log.Printf("metrics: serving at %s", *metricsAddr)
			log.Println(http.ListenAndServe(*metricsAddr, nil))
		}()
	}
	switch *hasher {
	case "seeded":
		// nil => maphash.Comparable with a random per-map seed
	case "fnv":
		// Deterministic across runs; bucket layout is reproducible.
		opt.Hash = func(_ maphash.Seed, k string) uint64 { return util.Fnv64a(k) }
	default:
		log.Fatalf("unknown hash: %q (use seeded or fnv)", *hasher)
	}
	if *pinN > 0 {
		pinned := make([]string, *pinN)
		for i := range pinned {
			pinned[i] = "k:" + strconv.Itoa(i)
		}
		opt.Policy = policy.Pin[string, string](pinned...)
	}
	var evictions atomic.Uint64
	opt.OnEvict = func(string, string) { evictions.Add(1) }

	lru := omap.NewLRUMapWith(opt)

	// The raw map is single-goroutine; above one worker all access goes
	// through the Synchronized view.
	var m omap.Map[string, string] = lru
	workersN := *workers
	if workersN <= 0 {
		workersN = 1
	}
	if workersN > 1 {
		m = omap.Synchronized[string, string](lru)
	}

	// ---- Preload half the bound to get a realistic hit-rate ----
	pl := *preload
	if pl == 0 {
		pl = *maxSize / 2
	}
	for i := 0; i < pl; i++ {
		k := "k:" + strconv.Itoa(i)
		m.Put(k, "v"+strconv.Itoa(i))
	}

	// ---- Snapshot flags for goroutines ----
	readPctVal := *readPct
	keysMax := uint64(*keys - 1)
	seedBase := *seed
	zipfSVal := *zipfS
	zipfVVal := *zipfV

	// ---- Load generation ----
	var reads, writes, hits, misses, total atomic.Uint64
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	start := time.Now()
	g, ctx := errgroup.WithContext(ctx)
	for w := 0; w < workersN; w++ {
		id := w
		g.Go(func() error {
			// Each worker gets its own RNG + Zipf (rand.Rand is NOT goroutine-safe).
			localR := rand.New(rand.NewSource(seedBase + uint64(id)*9973))
			localZipf := rand.NewZipf(localR, zipfSVal, zipfVVal, keysMax)

			keyByZipf := func() string {
				return "k:" + strconv.FormatUint(localZipf.Uint64(), 10)
			}

			for {
				select {
				case <-ctx.Done():
					return nil
				default:
				}

				total.Add(1)
				if int(localR.Int31n(100)) < readPctVal {
					reads.Add(1)
					if _, ok := m.Get(keyByZipf()); ok {
						hits.Add(1)
					} else {
						misses.Add(1)
					}
				} else {
					writes.Add(1)
					k := keyByZipf()
					m.Put(k, "v"+strconv.Itoa(int(localR.Int31())))
				}
			}
		})
	}
	_ = g.Wait()
	elapsed := time.Since(start)

	// ---- Report ----
	ops := total.Load()
	readsN := reads.Load()
	writesN := writes.Load()
	hitsN := hits.Load()
	missesN := misses.Load()

	hitRate := 0.0
	if readsN > 0 {
		hitRate = float64(hitsN) / float64(readsN) * 100
	}

	fmt.Printf("max=%d scan=%v pin=%d hash=%s workers=%d keys=%d dur=%v seed=%d\n",
		*maxSize, *scan, *pinN, *hasher, workersN, *keys, elapsed, seedBase)
	fmt.Printf("ops=%d (%.0f ops/s)  reads=%d  writes=%d\n",
		ops, float64(ops)/elapsed.Seconds(), readsN, writesN)
	fmt.Printf("hits=%d  misses=%d  hit-rate=%.2f%%  evictions=%d\n",
		hitsN, missesN, hitRate, evictions.Load())
	fmt.Printf("Len()=%d\n", m.Len())
}
