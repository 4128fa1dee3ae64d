package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"golang.org/x/time/rate"
	"gopkg.in/yaml.v3"

	sitekit "github.com/lexport/go-sitekit"
	"github.com/lexport/go-sitekit/components/evaluation"
	"github.com/lexport/go-sitekit/components/practices"
	"github.com/lexport/go-sitekit/internal/content"
)

type config struct {
	Addr     string `yaml:"addr"`
	BasePath string `yaml:"base_path"`
	Catalog  string `yaml:"catalog"`

	Intake struct {
		Endpoint      string  `yaml:"endpoint"`
		FallbackPhone string  `yaml:"fallback_phone"`
		RatePerSec    float64 `yaml:"rate_per_sec"`
		Burst         int     `yaml:"burst"`
	} `yaml:"intake"`
}

func loadConfig(path string) (config, error) {
	cfg := config{Addr: ":8383"}
	if path == "" {
		return cfg, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	if cfg.Addr == "" {
		cfg.Addr = ":8383"
	}
	return cfg, nil
}

func main() {
	var (
		configFlag  = flag.String("config", "", "Server config file (YAML)")
		addrFlag    = flag.String("addr", "", "HTTP listen address (overrides config)")
		catalogFlag = flag.String("catalog", "", "Practice-areas catalog file (overrides config)")
		intakeFlag  = flag.String("intake", "", "Intake endpoint URL (overrides config)")
		graceFlag   = flag.Duration("grace", 5*time.Second, "Shutdown grace period")
	)
	flag.Parse()

	cfg, err := loadConfig(*configFlag)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if *addrFlag != "" {
		cfg.Addr = *addrFlag
	}
	if *catalogFlag != "" {
		cfg.Catalog = *catalogFlag
	}
	if *intakeFlag != "" {
		cfg.Intake.Endpoint = *intakeFlag
	}

	practicesOptions := []practices.OptionFn{}
	if cfg.Catalog != "" {
		provider, watcher, err := watchCatalog(cfg.Catalog)
		if err != nil {
			log.Fatalf("catalog: %v", err)
		}
		defer watcher.Close()
		practicesOptions = append(practicesOptions, practices.WithCatalogProvider(provider))
	}

	evaluationOptions := []evaluation.OptionFn{
		evaluation.WithIntakeEndpoint(cfg.Intake.Endpoint),
		evaluation.WithLogf(log.Printf),
	}
	if cfg.Intake.FallbackPhone != "" {
		evaluationOptions = append(evaluationOptions, evaluation.WithFallbackPhone(cfg.Intake.FallbackPhone))
	}
	if cfg.Intake.RatePerSec > 0 {
		burst := cfg.Intake.Burst
		if burst <= 0 {
			burst = 1
		}
		evaluationOptions = append(evaluationOptions, evaluation.WithRateLimit(rate.Limit(cfg.Intake.RatePerSec), burst))
	}

	mux := http.NewServeMux()
	patterns, err := sitekit.Mount(mux, cfg.BasePath,
		sitekit.NewEvaluation(evaluationOptions...),
		sitekit.NewPractices(practicesOptions...),
	)
	if err != nil {
		log.Fatalf("mount: %v", err)
	}
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	httpServer := &http.Server{
		Addr:    cfg.Addr,
		Handler: mux,
	}

	log.Printf("listening on %s (routes %v)", cfg.Addr, patterns)

	errChan := make(chan error, 1)
	go func() {
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- err
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-errChan:
		log.Fatalf("listen: %v", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), *graceFlag)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown: %v", err)
	}
}

// watchCatalog loads the catalog file and reloads it whenever it changes on
// disk. A reload that fails to parse keeps serving the previous catalog.
func watchCatalog(path string) (practices.CatalogProvider, *content.Watcher, error) {
	var current atomic.Value

	reload := func() error {
		catalog, err := practices.LoadCatalogFile(path)
		if err != nil {
			return err
		}
		current.Store(catalog)
		return nil
	}
	if err := reload(); err != nil {
		return nil, nil, err
	}

	watcher, err := content.Watch(path, reload, func(err error) {
		log.Printf("catalog reload: %v", err)
	})
	if err != nil {
		return nil, nil, err
	}

	provider := func() practices.Catalog {
		catalog, _ := current.Load().(practices.Catalog)
		return catalog
	}
	return provider, watcher, nil
}
