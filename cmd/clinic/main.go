package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	"github.com/openclintech/go-clinic-records/internal/app"
	"github.com/openclintech/go-clinic-records/internal/config"
	"github.com/openclintech/go-clinic-records/internal/logger"
	"github.com/openclintech/go-clinic-records/internal/metrics"
	"github.com/openclintech/go-clinic-records/internal/pharmacy"
	"github.com/openclintech/go-clinic-records/internal/report"
	"github.com/openclintech/go-clinic-records/internal/schedule"
	"github.com/openclintech/go-clinic-records/internal/storage/flatfile"
	"github.com/openclintech/go-clinic-records/internal/storage/memory"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "clinic: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log, err := logger.New(cfg.Log)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.NewCollector(reg)

	patients := memory.NewPatientStore()
	staff := memory.NewStaffStore()

	paths := flatfile.Paths{Patients: cfg.Data.PatientsPath(), Staff: cfg.Data.StaffPath()}
	stats, err := flatfile.Load(paths, patients, staff, log)
	if err != nil {
		return err
	}
	m.RecordsSkipped.WithLabelValues("patient").Add(float64(stats.Patients.Skipped))
	m.RecordsSkipped.WithLabelValues("staff").Add(float64(stats.Staff.Skipped))

	deps := app.Deps{
		Patients: patients,
		Staff:    staff,
		Book:     schedule.NewBook(staff, log),
		Catalog:  pharmacy.DefaultCatalog(),
		Metrics:  m,
		Logger:   log,
	}

	var srv *http.Server
	if cfg.Status.Enabled() {
		srv = &http.Server{
			Addr:    cfg.Status.Addr,
			Handler: app.NewStatusHandler(deps),
		}
		go func() {
			log.Info("status server listening", zap.String("addr", srv.Addr))
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Error("status server failed", zap.Error(err))
			}
		}()
	}

	runErr := app.NewConsole(deps, os.Stdin, os.Stdout).Run()

	if srv != nil {
		ctx, cancel := context.WithTimeout(context.Background(), cfg.Status.ShutdownTimeout)
		if err := srv.Shutdown(ctx); err != nil {
			log.Warn("status server shutdown", zap.Error(err))
		}
		cancel()
	}

	if cfg.Data.SaveOnExit {
		if err := flatfile.Save(paths, patients, staff); err != nil {
			return errors.Join(runErr, err)
		}
		log.Info("records saved", zap.Int("patients", patients.Len()), zap.Int("staff", staff.Len()))
	}

	if out := cfg.Data.ExportPath(); out != "" {
		if err := writeExport(out, deps); err != nil {
			return errors.Join(runErr, err)
		}
		log.Info("report exported", zap.String("path", out))
	}

	return runErr
}

func writeExport(path string, d app.Deps) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating export %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return report.Export(f, d.Patients.All(), d.Staff.Slots())
}
