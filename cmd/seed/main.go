package main

import (
	"context"
	"time"

	"github.com/upb-facilities/cleaning-records/internal/config"
	dbpkg "github.com/upb-facilities/cleaning-records/internal/db"
	"github.com/upb-facilities/cleaning-records/internal/logging"
)

func main() {
	cfg := config.Load()
	log := logging.New(cfg)
	db := dbpkg.NewDB(cfg, log)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	if err := dbpkg.Seed(ctx, db, log, time.Now()); err != nil {
		log.WithError(err).Fatal("seed failed")
	}

	log.WithField("admin", dbpkg.SeedAdminEmail).Info("seed completed")
}
