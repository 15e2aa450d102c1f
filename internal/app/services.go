package app

import (
	"context"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fintaskReza/opzer-dash/internal/auth"
	"github.com/fintaskReza/opzer-dash/internal/entries"
	"github.com/fintaskReza/opzer-dash/internal/orgs"
	"github.com/fintaskReza/opzer-dash/internal/roster"
	"github.com/fintaskReza/opzer-dash/internal/seed"
	"github.com/fintaskReza/opzer-dash/internal/users"
)

// Buster invalidates an organization's cached dashboards.
type Buster interface {
	Bust(ctx context.Context, orgID int64)
}

// Services bundles the domain services backed by PostgreSQL.
type Services struct {
	Auth    *auth.Service
	Orgs    *orgs.Service
	Users   *users.Service
	Roster  *roster.Service
	Entries *entries.Service
}

// NewServices wires repositories and services on pool. buster may be nil.
func NewServices(pool *pgxpool.Pool, buster Buster, logger *slog.Logger) *Services {
	var (
		rosterBuster  roster.Buster
		entriesBuster entries.Buster
	)
	if buster != nil {
		rosterBuster, entriesBuster = buster, buster
	}
	rosterService := roster.NewService(roster.NewRepository(pool), rosterBuster, logger)
	return &Services{
		Auth:    auth.NewService(auth.NewRepository(pool)),
		Orgs:    orgs.NewService(orgs.NewRepository(pool)),
		Users:   users.NewService(users.NewRepository(pool)),
		Roster:  rosterService,
		Entries: entries.NewService(entries.NewRepository(pool), rosterService, entriesBuster, logger),
	}
}

// Seeder returns a demo seeder writing through the services.
func (s *Services) Seeder(logger *slog.Logger) *seed.Seeder {
	return &seed.Seeder{Orgs: s.Orgs, Users: s.Users, Roster: s.Roster, Entries: s.Entries, Logger: logger}
}
