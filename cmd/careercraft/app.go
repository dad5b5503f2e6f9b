package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/careercraft/careercraft/internal/api"
	"github.com/careercraft/careercraft/internal/config"
	"github.com/careercraft/careercraft/internal/store"
)

// app bundles the per-invocation dependencies: config, the durable store
// and the backend client with any stored credential installed. Session
// state is explicitly passed from here instead of living in globals.
type app struct {
	cfg    *config.Config
	store  store.Store
	client *api.Client
	closer func()
}

// newApp loads config, opens the store (Postgres when DATABASE_URL is set,
// files otherwise) and builds the backend client.
func newApp(ctx context.Context) (*app, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	var (
		st     store.Store
		closer = func() {}
	)
	if cfg.DatabaseURL != "" {
		ps, err := store.ConnectPostgres(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		st = ps
		closer = ps.Close
	} else {
		fs, err := store.NewFileStore(cfg.DataDir)
		if err != nil {
			return nil, err
		}
		st = fs
	}

	client := api.NewClient(cfg.APIBase, &api.Options{
		Timeout: time.Duration(cfg.RequestTimeout) * time.Second,
	})

	if tok, ok, err := st.Get(ctx, store.KeyToken); err == nil && ok {
		token := string(tok)
		if api.TokenExpired(token) {
			log.Printf("[auth] stored token has expired, run 'careercraft login'")
		} else {
			client.SetToken(token)
		}
	}

	return &app{cfg: cfg, store: st, client: client, closer: closer}, nil
}

// Close releases the store.
func (a *app) Close() {
	a.closer()
}

// personalInfo returns the cached /me profile, or nil when none is stored.
func (a *app) personalInfo(ctx context.Context) map[string]any {
	data, ok, err := a.store.Get(ctx, store.KeyPersonalInfo)
	if err != nil || !ok {
		return nil
	}
	var info map[string]any
	if err := json.Unmarshal(data, &info); err != nil {
		return nil
	}
	return info
}

// profileString reads one string field from the cached profile.
func profileString(info map[string]any, key string) string {
	if info == nil {
		return ""
	}
	s, _ := info[key].(string)
	return s
}

// requireAuth fails early with a friendly message when no token is set.
func (a *app) requireAuth() error {
	if a.client.Token() == "" {
		return fmt.Errorf("not logged in, run 'careercraft login' first")
	}
	return nil
}
