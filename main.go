package main

import (
	"net/http"

	"github.com/adryze/omnidesk/aws"
	"github.com/adryze/omnidesk/config"
	"github.com/adryze/omnidesk/odoo"
	"github.com/adryze/omnidesk/redis"
	"github.com/adryze/omnidesk/server"
	"github.com/adryze/omnidesk/session"
	"github.com/adryze/omnidesk/supabase"
	"github.com/adryze/omnidesk/webhook"

	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Load()

	httpClient := http.Client{}

	erpConfig := odoo.Config{
		URL: cfg.OdooURL,
		DB:  cfg.OdooDB,
	}

	log.Info().Str("url", cfg.OdooURL).Str("db", cfg.OdooDB).Msg("Using Odoo backend")

	sessions := session.New(
		cfg.SessionCookieName,
		[]byte(cfg.SessionHashKey),
		[]byte(cfg.SessionBlockKey),
		cfg.Production,
	)

	deps := server.Deps{
		Sessions: sessions,
		Auth:     odoo.NewAuthenticator(erpConfig),
		NewERPClient: func(uid int, password string) server.ERPClient {
			return odoo.NewClient(erpConfig, uid, password)
		},
	}

	if cfg.SupabaseURL != "" && cfg.SupabaseServiceKey != "" {
		store := supabase.NewClient(cfg.SupabaseURL, cfg.SupabaseServiceKey, httpClient)
		deps.Store = &store

		mirror := redis.NewClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		deps.Mirror = &mirror
	} else {
		log.Warn().Msg("Supabase not configured, chat endpoints disabled")
	}

	relay := webhook.NewClient(cfg.WebhookURL, httpClient)
	deps.Relay = &relay
	if !relay.Configured() {
		log.Warn().Msg("Automation webhook not configured, message relay disabled")
	}

	if cfg.S3Bucket != "" {
		deps.Archive = aws.NewClient(cfg.S3Region, cfg.S3Bucket)
	}

	srv := server.New(deps)
	srv.Start(cfg.Port)
}
