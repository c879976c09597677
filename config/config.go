// Package config declares the application configuration, parsed from
// the environment with the DIGISTORE prefix.
package config

import "time"

type Config struct {
	Web   Web
	DB    DB
	Store Store
	Cors  Cors
	Rate  Rate
}

type Web struct {
	Address         string        `conf:"default:0.0.0.0:8000"`
	ReadTimeout     time.Duration `conf:"default:5s"`
	WriteTimeout    time.Duration `conf:"default:10s"`
	IdleTimeout     time.Duration `conf:"default:120s"`
	ShutdownTimeout time.Duration `conf:"default:20s"`
}

type DB struct {
	User       string `conf:"default:postgres"`
	Password   string `conf:"default:postgres,mask"`
	Host       string `conf:"default:localhost"`
	Name       string `conf:"default:digistore"`
	DisableTLS bool   `conf:"default:true"`
}

// Store selects the persistence backend. The memory backend mirrors a
// browser-local quota-bound store; postgres keeps the same key to JSON
// record contract durable.
type Store struct {
	Backend string `conf:"default:memory,help:memory or postgres"`
	// Quota bounds the memory backend in bytes; zero means unbounded.
	Quota int `conf:"default:5242880"`
}

type Cors struct {
	Origin string
}

// Rate throttles the coupon apply endpoint per client address.
type Rate struct {
	CouponBurst    int           `conf:"default:5"`
	CouponInterval time.Duration `conf:"default:1s"`
	CouponExpiry   time.Duration `conf:"default:10m"`
}
