// seed aplica el esquema de la base (shops, users) y crea un super_admin
// inicial si la tabla de usuarios está vacía.
//
// Uso: go run ./cmd/seed
// Lee la misma configuración que la API (DATABASE_URL o DB_*); el admin
// inicial sale de SEED_ADMIN_EMAIL y SEED_ADMIN_PASSWORD.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Tiendas-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Tiendas-api/pkg/config"
	"github.com/jhoicas/Tiendas-api/pkg/password"
)

// Las tablas llevan la unicidad donde importa: el UNIQUE de email/name es la
// garantía real contra inserts duplicados concurrentes, no el pre-chequeo de
// la aplicación.
const schema = `
CREATE TABLE IF NOT EXISTS shops (
	id            UUID PRIMARY KEY,
	name          TEXT NOT NULL UNIQUE,
	description   TEXT NOT NULL DEFAULT '',
	address       TEXT NOT NULL DEFAULT '',
	phone_number  TEXT NOT NULL DEFAULT '',
	email         TEXT NOT NULL DEFAULT '',
	status        TEXT NOT NULL DEFAULT 'active'
		CHECK (status IN ('active', 'inactive', 'suspended')),
	created_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at    TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS users (
	id             UUID PRIMARY KEY,
	email          TEXT NOT NULL UNIQUE,
	password_hash  TEXT NOT NULL,
	first_name     TEXT NOT NULL,
	last_name      TEXT NOT NULL,
	phone_number   TEXT NOT NULL DEFAULT '',
	role           TEXT NOT NULL
		CHECK (role IN ('super_admin', 'shop_owner', 'manager', 'staff')),
	status         TEXT NOT NULL DEFAULT 'active'
		CHECK (status IN ('active', 'inactive', 'suspended')),
	shop_id        UUID REFERENCES shops(id) ON DELETE SET NULL,
	created_at     TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at     TIMESTAMPTZ NOT NULL DEFAULT now(),
	last_login_at  TIMESTAMPTZ
);

CREATE INDEX IF NOT EXISTS idx_users_shop_id ON users (shop_id);
`

func main() {
	cfg, err := config.Load()
	if err != nil {
		fail("cargar configuración: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fail("conexión a PostgreSQL: %v", err)
	}
	defer pool.Close()

	if _, err := pool.Exec(ctx, schema); err != nil {
		fail("aplicar esquema: %v", err)
	}
	fmt.Println("esquema aplicado")

	var count int
	if err := pool.QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&count); err != nil {
		fail("contar usuarios: %v", err)
	}
	if count > 0 {
		fmt.Println("ya existen usuarios, no se crea admin inicial")
		return
	}

	email := envOr("SEED_ADMIN_EMAIL", "admin@tiendas.local")
	plain := os.Getenv("SEED_ADMIN_PASSWORD")
	if plain == "" {
		fail("SEED_ADMIN_PASSWORD es requerido para crear el admin inicial")
	}

	hash, err := password.NewHasher().Hash(plain)
	if err != nil {
		fail("hashear password: %v", err)
	}

	now := time.Now()
	_, err = pool.Exec(ctx, `
		INSERT INTO users (id, email, password_hash, first_name, last_name, role, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		uuid.New().String(), email, hash, "Super", "Admin", "super_admin", "active", now, now,
	)
	if err != nil {
		fail("insertar admin: %v", err)
	}
	fmt.Printf("super_admin creado: %s\n", email)
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
