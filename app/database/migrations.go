package database

import (
	"database/sql"
	"log"
)

// RunMigrations creates the schema if it does not exist and applies
// idempotent follow-up changes. Safe to run on every startup.
func RunMigrations(db *sql.DB) error {
	log.Println("Running database migrations...")

	tables := []string{
		`CREATE TABLE IF NOT EXISTS alumnas (
			id SERIAL PRIMARY KEY,
			nombre TEXT NOT NULL,
			dni TEXT NOT NULL UNIQUE,
			telefono TEXT,
			fecha_nacimiento DATE,
			patologias TEXT,
			creado_en TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS clases (
			id SERIAL PRIMARY KEY,
			alumna_id INTEGER NOT NULL REFERENCES alumnas(id) ON DELETE CASCADE,
			dia TEXT NOT NULL,
			hora TEXT NOT NULL,
			UNIQUE (alumna_id, dia, hora)
		)`,
		`CREATE TABLE IF NOT EXISTS pagos (
			id SERIAL PRIMARY KEY,
			alumna_id INTEGER NOT NULL REFERENCES alumnas(id),
			metodo_pago TEXT NOT NULL,
			monto NUMERIC(10,2) NOT NULL,
			recibo UUID NOT NULL UNIQUE,
			fecha TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS egresos (
			id SERIAL PRIMARY KEY,
			fecha DATE,
			detalle TEXT NOT NULL,
			monto NUMERIC(10,2) NOT NULL,
			creado_en TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS caja (
			id SERIAL PRIMARY KEY,
			fecha DATE NOT NULL,
			tipo TEXT NOT NULL CHECK (tipo IN ('Ingreso', 'Egreso')),
			detalle TEXT NOT NULL,
			monto NUMERIC(10,2) NOT NULL,
			pago_id INTEGER REFERENCES pagos(id) ON DELETE CASCADE,
			egreso_id INTEGER REFERENCES egresos(id) ON DELETE CASCADE
		)`,
	}

	for _, q := range tables {
		if _, err := db.Exec(q); err != nil {
			log.Printf("Error creating tables: %v", err)
			return err
		}
	}

	indexes := []string{
		`CREATE INDEX IF NOT EXISTS idx_clases_dia_hora ON clases(dia, hora)`,
		`CREATE INDEX IF NOT EXISTS idx_pagos_fecha ON pagos(fecha)`,
		`CREATE INDEX IF NOT EXISTS idx_pagos_alumna_id ON pagos(alumna_id)`,
		`CREATE INDEX IF NOT EXISTS idx_egresos_fecha ON egresos(fecha)`,
		`CREATE INDEX IF NOT EXISTS idx_caja_fecha ON caja(fecha)`,
		`CREATE INDEX IF NOT EXISTS idx_caja_pago_id ON caja(pago_id)`,
		`CREATE INDEX IF NOT EXISTS idx_caja_egreso_id ON caja(egreso_id)`,
	}

	for _, q := range indexes {
		if _, err := db.Exec(q); err != nil {
			log.Printf("Error creating indexes: %v", err)
			return err
		}
	}

	log.Println("Database migrations completed successfully")
	return nil
}
