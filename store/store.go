// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

// Package store keeps conversion tables and a conversion history in SQLite.
// Tables are stored as expression text and re-validated when loaded.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"unitconv/expr"
	"unitconv/units"
)

const schema = `
CREATE TABLE IF NOT EXISTS units (
	dimension TEXT NOT NULL,
	ordinal INTEGER NOT NULL,
	name TEXT NOT NULL,
	symbol TEXT NOT NULL,
	PRIMARY KEY(dimension, ordinal),
	UNIQUE(dimension, name)
);

CREATE TABLE IF NOT EXISTS conversions (
	dimension TEXT NOT NULL,
	source TEXT NOT NULL,
	target TEXT NOT NULL,
	expression TEXT NOT NULL,
	PRIMARY KEY(dimension, source, target)
);

CREATE TABLE IF NOT EXISTS history (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	dimension TEXT NOT NULL,
	value REAL NOT NULL,
	source TEXT NOT NULL,
	target TEXT NOT NULL,
	result REAL,
	exact TEXT NOT NULL,
	overflow BOOLEAN NOT NULL DEFAULT 0,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_history_dimension ON history(dimension);
`

// Store is a SQLite database of dimensions and conversion history. It is
// safe for concurrent use.
type Store struct {
	db *sql.DB
}

// Record is one conversion in the history. Result is meaningless when
// Overflow is set; Exact holds the unrounded value as a fraction.
type Record struct {
	ID        int64
	Dimension string
	Value     float64
	Source    string
	Target    string
	Result    float64
	Exact     string
	Overflow  bool
	CreatedAt time.Time
}

// Open opens or creates the database at path, creating its directory.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create data directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// SaveDimension replaces the stored units and table of d.
func (s *Store) SaveDimension(d *units.Dimension) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := saveDimension(tx, d); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit %s: %w", d.Name(), err)
	}
	return nil
}

// SaveRegistry saves every dimension of r in one transaction.
func (s *Store) SaveRegistry(r *units.Registry) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, d := range r.Dimensions() {
		if err := saveDimension(tx, d); err != nil {
			return err
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit registry: %w", err)
	}
	return nil
}

func saveDimension(tx *sql.Tx, d *units.Dimension) error {
	name := d.Name()
	if _, err := tx.Exec(`DELETE FROM units WHERE dimension = ?`, name); err != nil {
		return fmt.Errorf("failed to clear units of %s: %w", name, err)
	}
	if _, err := tx.Exec(`DELETE FROM conversions WHERE dimension = ?`, name); err != nil {
		return fmt.Errorf("failed to clear conversions of %s: %w", name, err)
	}

	for i, u := range d.Units() {
		_, err := tx.Exec(`INSERT INTO units (dimension, ordinal, name, symbol) VALUES (?, ?, ?, ?)`,
			name, i, u.Name, u.Symbol)
		if err != nil {
			return fmt.Errorf("failed to save unit %s.%s: %w", name, u.Name, err)
		}
	}

	insert, err := tx.Prepare(`INSERT INTO conversions (dimension, source, target, expression) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare conversions: %w", err)
	}
	defer insert.Close()

	for _, e := range d.Entries() {
		source, target := d.UnitName(e.From), d.UnitName(e.To)
		if _, err := insert.Exec(name, source, target, e.Expr.String()); err != nil {
			return fmt.Errorf("failed to save %s conversion %s -> %s: %w", name, source, target, err)
		}
	}
	return nil
}

// DimensionNames lists the stored dimensions, sorted.
func (s *Store) DimensionNames() ([]string, error) {
	rows, err := s.db.Query(`SELECT DISTINCT dimension FROM units ORDER BY dimension`)
	if err != nil {
		return nil, fmt.Errorf("failed to list dimensions: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to list dimensions: %w", err)
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// LoadDimension rebuilds a stored dimension. The table is validated like a
// compiled-in one, so a missing row is reported as a
// *units.MissingConversionError.
func (s *Store) LoadDimension(name string) (*units.Dimension, error) {
	defs, err := s.loadUnits(name)
	if err != nil {
		return nil, err
	}
	if len(defs) == 0 {
		return nil, fmt.Errorf("failed to load %s: no such dimension", name)
	}
	ordinal := make(map[string]int, len(defs))
	for i, def := range defs {
		ordinal[def.Name] = i
	}

	rows, err := s.db.Query(`SELECT source, target, expression FROM conversions WHERE dimension = ?`, name)
	if err != nil {
		return nil, fmt.Errorf("failed to load conversions of %s: %w", name, err)
	}
	defer rows.Close()

	var entries []units.Entry
	for rows.Next() {
		var source, target, text string
		if err := rows.Scan(&source, &target, &text); err != nil {
			return nil, fmt.Errorf("failed to load conversions of %s: %w", name, err)
		}
		from, ok := ordinal[source]
		if !ok {
			return nil, fmt.Errorf("failed to load %s: conversion from unknown unit %s", name, source)
		}
		to, ok := ordinal[target]
		if !ok {
			return nil, fmt.Errorf("failed to load %s: conversion to unknown unit %s", name, target)
		}
		e, err := expr.Parse(text)
		if err != nil {
			return nil, fmt.Errorf("failed to load %s conversion %s -> %s: %w", name, source, target, err)
		}
		entries = append(entries, units.Entry{From: from, To: to, Expr: e})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to load conversions of %s: %w", name, err)
	}

	d, err := units.NewDimension(name, defs, entries)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", name, err)
	}
	return d, nil
}

func (s *Store) loadUnits(name string) ([]units.UnitDef, error) {
	rows, err := s.db.Query(`SELECT name, symbol FROM units WHERE dimension = ? ORDER BY ordinal`, name)
	if err != nil {
		return nil, fmt.Errorf("failed to load units of %s: %w", name, err)
	}
	defer rows.Close()

	var defs []units.UnitDef
	for rows.Next() {
		var def units.UnitDef
		if err := rows.Scan(&def.Name, &def.Symbol); err != nil {
			return nil, fmt.Errorf("failed to load units of %s: %w", name, err)
		}
		defs = append(defs, def)
	}
	return defs, rows.Err()
}

// LoadRegistry rebuilds every stored dimension.
func (s *Store) LoadRegistry() (*units.Registry, error) {
	names, err := s.DimensionNames()
	if err != nil {
		return nil, err
	}
	dims := make([]*units.Dimension, 0, len(names))
	for _, name := range names {
		d, err := s.LoadDimension(name)
		if err != nil {
			return nil, err
		}
		dims = append(dims, d)
	}
	return units.NewRegistry(dims...)
}

// Record appends rec to the history and returns its id.
func (s *Store) Record(rec Record) (int64, error) {
	var result sql.NullFloat64
	if !rec.Overflow {
		result = sql.NullFloat64{Float64: rec.Result, Valid: true}
	}

	res, err := s.db.Exec(`
	INSERT INTO history (dimension, value, source, target, result, exact, overflow)
	VALUES (?, ?, ?, ?, ?, ?, ?)
	`, rec.Dimension, rec.Value, rec.Source, rec.Target, result, rec.Exact, rec.Overflow)
	if err != nil {
		return 0, fmt.Errorf("failed to record conversion: %w", err)
	}
	return res.LastInsertId()
}

// History returns up to limit records, newest first.
func (s *Store) History(limit int) ([]Record, error) {
	rows, err := s.db.Query(`
	SELECT id, dimension, value, source, target, result, exact, overflow, created_at
	FROM history
	ORDER BY id DESC
	LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to read history: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var rec Record
		var result sql.NullFloat64
		err := rows.Scan(&rec.ID, &rec.Dimension, &rec.Value, &rec.Source, &rec.Target,
			&result, &rec.Exact, &rec.Overflow, &rec.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to read history: %w", err)
		}
		rec.Result = result.Float64
		records = append(records, rec)
	}
	return records, rows.Err()
}
