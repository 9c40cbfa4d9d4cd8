// Package importer reads weekly player stats exported from
// Pro-Football-Reference game logs.
package importer

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/goserg/ffserver/internal/domain"
)

const (
	colDate         = "Date"
	colRushAttempts = "Att"
	colRushYards    = "Yds"
	colRushTDs      = "TD"
	colTargets      = "Tgt"
	colReceptions   = "Rec"
	colRecYards     = "Yds.1"
	colRecTDs       = "TD.1"
)

var requiredColumns = []string{
	colDate, colRushAttempts, colRushYards, colRushTDs,
	colTargets, colReceptions, colRecYards, colRecTDs,
}

var ErrMissingColumn = errors.New("missing column")

type Result struct {
	Games []domain.PlayerGame
	// Errors holds one entry per skipped row, such as season totals or
	// bye weeks.
	Errors []error
}

// ReadWeekly parses a game log. The first line is a banner and is skipped;
// the second is the header. Repeated header names get ".1", ".2" suffixes.
func ReadWeekly(r io.Reader) (Result, error) {
	csvr := csv.NewReader(bufio.NewReader(r))
	csvr.TrimLeadingSpace = true
	csvr.FieldsPerRecord = -1

	if _, err := csvr.Read(); err != nil {
		return Result{}, fmt.Errorf("banner: %w", err)
	}
	header, err := csvr.Read()
	if err != nil {
		return Result{}, fmt.Errorf("header: %w", err)
	}
	index := dedupeHeader(header)
	for _, col := range requiredColumns {
		if _, ok := index[col]; !ok {
			err = errors.Join(err, fmt.Errorf("%w: %s", ErrMissingColumn, col))
		}
	}
	if err != nil {
		return Result{}, err
	}

	var res Result
	line := 2
	for {
		line++
		rec, err := csvr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			res.Errors = append(res.Errors, fmt.Errorf("line %d: %w", line, err))
			continue
		}
		game, err := parseRow(rec, index)
		if err != nil {
			res.Errors = append(res.Errors, fmt.Errorf("line %d: %w", line, err))
			continue
		}
		res.Games = append(res.Games, game)
	}
	return res, nil
}

func dedupeHeader(header []string) map[string]int {
	index := make(map[string]int, len(header))
	seen := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.TrimSpace(name)
		n := seen[name]
		seen[name]++
		if n > 0 {
			name = name + "." + strconv.Itoa(n)
		}
		index[name] = i
	}
	return index
}

func parseRow(rec []string, index map[string]int) (domain.PlayerGame, error) {
	field := func(col string) string {
		i := index[col]
		if i >= len(rec) {
			return ""
		}
		return strings.TrimSpace(rec[i])
	}
	date, err := time.Parse(time.DateOnly, field(colDate))
	if err != nil {
		return domain.PlayerGame{}, fmt.Errorf("date: %w", err)
	}
	game := domain.PlayerGame{Date: date}
	var errs error
	game.RushAttempts, err = parseInt(field(colRushAttempts))
	errs = errors.Join(errs, wrap(colRushAttempts, err))
	game.RushYards, err = parseFloat(field(colRushYards))
	errs = errors.Join(errs, wrap(colRushYards, err))
	game.RushTDs, err = parseInt(field(colRushTDs))
	errs = errors.Join(errs, wrap(colRushTDs, err))
	game.Targets, err = parseInt(field(colTargets))
	errs = errors.Join(errs, wrap(colTargets, err))
	game.Receptions, err = parseInt(field(colReceptions))
	errs = errors.Join(errs, wrap(colReceptions, err))
	game.RecYards, err = parseFloat(field(colRecYards))
	errs = errors.Join(errs, wrap(colRecYards, err))
	game.RecTDs, err = parseInt(field(colRecTDs))
	errs = errors.Join(errs, wrap(colRecTDs, err))
	if errs != nil {
		return domain.PlayerGame{}, errs
	}
	return game, nil
}

func wrap(col string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", col, err)
}

// Empty cells are zero: the export leaves them blank for a player with no
// attempts that week.
func parseInt(s string) (int, error) {
	if s == "" {
		return 0, nil
	}
	return strconv.Atoi(s)
}

func parseFloat(s string) (float64, error) {
	if s == "" {
		return 0, nil
	}
	return strconv.ParseFloat(s, 64)
}
