// Package wordlist lee la lista de candidates desde disco.
package wordlist

import (
	"bufio"
	"io"
	"os"

	"bucketx/internal/core/domain"
	"bucketx/internal/platform/errors"
	"bucketx/internal/platform/logx"
	"bucketx/internal/platform/validator"
)

// maxLineBytes acota una línea; bufio.Scanner corta en 64 KiB por defecto.
const maxLineBytes = 1 << 20

// Options controla la normalización de la lista.
type Options struct {
	// Dedupe descarta repeticiones exactas (tras trim), conservando la primera
	Dedupe bool
}

// Result es la lista cargada junto con contadores de lo descartado.
type Result struct {
	Candidates []domain.Candidate

	// Blank líneas vacías o solo espacios, omitidas
	Blank int

	// Duplicates repeticiones descartadas (solo con Dedupe)
	Duplicates int

	// NonConforming nombres que no cumplen las reglas de S3; se sondean igual
	NonConforming []domain.Candidate
}

// Load abre path y delega en Read.
func Load(path string, opts Options, logger logx.Logger) (Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return Result{}, errors.Mark(errors.Wrapf(err, "open wordlist %s", path), errors.ErrConfiguration)
	}
	defer f.Close()

	res, err := Read(f, opts, logger)
	if err != nil {
		return Result{}, errors.Mark(errors.Wrapf(err, "read wordlist %s", path), errors.ErrConfiguration)
	}

	logger.Info("wordlist loaded",
		"path", path,
		"candidates", len(res.Candidates),
		"blank", res.Blank,
		"duplicates", res.Duplicates,
		"non_conforming", len(res.NonConforming),
	)
	return res, nil
}

// Read parsea una línea por candidate, en el orden leído.
func Read(r io.Reader, opts Options, logger logx.Logger) (Result, error) {
	var res Result
	seen := make(map[domain.Candidate]struct{})

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	line := 0
	for sc.Scan() {
		line++
		c, err := domain.NewCandidate(sc.Text())
		if err != nil {
			res.Blank++
			continue
		}

		if opts.Dedupe {
			if _, dup := seen[c]; dup {
				res.Duplicates++
				continue
			}
			seen[c] = struct{}{}
		}

		if !validator.IsBucketName(c.String()) {
			res.NonConforming = append(res.NonConforming, c)
			logger.Debug("candidate is not a valid bucket name, probing anyway", "line", line, "candidate", c.String())
		}
		res.Candidates = append(res.Candidates, c)
	}
	if err := sc.Err(); err != nil {
		return Result{}, errors.Mark(err, errors.ErrInvalidInput)
	}
	return res, nil
}
