// Copyright (c) 2025 Nikita Kamenev
// Licensed under the MIT License. See LICENSE file in the project root for details.
package main

import (
	"fmt"
	"io"
	"time"

	"github.com/nekitakamenev/esaxx"
	"github.com/nekitakamenev/esaxx/internal/config"
	"github.com/nekitakamenev/esaxx/internal/corpus"
	"github.com/nekitakamenev/esaxx/internal/vocab"
)

// options are the settings after flag overrides.
type options struct {
	config.Settings
	verbose bool
}

// report summarizes a built structure independently of its index width.
type report struct {
	n, nodeNum int
	candidates func(vocab.Options) []vocab.Candidate
	count      func(pattern []rune) int
}

func newReport[T esaxx.Index](s *esaxx.Suffix[T]) report {
	return report{
		n:       s.Len(),
		nodeNum: s.NodeNum(),
		candidates: func(opts vocab.Options) []vocab.Candidate {
			return vocab.Candidates(s, opts)
		},
		count: s.Count,
	}
}

// build loads the corpus and constructs it with the selected backend.
func build(stderr io.Writer, opts *options, path string) (report, error) {
	if err := opts.Validate(); err != nil {
		return report{}, err
	}
	start := time.Now()
	text, err := corpus.Load(path)
	if err != nil {
		return report{}, fmt.Errorf("load corpus: %w", err)
	}
	if opts.verbose {
		fmt.Fprintf(stderr, "Loaded %d bytes in %v\n", len(text), time.Since(start))
	}

	start = time.Now()
	var r report
	switch opts.Backend {
	case config.BackendNative:
		s, err := esaxx.Native.Build(text)
		if err != nil {
			return report{}, fmt.Errorf("build: %w", err)
		}
		r = newReport(s)
	default:
		s, err := esaxx.Wide.Build(text)
		if err != nil {
			return report{}, fmt.Errorf("build: %w", err)
		}
		r = newReport(s)
	}
	if opts.verbose {
		fmt.Fprintf(stderr, "Built %s suffix array of %d symbols, %d nodes in %v\n",
			opts.Backend, r.n, r.nodeNum, time.Since(start))
	}
	return r, nil
}

func runSubstrings(stdout, stderr io.Writer, opts *options, path string) error {
	r, err := build(stderr, opts, path)
	if err != nil {
		return err
	}
	cands := r.candidates(vocab.Options{
		MinFreq: opts.MinFreq,
		MinLen:  opts.MinLen,
		MaxLen:  opts.MaxLen,
		Top:     opts.Top,
	})
	for _, c := range cands {
		if _, err := fmt.Fprintf(stdout, "%d\t%s\n", c.Freq, c.Text); err != nil {
			return err
		}
	}
	return nil
}

func runStats(stdout, stderr io.Writer, opts *options, path string) error {
	r, err := build(stderr, opts, path)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(stdout, "symbols\t%d\nnodes\t%d\n", r.n, r.nodeNum)
	return err
}

func runCount(stdout, stderr io.Writer, opts *options, path string, patterns []string) error {
	r, err := build(stderr, opts, path)
	if err != nil {
		return err
	}
	for _, p := range patterns {
		if _, err := fmt.Fprintf(stdout, "%d\t%s\n", r.count([]rune(p)), p); err != nil {
			return err
		}
	}
	return nil
}
