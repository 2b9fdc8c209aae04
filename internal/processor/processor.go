package processor

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"codeberg.org/snonux/text2ipa/internal/cli"
	"codeberg.org/snonux/text2ipa/internal/cmudict"
	"codeberg.org/snonux/text2ipa/internal/converter"
)

// ErrUsage reports that neither --text nor --file was supplied. The CLI
// maps it to exit code 2.
var ErrUsage = errors.New("either --text or --file is required")

// Processor handles the main phrase conversion logic
type Processor struct {
	flags *cli.Flags
	conv  *converter.Converter
	dict  *cmudict.Dictionary

	// Output streams, overridable in tests.
	Out    io.Writer
	ErrOut io.Writer
}

// NewProcessor wires the primary converter and the pronunciation dictionary
// according to flags. An unconfigured provider (missing API key) is not
// fatal here: conversion degrades to the dictionary fallback per phrase.
func NewProcessor(flags *cli.Flags) (*Processor, error) {
	dict, err := loadDictionary(flags)
	if err != nil {
		return nil, err
	}

	primary, err := converter.NewProvider(&converter.Config{
		Provider:    flags.Provider,
		OpenAIKey:   cli.GetOpenAIKey(),
		OpenAIModel: flags.OpenAIModel,
		GeminiKey:   cli.GetGeminiKey(),
		GeminiModel: flags.GeminiModel,
	})
	if err != nil {
		if !errors.Is(err, converter.ErrUnavailable) {
			return nil, err
		}
		if flags.Debug {
			fmt.Fprintf(os.Stderr, "[debug] primary converter unavailable: %v\n", err)
		}
		primary = nil
	}

	return &Processor{
		flags:  flags,
		conv:   converter.New(primary, dict, flags.Debug),
		dict:   dict,
		Out:    os.Stdout,
		ErrOut: os.Stderr,
	}, nil
}

// loadDictionary resolves and loads the pronunciation dictionary. An empty
// path selects the built-in starter dictionary.
func loadDictionary(flags *cli.Flags) (*cmudict.Dictionary, error) {
	path := cli.DictPath(flags)
	if path == "" {
		return cmudict.LoadEmbedded(), nil
	}
	return cmudict.LoadFile(path)
}

// Run dispatches to the requested mode. Text mode wins when both --text
// and --file are supplied.
func (p *Processor) Run(ctx context.Context) error {
	if p.flags.CompileDict != "" {
		return p.compileDictionary()
	}
	if p.flags.HasText {
		return p.ProcessText(ctx, p.flags.Text)
	}
	if p.flags.HasFile {
		return p.ProcessFile(ctx, p.flags.File)
	}
	return ErrUsage
}

// ProcessText converts a single phrase and prints one IPA line.
func (p *Processor) ProcessText(ctx context.Context, phrase string) error {
	result, err := p.conv.ToIPA(ctx, phrase, p.flags.Sep)
	if err != nil {
		return err
	}
	fmt.Fprintln(p.Out, result)
	return nil
}

// ProcessFile converts each non-blank line of the file, in order, printing
// one IPA line per phrase. An empty file is a warning, not an error.
func (p *Processor) ProcessFile(ctx context.Context, path string) error {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("File not found: %s", path)
		}
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	count := 0
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		phrase := strings.TrimSpace(scanner.Text())
		if phrase == "" {
			continue
		}

		result, err := p.conv.ToIPA(ctx, phrase, p.flags.Sep)
		if err != nil {
			return err
		}
		fmt.Fprintln(p.Out, result)
		count++
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	if count == 0 {
		fmt.Fprintln(p.ErrOut, "Warning: No non-empty lines found.")
	}

	return nil
}

// compileDictionary writes the loaded dictionary to a SQLite file.
func (p *Processor) compileDictionary() error {
	if err := p.dict.Compile(p.flags.CompileDict); err != nil {
		return fmt.Errorf("failed to compile dictionary: %w", err)
	}
	fmt.Fprintf(p.ErrOut, "Compiled %d words to %s\n", p.dict.Len(), p.flags.CompileDict)
	return nil
}
