package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"runtime/debug"
	"strings"

	"github.com/neurlang/binarysymphony/audio"
	"github.com/neurlang/binarysymphony/batch"
	"github.com/neurlang/binarysymphony/config"
	"github.com/neurlang/binarysymphony/convert"
	"github.com/neurlang/binarysymphony/mapper"
	"github.com/neurlang/binarysymphony/scale"
)

type options struct {
	input    string
	inputDir string
	output   string
	mode     string
	scale    string
	format   string
	batch    bool
	debug    bool
}

var errUsage = errors.New("usage")

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var o options
	fs := flag.NewFlagSet("binarysymphony", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.StringVar(&o.input, "input", "", "Input binary file (use --batch for multiple files)")
	fs.StringVar(&o.input, "i", "", "Shorthand for --input")
	fs.StringVar(&o.inputDir, "input-dir", "", "Input directory for batch processing")
	fs.StringVar(&o.output, "output", "", "Output file or directory (required)")
	fs.StringVar(&o.output, "o", "", "Shorthand for --output")
	fs.StringVar(&o.mode, "mode", "melody", "Mapping mode: "+strings.Join(mapper.ModeNames(), ", "))
	fs.StringVar(&o.scale, "scale", scale.Default, "Musical scale: "+strings.Join(scale.Names(), ", "))
	fs.StringVar(&o.format, "format", "wav", "Output format: "+strings.Join(convert.FormatNames(), ", "))
	fs.BoolVar(&o.batch, "batch", false, "Enable batch processing mode")
	fs.BoolVar(&o.debug, "debug", false, "Enable debug output")

	if err := fs.Parse(args); err != nil {
		return o, err
	}
	if fs.NArg() > 0 {
		return o, fmt.Errorf("%w: unexpected argument %q", errUsage, fs.Arg(0))
	}
	if o.output == "" {
		return o, fmt.Errorf("%w: --output is required", errUsage)
	}
	if o.batch {
		if o.inputDir == "" {
			return o, fmt.Errorf("%w: --input-dir is required when using --batch", errUsage)
		}
		if st, err := os.Stat(o.inputDir); err != nil || !st.IsDir() {
			return o, fmt.Errorf("%w: '%s' is not a valid directory", errUsage, o.inputDir)
		}
	} else if o.input == "" {
		return o, fmt.Errorf("%w: --input is required when not using --batch", errUsage)
	}
	return o, nil
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) (code int) {
	panel(stdout, cyan, "BinarySymphony", "Convert binary files to musical symphonies")

	o, err := parseFlags(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		errorf(stderr, "%v", strings.TrimPrefix(err.Error(), "usage: "))
		return 1
	}

	logger := log.New(io.Discard, "debug: ", 0)
	if o.debug {
		logger.SetOutput(stderr)
	}

	defer func() {
		if r := recover(); r != nil {
			panel(stderr, red, "Error", fmt.Sprintf("An error occurred: %v", r))
			if o.debug {
				stderr.Write(debug.Stack())
			}
			code = 1
		}
	}()

	conv, err := newConverter(o)
	if err != nil {
		errorf(stderr, "%v", err)
		return 1
	}

	if o.batch {
		err = runBatch(o, conv, stdout, stderr, logger)
	} else {
		err = runSingle(o, conv, stdout, stderr, logger)
	}
	if err != nil {
		panel(stderr, red, "Error", "An error occurred:", err.Error())
		if o.debug {
			for e := errors.Unwrap(err); e != nil; e = errors.Unwrap(e) {
				logger.Printf("caused by: %v", e)
			}
		}
		return 1
	}
	return 0
}

func newConverter(o options) (*convert.Converter, error) {
	mode, err := mapper.ParseMode(o.mode)
	if err != nil {
		return nil, err
	}
	format, err := convert.ParseFormat(o.format)
	if err != nil {
		return nil, err
	}
	m, err := mapper.New(mode, o.scale)
	if err != nil {
		return nil, err
	}
	return convert.New(m, format, config.Load()), nil
}

func runSingle(o options, conv *convert.Converter, stdout, stderr io.Writer, logger *log.Logger) error {
	cyan.Fprint(stdout, "> ")
	fmt.Fprintf(stdout, "Validating input file: %s\n", o.input)
	st, err := convert.ValidateFile(o.input)
	if err != nil {
		return err
	}
	green.Fprint(stdout, "✔ ")
	fmt.Fprintf(stdout, "File validated: %d bytes\n", st.Size())

	panel(stdout, green, "Configuration",
		"Mode: "+conv.Mapper.Mode.String(),
		"Scale: "+conv.Mapper.Scale.Name,
		"Format: "+conv.Format.String(),
		"Output: "+o.output,
	)

	bar := newBar(stderr, 100, "Converting to "+strings.ToUpper(conv.Format.String())+"...", false)
	job := conv.Start(o.input, o.output)
	for p := range job.Progress() {
		bar.Set(p)
	}
	sum, err := job.Wait()
	bar.Finish()
	if err != nil {
		return err
	}

	logger.Printf("read %d bytes", sum.Bytes)
	logger.Printf("generated %d notes, %.2fs of music", sum.Notes, sum.Duration)
	if conv.Format == convert.WAV {
		if info, err := audio.Inspect(o.output); err == nil {
			logger.Printf("wav: %d Hz, %d channel(s), %d bit, %v", info.SampleRate, info.Channels, info.BitDepth, info.Duration)
		}
	}

	panel(stdout, green, "Complete",
		"Success!",
		"Output saved to: "+sum.Output,
		fmt.Sprintf("Generated %d musical notes from %d bytes", sum.Notes, sum.Bytes),
	)
	return nil
}

func runBatch(o options, conv *convert.Converter, stdout, stderr io.Writer, logger *log.Logger) error {
	cyan.Fprint(stdout, "> ")
	fmt.Fprintf(stdout, "Scanning directory: %s\n", o.inputDir)
	files, err := batch.Scan(o.inputDir)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		yellow.Fprint(stdout, "Warning: ")
		fmt.Fprintln(stdout, "No files found in directory")
		return nil
	}
	green.Fprint(stdout, "✔ ")
	fmt.Fprintf(stdout, "Found %d files to process\n", len(files))

	if err := os.MkdirAll(o.output, 0o755); err != nil {
		return err
	}

	panel(stdout, cyan, "Batch Processing Configuration",
		"Input Directory: "+o.inputDir,
		"Output Directory: "+o.output,
		fmt.Sprintf("Files to Process: %d", len(files)),
		"Mode: "+conv.Mapper.Mode.String(),
		"Scale: "+conv.Mapper.Scale.Name,
		"Format: "+conv.Format.String(),
	)

	bar := newBar(stderr, len(files), "Processing files...", true)
	results := batch.Process(conv, files, o.output, func(current, total int, r batch.Result) {
		bar.Clear()
		if r.Status == batch.Success {
			green.Fprint(stdout, "✔ ")
			fmt.Fprintf(stdout, "%s -> %s\n", r.Input, r.Output)
		} else {
			red.Fprint(stdout, "✘ ")
			fmt.Fprintf(stdout, "%s -> N/A\n", r.Input)
			red.Fprintf(stdout, "   Error: %s\n", r.Error)
		}
		logger.Printf("%d/%d %s", current, total, filepath.Base(r.Input))
		bar.Set(current)
	})
	bar.Finish()
	fmt.Fprintln(stderr)

	ok, failed := batch.Summarize(results)
	panel(stdout, green, "Batch Summary",
		"Batch Processing Complete",
		fmt.Sprintf("Total Files: %d", len(results)),
		fmt.Sprintf("Successful: %d", ok),
		fmt.Sprintf("Failed: %d", failed),
		"Output Directory: "+o.output,
	)
	return nil
}
