package batch

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/neurlang/binarysymphony/convert"
)

// Status is the outcome of one file.
type Status string

const (
	Success Status = "success"
	Failed  Status = "error"
)

// Result records the outcome of converting one input file.
type Result struct {
	Input  string
	Output string // empty on failure
	Status Status
	Error  string
}

// ProgressFunc is called after each file with the 1-based file index.
type ProgressFunc func(current, total int, result Result)

const outputSuffix = "_binarysymphony"

// OutputName returns the output file name for input, like "data_binarysymphony.wav".
func OutputName(input string, format convert.Format) string {
	base := filepath.Base(input)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	return stem + outputSuffix + "." + format.Extension()
}

// Scan lists the regular, non-hidden files under dir, recursively.
func Scan(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.Type().IsRegular() && !strings.HasPrefix(d.Name(), ".") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

// Process converts files into outputDir in order. It never stops early.
func Process(c *convert.Converter, files []string, outputDir string, progress ProgressFunc) []Result {
	results := make([]Result, 0, len(files))
	for i, input := range files {
		out := filepath.Join(outputDir, OutputName(input, c.Format))

		r := Result{Input: input, Status: Success, Output: out}
		if _, err := c.ConvertFile(input, out); err != nil {
			r.Status = Failed
			r.Output = ""
			r.Error = err.Error()
		}
		results = append(results, r)

		if progress != nil {
			progress(i+1, len(files), r)
		}
	}
	return results
}

// Summarize counts successful and failed results.
func Summarize(results []Result) (ok, failed int) {
	for _, r := range results {
		if r.Status == Success {
			ok++
		} else {
			failed++
		}
	}
	return
}
