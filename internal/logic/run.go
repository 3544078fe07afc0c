package logic

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"golang.org/x/sync/errgroup"

	"github.com/idelchi/goseal/internal/config"
	"github.com/idelchi/goseal/internal/container"
)

// result is the outcome of processing a single file.
type result struct {
	// Input file path.
	Input string

	// Output file path.
	Output string

	// Output file size in bytes.
	OutputSize int64

	// Any error that occurred during processing.
	Err error
}

// Run processes all files in the configuration concurrently, encrypting or
// decrypting based on cfg.Decrypt. Failures are reported per file; the first
// error is returned after all workers finish.
func Run(cfg *config.Config) error {
	start := time.Now()

	key, err := cfg.CipherKey()
	if err != nil {
		return err
	}

	files, err := resolveFiles(cfg.Files, cfg.Decrypt)
	if err != nil {
		return err
	}

	results := make(chan result, len(files))

	group := errgroup.Group{}
	group.SetLimit(cfg.Parallel)

	printed := make(chan struct{})

	var processed, errored int

	var totalSize int64

	go func() {
		defer close(printed)

		for res := range results {
			if res.Err != nil {
				errored++

				fmt.Fprintf(os.Stderr, "Error processing %q: %v\n", res.Input, res.Err)

				continue
			}

			processed++

			totalSize += res.OutputSize

			if !cfg.Quiet {
				fmt.Printf("Processed %q -> %q\n", res.Input, res.Output) //nolint:forbidigo
			}
		}
	}()

	for _, file := range files {
		group.Go(func() error {
			var (
				outPath string
				err     error
			)

			if cfg.Decrypt {
				outPath, err = DecryptFile(key, file, cfg.Output)
			} else {
				outPath, err = EncryptFile(key, file, cfg.Output)
			}

			if err != nil {
				results <- result{Input: file, Err: err}

				return err
			}

			var size int64
			if info, statErr := os.Stat(outPath); statErr == nil {
				size = info.Size()
			}

			results <- result{Input: file, Output: outPath, OutputSize: size}

			return nil
		})
	}

	err = group.Wait()

	close(results)

	<-printed

	if cfg.Stats {
		printStats(processed, errored, totalSize, time.Since(start))
	}

	if err != nil {
		return fmt.Errorf("processing files: %w", err)
	}

	return nil
}

// resolveFiles expands positional arguments into a list of files to process.
// Files are added directly; directories are walked for regular files. In
// decrypt mode only container files are selected from directories, in
// encrypt mode containers are skipped so a directory can be sealed twice
// without double-encrypting.
func resolveFiles(args []string, decrypt bool) ([]string, error) {
	seen := make(map[string]struct{})

	var files []string

	add := func(path string) {
		if _, ok := seen[path]; ok {
			return
		}

		seen[path] = struct{}{}
		files = append(files, path)
	}

	for _, arg := range args {
		arg = filepath.Clean(arg)

		info, err := os.Stat(arg)
		if err != nil {
			return nil, fmt.Errorf("stat %q: %w", arg, err)
		}

		if !info.IsDir() {
			add(arg)

			continue
		}

		err = filepath.WalkDir(arg, func(path string, entry fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if !entry.Type().IsRegular() {
				return nil
			}

			isContainer := strings.HasSuffix(path, container.Suffix)
			if decrypt != isContainer {
				return nil
			}

			add(path)

			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walking %q: %w", arg, err)
		}
	}

	if len(files) == 0 {
		return nil, fmt.Errorf("no files to process: %v", args)
	}

	return files, nil
}

func printStats(processed, errored int, totalSize int64, duration time.Duration) {
	fmt.Fprintf(os.Stderr, "\nStats\n")
	fmt.Fprintf(os.Stderr, "  Processed: %d\n", processed)
	fmt.Fprintf(os.Stderr, "  Errors:    %d\n", errored)
	//nolint:gosec // totalSize is always non-negative (sum of file sizes)
	fmt.Fprintf(os.Stderr, "  Size:      %s\n", humanize.IBytes(uint64(max(0, totalSize))))
	fmt.Fprintf(os.Stderr, "  Duration:  %s\n", duration.Round(time.Millisecond))
}
