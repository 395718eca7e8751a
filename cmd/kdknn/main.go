// Command kdknn evaluates a k-nearest-neighbor classifier on a labeled
// dataset: a fixed-k analysis (train accuracy, cross validation, test
// accuracy) or a sweep of test accuracy over k = 1..max-k.
//
// Usage:
//
//	kdknn --data iris.csv --k 5
//	kdknn --data iris.csv.zst --k 0 --out csv > curve.csv
//	kdknn --sqlite iris.db --query 'SELECT sl, sw, pl, pw, species FROM iris' --k 7
//
// Every flag is also read from KDKNN_<FLAG> (dashes become underscores) and
// from the YAML file named by --config.
package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/spf13/pflag"

	"github.com/katalvlaran/kdknn/dataset"
	"github.com/katalvlaran/kdknn/eval"
	"github.com/katalvlaran/kdknn/logging"
	"github.com/katalvlaran/kdknn/record"
	"github.com/katalvlaran/kdknn/report"
)

func main() {
	err := run(context.Background(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	switch {
	case err == nil:
	case errors.Is(err, pflag.ErrHelp):
	default:
		fmt.Fprintf(os.Stderr, "kdknn: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	cfg, err := loadConfig(args)
	if err != nil {
		return err
	}

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	logger, err := logging.New(stderr, level, logging.Format(cfg.LogFormat))
	if err != nil {
		return err
	}

	data, err := load(ctx, cfg)
	if err != nil {
		return err
	}
	logger.Info("dataset loaded", logging.KeyRecords, len(data), logging.KeyDim, cfg.Dim)

	switch cfg.Normalize {
	case "minmax":
		_, err = dataset.MinMax(data)
	case "zscore":
		_, err = dataset.ZScore(data)
	}
	if err != nil {
		return err
	}

	k := cfg.K
	if k == askK {
		if k, err = promptK(stdin, stdout); err != nil {
			return err
		}
	}

	opts := []eval.Option{
		eval.WithLogger(logger),
		eval.WithTestPercent(cfg.TestPercent),
		eval.WithFolds(cfg.Folds),
	}
	if cfg.Seed != 0 {
		opts = append(opts, eval.WithSeed(cfg.Seed))
	}

	if k > 0 {
		a, err := eval.Analyze(data, k, opts...)
		if err != nil {
			return err
		}
		return a.Print(stdout)
	}

	points, err := eval.SweepK(data, cfg.MaxK, opts...)
	if err != nil {
		return err
	}
	if cfg.Out == "csv" {
		return report.WriteCSV(stdout, points)
	}
	if err = report.WriteTable(stdout, points); err != nil {
		return err
	}
	best, ok := report.Best(points)
	if ok {
		_, err = fmt.Fprintf(stdout, "\nbest k = %d (%.2f%%)\n", best.K, best.Accuracy)
	}

	return err
}

func load(ctx context.Context, cfg *Config) ([]record.Record[float64, string], error) {
	if cfg.SQLite != "" {
		db, err := dataset.OpenSQLite(cfg.SQLite)
		if err != nil {
			return nil, err
		}
		defer db.Close()

		return dataset.ReadSQL(ctx, db, cfg.Query, cfg.Dim)
	}

	sep, _ := utf8.DecodeRuneInString(cfg.Separator)
	return dataset.LoadFile(cfg.Data, cfg.Dim,
		dataset.WithSeparator(sep),
		dataset.WithHeader(cfg.Header),
		dataset.WithIDColumn(cfg.IDColumn),
	)
}

// promptK reads one non-negative integer from in.
func promptK(in io.Reader, out io.Writer) (int, error) {
	if _, err := fmt.Fprintln(out, "Enter value for K (or 0 for general analysis):"); err != nil {
		return 0, err
	}
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return 0, fmt.Errorf("kdknn: read k: %w", err)
	}
	k, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil || k < 0 {
		return 0, fmt.Errorf("%w: k=%q", errConfig, strings.TrimSpace(line))
	}

	return k, nil
}
