/*
 * Copyright (C) 2020-2022, IrineSistiana
 *
 * This file is part of slist.
 *
 * slist is free software: you can redistribute it and/or modify
 * it under the terms of the GNU General Public License as published by
 * the Free Software Foundation, either version 3 of the License, or
 * (at your option) any later version.
 *
 * slist is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with this program.  If not, see <https://www.gnu.org/licenses/>.
 */

package coremain

import (
	"context"
	"fmt"
	"io"
	"runtime"

	"github.com/IrineSistiana/slist/mlog"
	"github.com/IrineSistiana/slist/pkg/script"
	"github.com/IrineSistiana/slist/pkg/utils"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

var rootCmd = &cobra.Command{
	Use:   "slist",
	Short: "Run singly linked list scripts.",
}

type runFlags struct {
	c      []string
	output string
	jobs   int
}

var rf = runFlags{}

func init() {
	runCmd := &cobra.Command{
		Use:          "run",
		Short:        "Run script files and print the resulting lists.",
		Args:         cobra.NoArgs,
		RunE:         runScripts,
		SilenceUsage: true,
	}
	fs := runCmd.Flags()
	fs.StringSliceVarP(&rf.c, "config", "c", nil, "script file, can be repeated")
	fs.StringVarP(&rf.output, "output", "o", "yaml", "output format, yaml or text")
	fs.IntVarP(&rf.jobs, "jobs", "j", 0, "max number of files that run in parallel, default is GOMAXPROCS")
	_ = runCmd.MarkFlagRequired("config")
	rootCmd.AddCommand(runCmd)

	rootCmd.AddCommand(&cobra.Command{
		Use:   "ops",
		Short: "Print all available op types.",
		Run: func(cmd *cobra.Command, args []string) {
			for _, typ := range script.AllOpTypes() {
				fmt.Fprintln(cmd.OutOrStdout(), typ)
			}
		},
	})
}

func AddSubCmd(c *cobra.Command) {
	rootCmd.AddCommand(c)
}

func Run() error {
	return rootCmd.Execute()
}

func runScripts(cmd *cobra.Command, _ []string) error {
	jobs := rf.jobs
	utils.SetDefaultNum(&jobs, runtime.GOMAXPROCS(0))
	if !utils.CheckNumRange(jobs, 1, 1024) {
		return fmt.Errorf("invalid jobs number %d", jobs)
	}
	if rf.output != "yaml" && rf.output != "text" {
		return fmt.Errorf("invalid output format %s", rf.output)
	}

	reports, err := RunFiles(cmd.Context(), rf.c, jobs)
	if err != nil {
		return err
	}
	return writeReports(cmd.OutOrStdout(), rf.output, rf.c, reports)
}

// RunFiles runs script files with at most jobs files in parallel.
// Every file has its own lists, no list is shared between goroutines.
// Reports are in the same order as files.
func RunFiles(ctx context.Context, files []string, jobs int) ([]*script.Report, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)

	reports := make([]*script.Report, len(files))
	for i, f := range files {
		i, f := i, f
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			rp, err := RunFile(f)
			if err != nil {
				return fmt.Errorf("%s: %w", f, err)
			}
			reports[i] = rp
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}

// RunFile loads and runs a single script file.
func RunFile(path string) (*script.Report, error) {
	cfg, err := LoadConfig(path)
	if err != nil {
		return nil, err
	}

	lg := mlog.L()
	if cfg.Log != (mlog.LogConfig{}) {
		fileLg, closeLog, err := mlog.NewLogger(cfg.Log)
		if err != nil {
			return nil, fmt.Errorf("failed to init logger: %w", err)
		}
		defer closeLog()
		lg = fileLg
	}
	lg = lg.With(zap.String("file", path))
	defer lg.Sync()

	return script.NewRunner(lg).Run(&cfg.Script)
}

type fileReport struct {
	File          string `yaml:"file"`
	script.Report `yaml:",inline"`
}

func writeReports(w io.Writer, format string, files []string, reports []*script.Report) error {
	switch format {
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		for i, rp := range reports {
			if err := enc.Encode(fileReport{File: files[i], Report: *rp}); err != nil {
				return err
			}
		}
		return enc.Close()
	case "text":
		for i, rp := range reports {
			fmt.Fprintf(w, "== %s\n", files[i])
			for _, lr := range rp.Lists {
				fmt.Fprintf(w, "%s (%d): %v\n", lr.Tag, lr.Size, lr.Values)
			}
			for _, cr := range rp.Compare {
				fmt.Fprintf(w, "%s vs %s: equal=%t less=%t order=%d\n", cr.A, cr.B, cr.Equal, cr.Less, cr.Order)
			}
		}
		return nil
	default:
		return fmt.Errorf("invalid output format %s", format)
	}
}
