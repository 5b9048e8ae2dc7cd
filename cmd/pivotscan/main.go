/*
Copyright 2023.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/pivotscan/pivotscan/pkg/config"
	"github.com/pivotscan/pivotscan/pkg/pivot"
	"github.com/pivotscan/pivotscan/pkg/reader"
	"github.com/pivotscan/pivotscan/pkg/sampledataset"
	"github.com/pivotscan/pivotscan/pkg/writer"
	log "github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

func initlogger() {
	customFormatter := new(log.TextFormatter)
	customFormatter.TimestampFormat = "2006-01-02 15:04:05"
	customFormatter.FullTimestamp = true
	log.SetFormatter(customFormatter)
}

func usage() {
	fmt.Fprintf(os.Stderr, "usage:\n")
	fmt.Fprintf(os.Stderr, "  pivotscan run <config.yaml>\n")
	fmt.Fprintf(os.Stderr, "  pivotscan generate <path> <rows> [seed]\n")
	os.Exit(1)
}

func main() {
	initlogger()
	if len(os.Args) < 2 {
		usage()
	}

	switch os.Args[1] {
	case "run":
		if len(os.Args) != 3 {
			usage()
		}
		runJobs(os.Args[2])
	case "generate":
		if len(os.Args) != 4 && len(os.Args) != 5 {
			usage()
		}
		generate(os.Args[2:])
	default:
		log.Errorf("main: unknown command %q", os.Args[1])
		usage()
	}
}

func configureLogOutput(logCfg config.LogConfig) {
	if logCfg.LogPrefix == "" {
		log.SetOutput(os.Stdout)
		return
	}
	if err := os.MkdirAll(logCfg.LogPrefix, 0764); err != nil {
		log.Errorf("configureLogOutput: failed to create log dir %s, err: %v", logCfg.LogPrefix, err)
		os.Exit(1)
	}
	log.SetOutput(&lumberjack.Logger{
		Filename:   logCfg.LogPrefix + "pivotscan.log",
		MaxSize:    logCfg.LogFileRotationSizeMB,
		MaxBackups: 30,
		MaxAge:     1,
		Compress:   true,
	})
}

func runJobs(cfgPath string) {
	programStart := time.Now()

	cfg, err := config.ReadConfigFile(cfgPath)
	if err != nil {
		log.Errorf("runJobs: failed to load config, err: %v", err)
		os.Exit(1)
	}
	configureLogOutput(cfg.Log)

	for _, job := range cfg.Jobs {
		if err := runJob(cfg.DataFile, job); err != nil {
			log.Errorf("runJobs: job %q failed, err: %v", job.Name, err)
			os.Exit(1)
		}
	}

	log.Infof("The program finished running after %v", time.Since(programStart))
}

func runJob(dataFile string, job config.PivotJob) error {
	src, err := openSource(dataFile)
	if err != nil {
		return err
	}
	defer src.Close()

	var out writer.RowWriter
	var csvOut *writer.CSVWriter
	if job.Output != "" {
		csvOut, err = writer.NewCSVWriter(job.Output)
		if err != nil {
			return err
		}
		out = csvOut
	}

	res, err := pivot.Scan(src, pivot.ScanOptions{
		ValueFields: job.ValueFields,
		GroupFields: job.GroupFields,
		RowLimit:    job.Limit(),
		Include:     job.IncludeFilter(),
		Exclude:     job.ExcludeFilter(),
		Output:      out,
	})
	if csvOut != nil {
		if closeErr := csvOut.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}
	if err != nil {
		return err
	}

	log.Infof("runJob: job %q produced %d groups", job.Name, len(res.Entries))
	return nil
}

func openSource(dataFile string) (reader.RecordSource, error) {
	if strings.HasSuffix(dataFile, ".json") || strings.HasSuffix(dataFile, ".jsonl") {
		return reader.NewJSONLinesSource(dataFile)
	}
	return reader.NewCSVSource(dataFile)
}

func generate(args []string) {
	path := args[0]
	rows, err := strconv.Atoi(args[1])
	if err != nil || rows < 0 {
		log.Errorf("generate: invalid row count %q", args[1])
		os.Exit(1)
	}
	var seed int64 = 1
	if len(args) == 3 {
		seed, err = strconv.ParseInt(args[2], 10, 64)
		if err != nil {
			log.Errorf("generate: invalid seed %q", args[2])
			os.Exit(1)
		}
	}
	if err := sampledataset.WriteDataset(path, rows, seed); err != nil {
		log.Errorf("generate: failed to write dataset, err: %v", err)
		os.Exit(1)
	}
}
