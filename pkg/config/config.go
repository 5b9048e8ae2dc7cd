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

package config

import (
	"fmt"
	"os"

	"github.com/pivotscan/pivotscan/pkg/pivot"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

type LogConfig struct {
	LogPrefix             string `yaml:"logPrefix"`             // "" logs to stdout
	LogFileRotationSizeMB int    `yaml:"logFileRotationSizeMB"` // rotation threshold per log file
}

// PivotJob is one configured pivot run over the data file.
type PivotJob struct {
	Name        string   `yaml:"name"`
	ValueFields []string `yaml:"valueFields"`
	GroupFields []string `yaml:"groupFields"`

	// RowLimit bounds the rows considered; omit or set -1 for all rows.
	RowLimit *int64 `yaml:"rowLimit"`

	// Output is the pivot CSV path; omit to skip writing.
	Output string `yaml:"output"`

	Include        map[string][]string  `yaml:"include"`
	Exclude        map[string][]string  `yaml:"exclude"`
	NumericInclude map[string][]float64 `yaml:"numericInclude"`
	NumericExclude map[string][]float64 `yaml:"numericExclude"`
}

type Configuration struct {
	DataFile string     `yaml:"dataFile"`
	Log      LogConfig  `yaml:"log"`
	Jobs     []PivotJob `yaml:"jobs"`
}

func (j *PivotJob) Limit() int64 {
	if j.RowLimit == nil {
		return -1
	}
	return *j.RowLimit
}

func (j *PivotJob) IncludeFilter() pivot.Filter {
	return pivot.Filter{Strings: j.Include, Numbers: j.NumericInclude}
}

func (j *PivotJob) ExcludeFilter() pivot.Filter {
	return pivot.Filter{Strings: j.Exclude, Numbers: j.NumericExclude}
}

// ExtractConfigData parses the yaml contents, applies defaults and
// validates the result.
func ExtractConfigData(yamlData []byte) (Configuration, error) {
	var config Configuration
	err := yaml.Unmarshal(yamlData, &config)
	if err != nil {
		log.Errorf("ExtractConfigData: failed to unmarshal yaml, err: %v", err)
		return config, err
	}

	if config.DataFile == "" {
		return config, fmt.Errorf("ExtractConfigData: dataFile is required")
	}
	if len(config.Jobs) == 0 {
		return config, fmt.Errorf("ExtractConfigData: at least one pivot job is required")
	}
	if config.Log.LogFileRotationSizeMB <= 0 {
		config.Log.LogFileRotationSizeMB = 100
	}

	for i := range config.Jobs {
		job := &config.Jobs[i]
		if job.Name == "" {
			job.Name = fmt.Sprintf("job-%d", i+1)
		}
		if len(job.ValueFields) == 0 {
			return config, fmt.Errorf("ExtractConfigData: job %q has no valueFields", job.Name)
		}
		if len(job.GroupFields) == 0 {
			return config, fmt.Errorf("ExtractConfigData: job %q has no groupFields", job.Name)
		}
	}
	return config, nil
}

// ReadConfigFile loads a run configuration from fileName.
func ReadConfigFile(fileName string) (Configuration, error) {
	yamlData, err := os.ReadFile(fileName)
	if err != nil {
		log.Errorf("ReadConfigFile: failed to read config file %s, err: %v", fileName, err)
		return Configuration{}, err
	}
	return ExtractConfigData(yamlData)
}
