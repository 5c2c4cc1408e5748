/**
 * Copyright 2025-present Coinbase Global, Inc.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *  http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"memory-ledger-go/internal/common"
	"memory-ledger-go/internal/config"
	"memory-ledger-go/internal/console"
	"memory-ledger-go/internal/models"
	"memory-ledger-go/internal/table"

	"go.uber.org/zap"
)

const helpText = `Commands (an empty argument clears the filter):
  app <text>       filter by application name
  user <text>      filter by user name
  status <text>    filter by status
  from <date>      first day of the range (YYYY-MM-DD)
  to <date>        last day of the range (YYYY-MM-DD)
  sortby <field>   one of: %s
  sort             cycle DEFAULT -> ASC -> DESC
  state            show the current filters and sort
  quit             exit
`

func main() {
	datasetFlag := flag.String("dataset", "", "Path to the transactions YAML file (default: DATASET_FILE)")
	flag.Parse()

	_, loggerCleanup := common.InitializeLogger()
	defer loggerCleanup()

	cfg, err := config.Load()
	if err != nil {
		zap.L().Fatal("Failed to load configuration", zap.Error(err))
	}

	datasetFile := cfg.Table.DatasetFile
	if *datasetFlag != "" {
		datasetFile = *datasetFlag
	}

	rows, err := common.LoadDataset(datasetFile)
	if err != nil {
		zap.L().Fatal("Failed to load dataset", zap.String("file", datasetFile), zap.Error(err))
	}
	zap.L().Info("Loaded transactions", zap.String("file", datasetFile), zap.Int("count", len(rows)))

	fields := make([]string, len(models.SortFields))
	for i, f := range models.SortFields {
		fields[i] = string(f)
	}
	fmt.Printf(helpText, strings.Join(fields, ", "))

	view := console.NewTableView(os.Stdout, cfg.Table.Location)
	controller := table.NewController(table.NewDataset(rows), view, cfg.Table.Location, models.FieldApplicationName)

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "quit" || line == "exit" {
			return
		}
		if err := dispatch(controller, line); err != nil {
			fmt.Printf("! %v\n", err)
		}
	}
}

func dispatch(c *table.Controller, line string) error {
	cmd, arg, _ := strings.Cut(line, " ")
	arg = strings.TrimSpace(arg)

	switch cmd {
	case "":
		return nil
	case "app":
		c.OnAppNameInput(arg)
	case "user":
		c.OnUserNameInput(arg)
	case "status":
		c.OnStatusInput(arg)
	case "from":
		return c.OnDateStartInput(arg)
	case "to":
		return c.OnDateEndInput(arg)
	case "sortby":
		return c.OnSortFieldChange(arg)
	case "sort":
		fmt.Printf("sort: %s\n", c.OnSortButtonClick())
	case "state":
		printState(c.State())
	default:
		return fmt.Errorf("unknown command %q", cmd)
	}
	return nil
}

func formatBound(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return t.Format(table.DateLayout)
}

func printState(s models.QueryState) {
	f := s.Filter
	fmt.Printf("app=%q user=%q status=%q from=%s to=%s sort=%s %s\n",
		f.AppNameQuery, f.UserNameQuery, f.StatusQuery,
		formatBound(f.Range.Start), formatBound(f.Range.End),
		s.Sort.Field, s.Sort.Direction)
}
