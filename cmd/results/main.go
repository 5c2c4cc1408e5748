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
	"context"
	"flag"
	"fmt"
	"os"

	"memory-ledger-go/internal/common"
	"memory-ledger-go/internal/config"
	"memory-ledger-go/internal/models"

	"go.uber.org/zap"
)

func printResult(rank int, result models.Result, isLast bool) {
	fmt.Printf("%s %3d. %-20s %10s  (%s)\n",
		common.BoxPrefix(isLast),
		rank,
		result.Name,
		common.FormatElapsed(result.Elapsed()),
		result.CreatedAt.Format("2006-01-02 15:04:05"))
}

func main() {
	ctx := context.Background()

	logger, loggerCleanup := common.InitializeLogger()
	defer loggerCleanup()

	// Parse command line flags
	bucketFlag := flag.String("bucket", "", "Results bucket to report (default: RESULTS_BUCKET)")
	limitFlag := flag.Int("limit", 10, "Number of results to show (0 for all)")
	flag.Parse()

	logger.Info("Starting results query")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	bucket := cfg.Results.Bucket
	if *bucketFlag != "" {
		bucket = *bucketFlag
	}

	backend, err := common.InitializeResultsStore(ctx, cfg)
	if err != nil {
		logger.Fatal("Failed to initialize results store", zap.Error(err))
	}
	defer backend.Close()

	results, err := backend.ListResults(ctx, bucket, *limitFlag)
	if err != nil {
		logger.Fatal("Failed to list results", zap.String("bucket", bucket), zap.Error(err))
	}

	total, err := backend.CountResults(ctx, bucket)
	if err != nil {
		logger.Fatal("Failed to count results", zap.String("bucket", bucket), zap.Error(err))
	}

	common.PrintHeader(os.Stdout, fmt.Sprintf("GAME RESULTS: %s", bucket), common.DefaultWidth)
	for i, r := range results {
		printResult(i+1, r, i == len(results)-1)
	}

	summary := fmt.Sprintf("SUMMARY: %d of %d results shown from bucket %q (backend: %s)",
		len(results), total, bucket, cfg.Results.Backend)
	common.PrintFooter(os.Stdout, summary, common.DefaultWidth)

	logger.Info("Results query completed",
		zap.String("bucket", bucket),
		zap.Int("shown", len(results)),
		zap.Int("total", total))
}
