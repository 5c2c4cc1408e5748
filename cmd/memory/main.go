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
	"context"
	"fmt"
	"math/rand/v2"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"memory-ledger-go/internal/common"
	"memory-ledger-go/internal/config"
	"memory-ledger-go/internal/console"
	"memory-ledger-go/internal/game"
	"memory-ledger-go/internal/scheduler"

	"go.uber.org/zap"
)

const helpText = `Commands:
  <n>            open card n
  name <text>    type your name in the finish dialog
  submit         save your result
  close          close the finish dialog without saving
  new            deal a new game
  board          redraw the board
  quit           exit`

func main() {
	_, loggerCleanup := common.InitializeLogger()
	defer loggerCleanup()

	cfg, err := config.Load()
	if err != nil {
		zap.L().Fatal("Failed to load configuration", zap.Error(err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	results, err := common.InitializeResultsStore(ctx, cfg)
	if err != nil {
		zap.L().Fatal("Failed to initialize results store", zap.Error(err))
	}
	defer results.Close()

	loop := scheduler.NewLoop(64)
	go loop.Run(ctx)
	defer loop.Stop()

	view := console.NewGameView(os.Stdout, 6)
	rng := rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))

	opts := game.DefaultOptions()
	opts.Bucket = cfg.Results.Bucket
	opts.HoldPeriod = cfg.Game.HoldPeriod
	opts.TickInterval = cfg.Game.TickInterval

	g := game.New(loop, view, results, rng, opts)
	loop.Post(func() {
		if err := g.Start(ctx); err != nil {
			zap.L().Error("Failed to start game", zap.Error(err))
			cancel()
		}
	})

	fmt.Println(helpText)

	lines := make(chan string)
	go readLines(lines)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	for {
		select {
		case line, ok := <-lines:
			if !ok {
				zap.L().Info("Input closed, exiting")
				teardown(loop, g)
				return
			}
			if isQuit(line) {
				teardown(loop, g)
				return
			}
			loop.Post(func() { dispatch(ctx, g, view, line) })
		case <-sigChan:
			zap.L().Info("Shutdown signal received")
			teardown(loop, g)
			return
		case <-ctx.Done():
			return
		}
	}
}

func readLines(out chan<- string) {
	defer close(out)
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		out <- strings.TrimSpace(scanner.Text())
	}
}

func isQuit(line string) bool {
	return line == "quit" || line == "exit"
}

// teardown releases the hold and tick handles on the loop before it stops.
func teardown(loop *scheduler.Loop, g *game.Game) {
	done := make(chan struct{})
	if !loop.Post(func() {
		g.Teardown()
		close(done)
	}) {
		return
	}
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		zap.L().Warn("Timed out tearing down game")
	}
}

func dispatch(ctx context.Context, g *game.Game, view *console.GameView, line string) {
	cmd, arg, _ := strings.Cut(line, " ")

	switch cmd {
	case "":
		return
	case "name":
		if !g.Modal().IsOpen() {
			view.ShowNotice("The game is not finished yet")
			return
		}
		g.Modal().SetName(arg)
	case "submit":
		if !g.Modal().Submit() {
			view.ShowNotice("Enter a name first")
		}
	case "close":
		g.Modal().Close()
	case "new":
		if err := g.Restart(ctx); err != nil {
			zap.L().Error("Failed to restart game", zap.Error(err))
		}
	case "board":
		view.Draw()
	case "help":
		fmt.Println(helpText)
	default:
		index, err := strconv.Atoi(cmd)
		if err != nil {
			view.ShowNotice(fmt.Sprintf("Unknown command %q (try 'help')", line))
			return
		}
		outcome, err := g.ClickCard(index)
		if err != nil {
			view.ShowNotice(err.Error())
			return
		}
		zap.L().Debug("Card clicked", zap.Int("index", index), zap.Stringer("outcome", outcome))
	}
}
