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

package console

import (
	"fmt"
	"io"
	"strings"

	"memory-ledger-go/internal/common"
	"memory-ledger-go/internal/game"
)

// ANSI color helpers for console output.
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorCyan   = "\033[36m"
	colorGray   = "\033[90m"
)

var _ game.View = (*GameView)(nil)

type cardCell struct {
	key      string
	opened   bool
	finished bool
}

// GameView draws the board as a grid of numbered cells. The board is redrawn
// whenever a card changes.
type GameView struct {
	out     io.Writer
	columns int

	cells         []*cardCell
	time          string
	modalOpen     bool
	submitEnabled bool
}

func NewGameView(out io.Writer, columns int) *GameView {
	if columns <= 0 {
		columns = 6
	}
	return &GameView{out: out, columns: columns, time: "00:00"}
}

func (v *GameView) CreateCard(key string, _ func()) game.CardHandle {
	cell := &cardCell{key: key}
	v.cells = append(v.cells, cell)
	return cell
}

func (v *GameView) SetOpened(h game.CardHandle, opened bool) {
	h.(*cardCell).opened = opened
	v.Draw()
}

func (v *GameView) SetFinished(h game.CardHandle, finished bool) {
	h.(*cardCell).finished = finished
}

// RenderCardList replaces the board with handles, in order.
func (v *GameView) RenderCardList(handles []game.CardHandle) {
	v.cells = v.cells[:0]
	for _, h := range handles {
		v.cells = append(v.cells, h.(*cardCell))
	}
	v.Draw()
}

// ShowTime only records the time; it is printed with the next board.
func (v *GameView) ShowTime(formatted string) {
	v.time = formatted
}

func (v *GameView) OpenModal() {
	v.modalOpen = true
	common.PrintHeader(v.out, fmt.Sprintf("%sYOU WON in %s%s", colorGreen, v.time, colorReset), 40)
	fmt.Fprintln(v.out, "Type 'name <your name>' then 'submit', or 'close' to skip.")
}

func (v *GameView) CloseModal() {
	v.modalOpen = false
}

func (v *GameView) SetSubmitEnabled(enabled bool) {
	if v.modalOpen && enabled != v.submitEnabled && enabled {
		fmt.Fprintf(v.out, "%ssubmit enabled%s\n", colorGray, colorReset)
	}
	v.submitEnabled = enabled
}

func (v *GameView) ShowNotice(message string) {
	fmt.Fprintf(v.out, "%s%s%s\n", colorYellow, message, colorReset)
}

func (v *GameView) ModalOpen() bool     { return v.modalOpen }
func (v *GameView) SubmitEnabled() bool { return v.submitEnabled }

// Draw prints the board and the current time.
func (v *GameView) Draw() {
	fmt.Fprintf(v.out, "\n%s[%s]%s\n", colorCyan, v.time, colorReset)
	var row strings.Builder
	for i, c := range v.cells {
		row.WriteString(fmt.Sprintf("%2d:%s ", i, c.face()))
		if (i+1)%v.columns == 0 || i == len(v.cells)-1 {
			fmt.Fprintln(v.out, strings.TrimRight(row.String(), " "))
			row.Reset()
		}
	}
}

func (c *cardCell) face() string {
	switch {
	case c.finished:
		return colorGreen + "(" + c.key + ")" + colorReset
	case c.opened:
		return "[" + c.key + "]"
	default:
		return "[" + colorGray + "?" + colorReset + "]"
	}
}
