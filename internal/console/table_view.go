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
	"text/tabwriter"
	"time"

	"memory-ledger-go/internal/common"
	"memory-ledger-go/internal/models"
	"memory-ledger-go/internal/table"
)

// EmptyMessage is shown in place of rows when nothing matches.
const EmptyMessage = "there is no such data in the table"

const displayDateLayout = "Jan 2, 2006"

var _ table.View = (*TableView)(nil)

// TableView prints the transactions table with dates in loc.
type TableView struct {
	out io.Writer
	loc *time.Location
}

func NewTableView(out io.Writer, loc *time.Location) *TableView {
	if loc == nil {
		loc = time.Local
	}
	return &TableView{out: out, loc: loc}
}

func (v *TableView) RenderRows(rows []models.Transaction) {
	tw := tabwriter.NewWriter(v.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "APPLICATION\tTYPE CARD\tUSER\tLAST TRANSACTION\tSTATUS\tEND DATE\tTOTAL")
	for _, r := range rows {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			r.ApplicationName,
			r.TypeCard,
			r.UserName,
			r.DateLastTransaction.In(v.loc).Format(displayDateLayout),
			statusLabel(r.StatusTransaction),
			r.DateEndTransaction.In(v.loc).Format(displayDateLayout),
			common.FormatAmount(r.TotalSum))
		fmt.Fprintf(tw, "  %s\t%s\t%s\t%s\t\t\t\n",
			r.ApplicationUrl,
			r.NumberCard,
			r.EmailUser,
			common.FormatAmount(r.SumLastTransaction))
	}
	tw.Flush()
}

func (v *TableView) RenderEmpty() {
	fmt.Fprintln(v.out, EmptyMessage)
}

func statusLabel(s models.TransactionStatus) string {
	if s == models.StatusDone {
		return colorGreen + string(s) + colorReset
	}
	return colorRed + string(s) + colorReset
}
