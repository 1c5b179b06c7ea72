package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
)

// ListDropdowns fetches configured dropdown options, optionally narrowed to a
// single category such as "order_status" or "garment_type".
func (a *App) ListDropdowns(ctx context.Context) error {
	category, err := getSimpleText(a.reader, "Category (empty for all)", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	filters := map[string]string{}
	if category != "" {
		filters["category"] = category
	}

	res, err := a.dropdowns.List(ctx, 1, 50, filters)
	if err != nil {
		log.Printf("Error: %s", err.Error())
		return err
	}

	rows := make([][]string, 0, len(res.Data))
	for _, d := range res.Data {
		rows = append(rows, []string{
			strconv.FormatInt(d.ID, 10), d.Category, d.Value, d.Label, strconv.Itoa(d.SortOrder),
		})
	}
	renderTable(os.Stdout, []column{
		{Header: "ID", Percent: 8},
		{Header: "CATEGORY", Percent: 25},
		{Header: "VALUE", Percent: 27},
		{Header: "LABEL", Percent: 30},
		{Header: "ORD", Percent: 10},
	}, rows)
	fmt.Printf("page %d/%d, %d total\n", res.CurrentPage, res.LastPage, res.Total)
	return nil
}
