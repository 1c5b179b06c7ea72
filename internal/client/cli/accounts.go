package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
)

// ListAccounts fetches one page of employee accounts, optionally narrowed to
// a role, and renders it.
func (a *App) ListAccounts(ctx context.Context) error {
	role, err := getSimpleText(a.reader, "Role (empty for all)", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	filters := map[string]string{}
	if role != "" {
		filters["role"] = role
	}

	res, err := a.accounts.List(ctx, 1, 25, filters)
	if err != nil {
		log.Printf("Error: %s", err.Error())
		return err
	}

	rows := make([][]string, 0, len(res.Data))
	for _, acc := range res.Data {
		rows = append(rows, []string{
			strconv.FormatInt(acc.ID, 10), acc.Name, acc.Email, acc.Role, acc.Status,
		})
	}
	renderTable(os.Stdout, []column{
		{Header: "ID", Percent: 8},
		{Header: "NAME", Percent: 28},
		{Header: "EMAIL", Percent: 32},
		{Header: "ROLE", Percent: 17},
		{Header: "STATUS", Percent: 15},
	}, rows)
	fmt.Printf("page %d/%d, %d total\n", res.CurrentPage, res.LastPage, res.Total)
	return nil
}
