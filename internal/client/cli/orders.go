package cli

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/stitchdesk/stitchdesk/internal/client/listkit"
	"github.com/stitchdesk/stitchdesk/internal/client/models"
	"github.com/stitchdesk/stitchdesk/internal/client/services"
)

// BrowseOrders fetches a batch of orders and opens the local browser over it.
func (a *App) BrowseOrders(ctx context.Context) error {
	res, err := a.orders.List(ctx, 1, 100, nil)
	if err != nil {
		log.Printf("Error: %s", err.Error())
		return err
	}
	a.browseOrders(res.Data, os.Stdout)
	return nil
}

func orderSearchFields(o models.Order) []string {
	return []string{o.GarmentType, o.Description, o.Status, o.Priority}
}

func orderField(o models.Order, field string) any {
	switch field {
	case "status":
		return o.Status
	case "priority":
		return o.Priority
	case "garment":
		return o.GarmentType
	case "client_id":
		return strconv.FormatInt(o.ClientID, 10)
	default:
		return nil
	}
}

func orderLess(column string) func(a, b models.Order) bool {
	return func(x, y models.Order) bool {
		switch column {
		case "id":
			return x.ID < y.ID
		case "quantity":
			return x.Quantity < y.Quantity
		case "due":
			return x.DueDate < y.DueDate
		case "status":
			return x.Status < y.Status
		default:
			return listkit.NaturalLess(orderField(x, column), orderField(y, column))
		}
	}
}

// browseOrders is an interactive view over an already-fetched slice: page
// windowing, substring search, field filters and column sorting all happen
// locally via listkit. Commands:
//
//	n / p           next / previous page
//	pp <n>          entries per page (resets to page 1)
//	g <n>           go to page n (out-of-range is ignored)
//	/<text>         search garment/description/status/priority
//	filter k=v      set a field filter ("all" or empty value clears it)
//	sort <column>   sort by column; same column again flips direction
//	q               leave the browser
func (a *App) browseOrders(all []models.Order, w io.Writer) {
	pager := listkit.NewPaginator(all, 10)
	filters := listkit.FilterSet{}
	var sortState listkit.SortState
	query := ""

	refresh := func() {
		view := listkit.FilterByQuery(all, query, orderSearchFields)
		view = listkit.ApplyFilters(view, filters, orderField)
		if sortState.Column != "" {
			view = append([]models.Order(nil), view...)
			listkit.Apply(sortState, view, orderLess(sortState.Column))
		}
		pager.SetItems(view)
	}
	refresh()

	for {
		a.renderOrderPage(w, pager.Page())

		line, err := getSimpleText(a.reader, "orders (n/p/pp/g///filter/sort/q)", w)
		if err != nil {
			return
		}
		switch {
		case line == "q":
			return
		case line == "n":
			pager.Next()
		case line == "p":
			pager.Prev()
		case strings.HasPrefix(line, "pp "):
			if n, err := strconv.Atoi(strings.TrimSpace(line[3:])); err == nil {
				pager.SetPerPage(n)
			}
		case strings.HasPrefix(line, "g "):
			if n, err := strconv.Atoi(strings.TrimSpace(line[2:])); err == nil {
				pager.SetPage(n)
			}
		case strings.HasPrefix(line, "/"):
			query = strings.TrimPrefix(line, "/")
			refresh()
		case strings.HasPrefix(line, "filter "):
			kv := strings.SplitN(strings.TrimSpace(line[7:]), "=", 2)
			if len(kv) == 2 {
				filters[kv[0]] = kv[1]
				refresh()
			}
		case strings.HasPrefix(line, "sort "):
			sortState.Click(strings.TrimSpace(line[5:]))
			refresh()
		}
	}
}

func (a *App) renderOrderPage(w io.Writer, page listkit.Page[models.Order]) {
	rows := make([][]string, 0, len(page.Items))
	for _, o := range page.Items {
		rows = append(rows, []string{
			strconv.FormatInt(o.ID, 10),
			strconv.FormatInt(o.ClientID, 10),
			o.GarmentType,
			strconv.Itoa(o.Quantity),
			o.Status,
			o.DueDate,
		})
	}
	renderTable(w, []column{
		{Header: "ID", Percent: 7},
		{Header: "CLIENT", Percent: 9},
		{Header: "GARMENT", Percent: 28},
		{Header: "QTY", Percent: 8},
		{Header: "STATUS", Percent: 24},
		{Header: "DUE", Percent: 24},
	}, rows)
	fmt.Fprintf(w, "page %d/%d, %d shown\n", page.CurrentPage, page.TotalPages, page.TotalItems)
}

// AddOrder prompts for order fields and creates the order. Garment types and
// statuses come from dropdown settings when the backend has them configured.
func (a *App) AddOrder(ctx context.Context) error {
	in := services.OrderInput{Status: "pending"}
	var err error

	clientID, err := a.promptID("Client id")
	if err != nil {
		return err
	}
	in.ClientID = clientID

	if in.GarmentType, err = getSimpleText(a.reader, "Garment type", os.Stdout); err != nil {
		return err
	}
	if in.Quantity, err = GetInt(a.reader, "Quantity", 1, os.Stdout); err != nil {
		return err
	}
	if in.DueDate, err = getSimpleText(a.reader, "Due date (YYYY-MM-DD, empty to skip)", os.Stdout); err != nil {
		return err
	}

	created, err := a.orders.Create(ctx, in, nil)
	if err != nil {
		printRequestError(err)
		return err
	}

	log.Printf("Created order %d", created.ID)
	return nil
}

// DeleteOrder removes an order by id.
func (a *App) DeleteOrder(ctx context.Context) error {
	id, err := a.promptID("Enter order id to delete")
	if err != nil {
		return err
	}

	if err := a.orders.Delete(ctx, id); err != nil {
		log.Printf("Error: %s", err.Error())
		return err
	}
	log.Printf("Deleted")
	return nil
}
