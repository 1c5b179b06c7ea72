package cli

import (
	"context"
	"fmt"
	"log"
	"mime"
	"os"
	"path/filepath"
	"strconv"

	"github.com/stitchdesk/stitchdesk/internal/client/services"
)

// ListClients fetches one server page of clients and renders it. An optional
// search term is forwarded as a query parameter; windowing of the returned
// page stays on the server side here.
func (a *App) ListClients(ctx context.Context) error {
	page, err := GetInt(a.reader, "Page", 1, os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	search, err := getSimpleText(a.reader, "Search (empty for all)", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	filters := map[string]string{}
	if search != "" {
		filters["search"] = search
	}

	res, err := a.clients.List(ctx, page, 10, filters)
	if err != nil {
		log.Printf("Error: %s", err.Error())
		return err
	}

	rows := make([][]string, 0, len(res.Data))
	for _, c := range res.Data {
		rows = append(rows, []string{
			strconv.FormatInt(c.ID, 10), c.Name, c.Email, c.City, c.Status,
		})
	}
	renderTable(os.Stdout, []column{
		{Header: "ID", Percent: 8},
		{Header: "NAME", Percent: 30},
		{Header: "EMAIL", Percent: 30},
		{Header: "CITY", Percent: 17},
		{Header: "STATUS", Percent: 15},
	}, rows)
	fmt.Printf("page %d/%d, %d total\n", res.CurrentPage, res.LastPage, res.Total)
	return nil
}

// ShowClient fetches and prints a single client, including brand sub-records
// with their logo URLs resolved against the asset base.
func (a *App) ShowClient(ctx context.Context) error {
	id, err := a.promptID("Enter client id to show")
	if err != nil {
		return err
	}

	c, err := a.clients.GetByID(ctx, id)
	if err != nil {
		log.Printf("Error: %s", err.Error())
		return err
	}

	fmt.Println(c.Name)
	fmt.Printf("Email: %s\n", c.Email)
	fmt.Printf("Contact: %s\n", c.Contact)
	fmt.Printf("Address: %s, %s, %s %s\n", c.Street, c.City, c.Province, c.ZipCode)
	fmt.Printf("Status: %s\n", c.Status)
	for _, b := range c.Brands {
		if b.LogoPath != "" {
			fmt.Printf("Brand: %s (logo: %s)\n", b.Name, a.api.AssetURL(b.LogoPath))
		} else {
			fmt.Printf("Brand: %s\n", b.Name)
		}
	}
	return nil
}

// AddClient prompts for client fields plus an optional brand with a logo
// file. With a logo the create goes out as a multipart upload with progress
// reported to the terminal.
func (a *App) AddClient(ctx context.Context) error {
	in := services.ClientInput{Status: "active"}
	var err error

	if in.Name, err = getSimpleText(a.reader, "Name", os.Stdout); err != nil {
		return err
	}
	if in.Email, err = getSimpleText(a.reader, "Email", os.Stdout); err != nil {
		return err
	}
	if in.Contact, err = getSimpleText(a.reader, "Contact number", os.Stdout); err != nil {
		return err
	}
	if in.City, err = getSimpleText(a.reader, "City", os.Stdout); err != nil {
		return err
	}

	brandName, err := getSimpleText(a.reader, "Brand name (empty to skip)", os.Stdout)
	if err != nil {
		return err
	}
	var logoFile *os.File
	if brandName != "" {
		brand := services.BrandInput{Name: brandName}
		logoPath, err := getSimpleText(a.reader, "Logo file path (empty to skip)", os.Stdout)
		if err != nil {
			return err
		}
		if logoPath != "" {
			logoFile, err = os.Open(logoPath)
			if err != nil {
				log.Printf("error: %v", err)
				return err
			}
			defer logoFile.Close()
			brand.Logo = &services.Upload{
				FileName:    filepath.Base(logoPath),
				ContentType: mime.TypeByExtension(filepath.Ext(logoPath)),
				Reader:      logoFile,
			}
		}
		in.Brands = []services.BrandInput{brand}
	}

	created, err := a.clients.Create(ctx, in, func(sent, total int64) {
		fmt.Printf("\ruploading %d/%d bytes", sent, total)
	})
	if logoFile != nil {
		fmt.Println()
	}
	if err != nil {
		printRequestError(err)
		return err
	}

	log.Printf("Created client %d", created.ID)
	return nil
}

// UpdateClient edits an existing client. Current values are offered as
// defaults; an empty answer keeps them. Attaching a new brand logo switches
// the request to multipart with the method override field set.
func (a *App) UpdateClient(ctx context.Context) error {
	id, err := a.promptID("Enter client id to edit")
	if err != nil {
		return err
	}

	current, err := a.clients.GetByID(ctx, id)
	if err != nil {
		log.Printf("Error: %s", err.Error())
		return err
	}

	in := services.ClientInput{
		Name:     current.Name,
		Email:    current.Email,
		Contact:  current.Contact,
		Street:   current.Street,
		City:     current.City,
		Province: current.Province,
		ZipCode:  current.ZipCode,
		Status:   current.Status,
	}
	for _, b := range current.Brands {
		in.Brands = append(in.Brands, services.BrandInput{Name: b.Name})
	}

	prompt := func(label, def string, dst *string) error {
		v, err := getSimpleText(a.reader, fmt.Sprintf("%s [%s]", label, def), os.Stdout)
		if err != nil {
			return err
		}
		if v != "" {
			*dst = v
		}
		return nil
	}
	if err := prompt("Name", in.Name, &in.Name); err != nil {
		return err
	}
	if err := prompt("Email", in.Email, &in.Email); err != nil {
		return err
	}
	if err := prompt("City", in.City, &in.City); err != nil {
		return err
	}
	if err := prompt("Status", in.Status, &in.Status); err != nil {
		return err
	}

	logoPath, err := getSimpleText(a.reader, "New brand logo path (empty to keep)", os.Stdout)
	if err != nil {
		return err
	}
	var logoFile *os.File
	if logoPath != "" && len(in.Brands) > 0 {
		logoFile, err = os.Open(logoPath)
		if err != nil {
			log.Printf("error: %v", err)
			return err
		}
		defer logoFile.Close()
		in.Brands[0].Logo = &services.Upload{
			FileName:    filepath.Base(logoPath),
			ContentType: mime.TypeByExtension(filepath.Ext(logoPath)),
			Reader:      logoFile,
		}
	}

	updated, err := a.clients.Update(ctx, id, in, func(sent, total int64) {
		fmt.Printf("\ruploading %d/%d bytes", sent, total)
	})
	if logoFile != nil {
		fmt.Println()
	}
	if err != nil {
		printRequestError(err)
		return err
	}

	log.Printf("Updated client %d", updated.ID)
	return nil
}

// DeleteClient removes a client by id.
func (a *App) DeleteClient(ctx context.Context) error {
	id, err := a.promptID("Enter client id to delete")
	if err != nil {
		return err
	}

	if err := a.clients.Delete(ctx, id); err != nil {
		log.Printf("Error: %s", err.Error())
		return err
	}
	log.Printf("Deleted")
	return nil
}

func (a *App) promptID(prompt string) (int64, error) {
	s, err := getSimpleText(a.reader, prompt, os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return 0, err
	}
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		log.Printf("invalid id: %v", err)
		return 0, err
	}
	return id, nil
}
