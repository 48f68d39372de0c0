package cmd

import (
	"context"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"eventhub-cli/booking"
	"eventhub-cli/catalog"
	"eventhub-cli/config"
	"eventhub-cli/model"
	"eventhub-cli/service"
	"eventhub-cli/store"
)

func (c *cli) eventsCmd() *cobra.Command {
	var tab string
	cmd := &cobra.Command{
		Use:   "events",
		Short: "Print the event catalog",
		Long:  `Print the catalog of the selected site as a table. With EVENTHUB_CATALOG_URL set, the remote feed is used and cached.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			site := catalog.Load(c.variant)
			events := loadEvents(contextOf(cmd), c.cfg, site, cmd.ErrOrStderr())
			renderEvents(cmd.OutOrStdout(), site, site.Filter(events, tab))
			return nil
		},
	}
	cmd.Flags().StringVar(&tab, "tab", "all", "category tab key")
	return cmd
}

// loadEvents prefers a fresh cache, then the remote feed, then the built-in
// catalog. Feed failures are reported on warn and never fatal.
func loadEvents(ctx context.Context, cfg config.Config, site catalog.Site, warn io.Writer) []model.Event {
	if cfg.CatalogURL == "" {
		return site.Events
	}
	key := string(site.Variant)
	if cached, fresh, err := store.LoadCatalogCache(key, cfg.CatalogTTL); err == nil && fresh && len(cached) > 0 {
		return cached
	}

	ctx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()
	events, err := service.NewClient(nil, cfg.CatalogURL).GetEvents(ctx, key)
	if err != nil {
		log.Printf("[catalog] action=fallback site=%s err=%v", key, err)
		fmt.Fprintf(warn, "Не удалось загрузить афишу: %v. Показано встроенное расписание.\n", err)
		return site.Events
	}
	if err := store.SaveCatalogCache(key, events); err != nil {
		log.Printf("[catalog] action=cache_failed site=%s err=%v", key, err)
	}
	return events
}

func renderEvents(out io.Writer, site catalog.Site, events []model.Event) {
	rowConfigAutoMerge := table.RowConfig{AutoMerge: true}
	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.SetTitle(fmt.Sprintf("%s • %s", site.Name, site.Heading))
	t.Style().Format.Footer = text.FormatDefault
	t.AppendHeader(table.Row{"ID", "Событие", "Категория", "Дата", "Время", "Площадка", "Цена", "Мест"})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, WidthMax: 32},
		{Number: 3, AutoMerge: true},
		{Number: 6, WidthMax: 28, WidthMaxEnforcer: text.WrapSoft},
		{Number: 7, Align: text.AlignRight},
		{Number: 8, Align: text.AlignRight},
	})

	for _, event := range events {
		t.AppendRow(table.Row{
			event.ID,
			event.Title,
			event.Category,
			event.Date,
			event.Time,
			event.Venue,
			"от " + booking.FormatRub(event.Price),
			event.AvailableSeats,
		}, rowConfigAutoMerge)
	}
	t.AppendFooter(table.Row{"", fmt.Sprintf("Всего: %d", len(events))})
	t.Render()
}
