// Command report renders the current ledger snapshot as an Excel workbook
// without going through the API: it reads the snapshot file directly, so it
// works offline and against backups.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/ghuser/stockroom/pkg/config"
	"github.com/ghuser/stockroom/pkg/logger"
	"github.com/ghuser/stockroom/services/export/excel"
	"github.com/ghuser/stockroom/services/ledger/infrastructure/persistence/jsonfile"
)

func main() {
	app := &cli.App{
		Name:  "report",
		Usage: "export the inventory ledger snapshot to an xlsx workbook",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "snapshot",
				Usage:   "path to the ledger snapshot file",
				Value:   "data/warehouse.json",
				EnvVars: []string{"SNAPSHOT_PATH"},
			},
			&cli.StringFlag{
				Name:    "out",
				Aliases: []string{"o"},
				Usage:   "output workbook path",
				Value:   "inventory.xlsx",
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		slog.Error("report failed", "error", err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	log := logger.New(&config.Config{LogLevel: "info"})

	store := jsonfile.NewStore(c.String("snapshot"), log)
	snap := store.Load()
	if len(snap.Products) == 0 && len(snap.InboundRecords) == 0 && len(snap.OutboundRecords) == 0 {
		log.Warn("snapshot is empty, workbook will contain headers only", "path", c.String("snapshot"))
	}

	f, err := excel.BuildWorkbook(snap.Products, snap.InboundRecords, snap.OutboundRecords)
	if err != nil {
		return fmt.Errorf("build workbook: %w", err)
	}
	defer f.Close() //nolint:errcheck

	out := c.String("out")
	if err := f.SaveAs(out); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}

	log.Info("workbook written",
		"path", out,
		"products", len(snap.Products),
		"inbound_records", len(snap.InboundRecords),
		"outbound_records", len(snap.OutboundRecords),
	)
	return nil
}
