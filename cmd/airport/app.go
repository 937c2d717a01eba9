package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/KaramHazza3/Airport-Ticket-Booking-System-Unit-Testing/internal/config"
	"github.com/KaramHazza3/Airport-Ticket-Booking-System-Unit-Testing/internal/console"
	"github.com/KaramHazza3/Airport-Ticket-Booking-System-Unit-Testing/internal/database"
	"github.com/KaramHazza3/Airport-Ticket-Booking-System-Unit-Testing/internal/importer"
	"github.com/KaramHazza3/Airport-Ticket-Booking-System-Unit-Testing/internal/inventory"
	"github.com/KaramHazza3/Airport-Ticket-Booking-System-Unit-Testing/internal/logging"
	"github.com/KaramHazza3/Airport-Ticket-Booking-System-Unit-Testing/internal/rules"
	"github.com/KaramHazza3/Airport-Ticket-Booking-System-Unit-Testing/internal/service"
	"github.com/KaramHazza3/Airport-Ticket-Booking-System-Unit-Testing/shared/models"
)

func newApp(in io.Reader, out io.Writer) *cli.App {
	return &cli.App{
		Name:      "airport",
		Usage:     "Book airport tickets and manage flights",
		Writer:    out,
		ErrWriter: os.Stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "path to a YAML config file"},
			&cli.StringFlag{Name: "storage", Usage: "storage driver: file, memory or postgres"},
			&cli.StringFlag{Name: "data-dir", Usage: "directory of the JSON collections"},
			&cli.StringFlag{Name: "log-level", Usage: "log level"},
		},
		Action: func(c *cli.Context) error {
			app, err := setup(c)
			if err != nil {
				return err
			}
			defer app.close()

			return console.New(in, out, app.deps).Run(c.Context)
		},
		Commands: []*cli.Command{
			{
				Name:      "import",
				ArgsUsage: "<csv_file>",
				Usage:     "import flights from a CSV file",
				Action: func(c *cli.Context) error {
					app, err := setup(c)
					if err != nil {
						return err
					}
					defer app.close()

					flights, err := importer.ImportFlights(c.Context, app.deps.Importer, app.deps.Flights, c.Args().First())
					if err != nil {
						return err
					}
					fmt.Fprintf(out, "Imported %d flights\n", len(flights))
					return nil
				},
			},
			{
				Name:      "rules",
				ArgsUsage: "[user|flight|booking]",
				Usage:     "show validation rules",
				Action: func(c *cli.Context) error {
					entities := rules.Entities()
					if c.Args().Present() {
						entities = []string{c.Args().First()}
					}
					for _, entity := range entities {
						rows, ok := rules.For(entity)
						if !ok {
							return fmt.Errorf("unknown entity %q, want one of %s", entity, strings.Join(rules.Entities(), ", "))
						}
						fmt.Fprintf(out, "%s\n%s", strings.ToUpper(entity), rules.Format(rows))
					}
					return nil
				},
			},
		},
	}
}

type application struct {
	deps  console.Deps
	close func()
}

// setup loads configuration, applies flag overrides and wires the services
func setup(c *cli.Context) (*application, error) {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return nil, err
	}
	if c.IsSet("storage") {
		cfg.Storage.Driver = c.String("storage")
	}
	if c.IsSet("data-dir") {
		cfg.Storage.DataDir = c.String("data-dir")
	}
	if c.IsSet("log-level") {
		cfg.Log.Level = c.String("log-level")
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	log, err := logging.New(cfg.Log.Level, cfg.Log.Format, c.App.ErrWriter)
	if err != nil {
		return nil, err
	}

	store, closeStore, err := openStore(c.Context, cfg.Storage)
	if err != nil {
		return nil, err
	}
	log.WithField("driver", cfg.Storage.Driver).Debug("storage opened")

	users := service.NewUserService(database.NewCollection[models.User](store), log)
	flights := service.NewFlightService(database.NewCollection[models.Flight](store), log)
	bookings := service.NewBookingService(database.NewCollection[models.Booking](store), log)

	return &application{
		deps: console.Deps{
			Auth:      service.NewAuthService(users, log),
			Flights:   flights,
			Bookings:  bookings,
			Inventory: inventory.New(flights, bookings, log),
			Importer:  importer.NewFlightImporter(log),
			Log:       log,
		},
		close: closeStore,
	}, nil
}

func openStore(ctx context.Context, cfg config.StorageConfig) (database.Store, func(), error) {
	switch cfg.Driver {
	case config.DriverMemory:
		return database.NewMemoryStore(), func() {}, nil
	case config.DriverPostgres:
		store, pool, err := database.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		return store, pool.Close, nil
	default:
		return database.NewFileStore(cfg.DataDir), func() {}, nil
	}
}
