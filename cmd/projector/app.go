package main

import (
	"errors"
	"fmt"
	"io"

	appcatalog "bondprojector/internal/application/service/catalog"
	appprojection "bondprojector/internal/application/service/projection"
	"bondprojector/internal/config"
	domainprojection "bondprojector/internal/domain/entity/projection"
	infracatalog "bondprojector/internal/infrastructure/catalog"
	"bondprojector/internal/interfaces/report"

	"github.com/charmbracelet/glamour"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

var errConflictingInputs = errors.New("use either --start-cash or --start-bonds, not both")

func newApp(logger *logrus.Logger) *cli.App {
	return &cli.App{
		Name:  "projector",
		Usage: "project savings bond returns from the terminal",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "catalog", EnvVars: []string{"CATALOG_FILE"}, Usage: "YAML catalog replacing the built-in bonds"},
			&cli.StringFlag{Name: "currency", EnvVars: []string{"CURRENCY"}, Usage: "currency code used to format amounts"},
		},
		Commands: []*cli.Command{
			{
				Name:  "catalog",
				Usage: "list the bond catalog",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "monthly", Usage: "only monthly-capitalizing bonds"},
					plainFlag(),
				},
				Action: func(c *cli.Context) error { return runCatalog(c, logger) },
			},
			{
				Name:  "table",
				Usage: "print the projection table",
				Flags: []cli.Flag{
					&cli.Int64Flag{Name: "start-cash", Usage: "starting cash, rounded down to whole bonds"},
					&cli.Int64Flag{Name: "start-bonds", Usage: "starting bond count"},
					&cli.StringFlag{Name: "years", Usage: "comma separated horizons, defaults to 1..PROJECTION_MAX_YEARS"},
					plainFlag(),
				},
				Action: func(c *cli.Context) error { return runTable(c, logger) },
			},
			{
				Name:  "sync",
				Usage: "apply the start cash / start bonds commit rule",
				Flags: []cli.Flag{
					&cli.Int64Flag{Name: "start-cash", Usage: "starting cash"},
					&cli.Int64Flag{Name: "start-bonds", Usage: "starting bond count"},
				},
				Action: runSync,
			},
		},
	}
}

func plainFlag() cli.Flag {
	return &cli.BoolFlag{Name: "plain", Usage: "print raw markdown instead of rendering it"}
}

type env struct {
	cfg      *config.Config
	catalog  *infracatalog.Repository
	renderer *report.Renderer
}

func load(c *cli.Context, logger *logrus.Logger) (*env, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if c.IsSet("catalog") {
		cfg.Catalog.File = c.String("catalog")
	}
	if c.IsSet("currency") {
		cfg.Projection.Currency = c.String("currency")
	}

	repo, err := infracatalog.NewRepository(cfg.Catalog.File)
	if err != nil {
		return nil, err
	}
	logger.WithField("bonds", repo.Len()).Debug("bond catalog loaded")

	renderer, err := report.New(cfg.Projection.Currency)
	if err != nil {
		return nil, err
	}

	return &env{
		cfg:      cfg,
		catalog:  repo,
		renderer: renderer,
	}, nil
}

func runCatalog(c *cli.Context, logger *logrus.Logger) error {
	e, err := load(c, logger)
	if err != nil {
		return err
	}
	service := appcatalog.NewService(e.catalog)

	list := service.List
	if c.Bool("monthly") {
		list = service.Monthly
	}
	bonds, err := list(c.Context)
	if err != nil {
		return err
	}
	return write(c.App.Writer, e.renderer.Catalog(bonds), c.Bool("plain"))
}

func runTable(c *cli.Context, logger *logrus.Logger) error {
	e, err := load(c, logger)
	if err != nil {
		return err
	}

	in, err := inputsFromFlags(c, int64(e.cfg.Projection.StartCash))
	if err != nil {
		return err
	}
	if err := in.Validate(); err != nil {
		return err
	}

	horizons := domainprojection.Range(e.cfg.Projection.MaxYears)
	if c.IsSet("years") {
		horizons, err = domainprojection.ParseHorizons(c.String("years"))
		if err != nil {
			return err
		}
	}
	if err := horizons.Validate(e.cfg.Projection.YearsLimit); err != nil {
		return err
	}

	service := appprojection.NewService(e.catalog, nil, 0, logger)
	table, err := service.Table(c.Context, in, horizons)
	if err != nil {
		return err
	}
	md, err := e.renderer.Markdown(table)
	if err != nil {
		return err
	}
	return write(c.App.Writer, md, c.Bool("plain"))
}

func runSync(c *cli.Context) error {
	if !c.IsSet("start-cash") && !c.IsSet("start-bonds") {
		return errors.New("one of --start-cash or --start-bonds is required")
	}
	in, err := inputsFromFlags(c, 0)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(c.App.Writer, "start_cash=%d start_bonds=%d\n", in.StartCash, in.StartBonds)
	return err
}

func inputsFromFlags(c *cli.Context, defaultCash int64) (domainprojection.Inputs, error) {
	switch {
	case c.IsSet("start-cash") && c.IsSet("start-bonds"):
		return domainprojection.Inputs{}, errConflictingInputs
	case c.IsSet("start-bonds"):
		return domainprojection.SyncFromBonds(c.Int64("start-bonds")), nil
	case c.IsSet("start-cash"):
		return domainprojection.SyncFromCash(c.Int64("start-cash")), nil
	default:
		return domainprojection.SyncFromCash(defaultCash), nil
	}
}

func write(w io.Writer, md string, plain bool) error {
	if !plain {
		r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(0))
		if err != nil {
			return fmt.Errorf("create terminal renderer: %w", err)
		}
		if md, err = r.Render(md); err != nil {
			return fmt.Errorf("render markdown: %w", err)
		}
	}
	_, err := io.WriteString(w, md)
	return err
}
