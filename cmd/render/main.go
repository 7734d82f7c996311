// render genera el PDF de un listado de líneas a partir de un CSV (name,price,quantity).
//
// Uso: go run ./cmd/render [--charset iso-8859-1] [--sep ";"] [--title T] [--ref R] [-o salida.pdf] items.csv
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/jhoicas/invoice-generator/internal/application/document"
	"github.com/jhoicas/invoice-generator/internal/infrastructure/csvimport"
	infrapdf "github.com/jhoicas/invoice-generator/internal/infrastructure/pdf"
	"github.com/jhoicas/invoice-generator/pkg/config"
	"github.com/jhoicas/invoice-generator/pkg/logger"
)

func main() {
	app := &cli.App{
		Name:      "render",
		Usage:     "genera el PDF de las líneas de un CSV",
		ArgsUsage: "items.csv",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "charset", Value: csvimport.CharsetUTF8, Usage: "codificación del CSV: utf-8 o iso-8859-1"},
			&cli.StringFlag{Name: "sep", Value: ",", Usage: "separador de columnas: , o ;"},
			&cli.StringFlag{Name: "title", Usage: "título del documento (por defecto PDF_TITLE)"},
			&cli.StringFlag{Name: "ref", Usage: "referencia del documento (por defecto un UUID)"},
			&cli.StringFlag{Name: "out", Aliases: []string{"o"}, Usage: "archivo de salida (por defecto items_<ref>.pdf)"},
		},
		Action: run,
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "render: %v\n", err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	sep := []rune(c.String("sep"))
	if c.NArg() != 1 || len(sep) != 1 {
		return cli.Exit("uso: render [opciones] items.csv", 2)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("cargar configuración: %w", err)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel, Output: os.Stderr})

	reader, err := csvimport.NewReader(csvimport.Options{Charset: c.String("charset"), Comma: sep[0]})
	if err != nil {
		return err
	}

	path := c.Args().First()
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("abrir CSV: %w", err)
	}
	items, err := reader.ReadLineItems(f)
	f.Close()
	if err != nil {
		return fmt.Errorf("leer %s: %w", path, err)
	}

	uc := document.NewDocumentUseCase(infrapdf.NewMarotoPDFGenerator(), document.Config{
		Title:  cfg.PDF.Title,
		Author: cfg.PDF.Author,
	})
	pdfBytes, filename, err := uc.Render(context.Background(), c.String("title"), c.String("ref"), items)
	if err != nil {
		return err
	}

	outPath := c.String("out")
	if outPath == "" {
		outPath = filename
	}
	if err := os.WriteFile(outPath, pdfBytes, 0o644); err != nil {
		return fmt.Errorf("escribir PDF: %w", err)
	}
	log.Info().Int("items", len(items)).Str("file", outPath).Msg("PDF generado")
	return nil
}
