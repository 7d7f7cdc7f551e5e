// seed inicializa los recursos del catálogo y opcionalmente carga productos desde un archivo JSON.
//
// Uso: go run ./cmd/seed [-products productos_iniciales.json] [-latin1]
// Crea con [] los recursos de productos y carritos que no existan (los existentes no se tocan)
// y agrega cada producto del archivo con un id nuevo. Usa el mismo STORAGE_DRIVER que la API.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/Catalogo-api/internal/application/dto"
	"github.com/jhoicas/Catalogo-api/internal/application/ports"
	"github.com/jhoicas/Catalogo-api/internal/application/usecase"
	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
	"github.com/jhoicas/Catalogo-api/internal/infrastructure/recordstore"
	"github.com/jhoicas/Catalogo-api/pkg/config"
)

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

// run ejecuta el seed; el almacenamiento se cierra siempre y su error se reporta si no hubo otro.
func run(ctx context.Context, args []string, out io.Writer) (err error) {
	fs := flag.NewFlagSet("seed", flag.ContinueOnError)
	productsPath := fs.String("products", "", "archivo JSON con un arreglo de productos a cargar")
	latin1 := fs.Bool("latin1", false, "el archivo de productos está codificado en ISO-8859-1")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("configuración: %w", err)
	}

	store, closeStore, err := recordstore.Open(ctx, cfg, nil)
	if err != nil {
		return fmt.Errorf("abrir almacenamiento: %w", err)
	}
	defer func() {
		if cerr := closeStore(); cerr != nil && err == nil {
			err = fmt.Errorf("cerrar almacenamiento: %w", cerr)
		}
	}()

	created, err := recordstore.Bootstrap(ctx, store, cfg.Storage.ProductsResource, cfg.Storage.CartsResource)
	if err != nil {
		return fmt.Errorf("inicializar recursos: %w", err)
	}
	for _, name := range created {
		fmt.Fprintf(out, "Recurso creado: %s\n", name)
	}

	if *productsPath == "" {
		return nil
	}
	items, err := readProducts(*productsPath, *latin1)
	if err != nil {
		return fmt.Errorf("leer productos: %w", err)
	}

	repo := recordstore.NewCollection[entity.Product](store, cfg.Storage.ProductsResource)
	uc := usecase.NewProductUseCase(repo, ports.NopBroadcaster{})
	for _, in := range items {
		p, err := uc.Create(ctx, in)
		if err != nil {
			return fmt.Errorf("crear producto %q: %w", in.Code, err)
		}
		fmt.Fprintf(out, "Producto %s: %s\n", p.ID, p.Title)
	}
	fmt.Fprintf(out, "%d productos cargados en %s (driver %s)\n", len(items), cfg.Storage.ProductsResource, cfg.Storage.Driver)
	return nil
}

func readProducts(path string, latin1 bool) ([]dto.CreateProductRequest, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var r io.Reader = f
	if latin1 {
		r = transform.NewReader(f, charmap.ISO8859_1.NewDecoder())
	}
	var items []dto.CreateProductRequest
	if err := json.NewDecoder(r).Decode(&items); err != nil {
		return nil, fmt.Errorf("decodificar %s: %w", path, err)
	}
	return items, nil
}
