// seed genera un script SQL para poblar la tabla products a partir de un CSV
// (code;name;cost). Los archivos exportados de hojas de cálculo suelen venir en ISO-8859-1.
//
// Uso: go run ./cmd/seed --in productos.csv [--charset latin1] [--sep ';'] [--out seed.sql]
// Sin --out escribe en stdout.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

func main() {
	in := pflag.StringP("in", "i", "productos.csv", "CSV de entrada (code;name;cost)")
	out := pflag.StringP("out", "o", "", "archivo SQL de salida (vacío = stdout)")
	charset := pflag.String("charset", "utf8", "codificación del CSV: utf8 | latin1")
	sep := pflag.String("sep", ";", "separador de columnas")
	pflag.Parse()

	if len([]rune(*sep)) != 1 {
		fail("el separador debe ser un solo carácter: %q", *sep)
	}

	f, err := os.Open(*in)
	if err != nil {
		fail("abrir CSV: %v", err)
	}
	defer f.Close()

	var r io.Reader = f
	switch strings.ToLower(*charset) {
	case "utf8", "utf-8":
	case "latin1", "iso-8859-1", "iso8859-1":
		r = transform.NewReader(f, charmap.ISO8859_1.NewDecoder())
	default:
		fail("charset no soportado: %s", *charset)
	}

	products, err := parseProducts(r, []rune(*sep)[0])
	if err != nil {
		fail("leer CSV: %v", err)
	}

	var w io.Writer = os.Stdout
	if *out != "" {
		of, err := os.Create(*out)
		if err != nil {
			fail("crear archivo: %v", err)
		}
		defer of.Close()
		w = of
	}
	if err := writeSQL(w, products); err != nil {
		fail("escribir SQL: %v", err)
	}
	fmt.Fprintf(os.Stderr, "Generado: %d productos\n", len(products))
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
