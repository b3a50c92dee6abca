package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"sort"
	"strings"

	formfield "github.com/goliatone/go-formfield"
	"github.com/goliatone/go-formfield/pkg/field"
	"github.com/goliatone/go-formfield/pkg/fieldconfig"
	"github.com/goliatone/go-formfield/pkg/openapi"
	"github.com/goliatone/go-formfield/pkg/renderers/tui"
)

func main() {
	source := flag.String("source", "", "OpenAPI document path or URL")
	component := flag.String("component", "", "component schema to build fields from")
	config := flag.String("config", "", "field definition document (JSON or YAML)")
	renderer := flag.String("renderer", "vanilla", "renderer to use")
	output := flag.String("output", "", "output file (stdout if empty)")
	interactive := flag.Bool("interactive", false, "prompt for values in the terminal instead of rendering markup")
	flag.Parse()

	ctx := context.Background()

	switch {
	case *interactive:
		fields, err := collectFields(ctx, *source, *component, *config)
		if err != nil {
			log.Fatalf("Failed to build fields: %v", err)
		}
		if err := runInteractive(ctx, fields); err != nil {
			log.Fatalf("Prompt failed: %v", err)
		}
	case *config != "":
		raw, err := os.ReadFile(*config)
		if err != nil {
			log.Fatalf("Failed to read config: %v", err)
		}
		html, err := formfield.GenerateConfigHTML(raw, *renderer, nil)
		if err != nil {
			log.Fatalf("Failed to generate markup: %v", err)
		}
		writeOutput(*output, html)
	case *source != "":
		if *component == "" {
			log.Fatal("-component is required with -source")
		}
		html, err := formfield.GenerateHTML(ctx, parseSource(*source), *component, *renderer, nil)
		if err != nil {
			log.Fatalf("Failed to generate markup: %v", err)
		}
		writeOutput(*output, html)
	default:
		flag.Usage()
		os.Exit(2)
	}
}

type namedField struct {
	name  string
	field *field.Text
}

func collectFields(ctx context.Context, source, component, config string) ([]namedField, error) {
	switch {
	case config != "":
		raw, err := os.ReadFile(config)
		if err != nil {
			return nil, err
		}
		doc, err := fieldconfig.Parse(raw)
		if err != nil {
			return nil, err
		}
		byName, err := doc.Build()
		if err != nil {
			return nil, err
		}
		names := make([]string, 0, len(byName))
		for name := range byName {
			names = append(names, name)
		}
		sort.Strings(names)
		out := make([]namedField, 0, len(names))
		for _, name := range names {
			out = append(out, namedField{name: name, field: byName[name]})
		}
		return out, nil
	case source != "":
		if component == "" {
			return nil, fmt.Errorf("component is required with an OpenAPI source")
		}
		defs, err := openapi.DefinitionsFrom(ctx, parseSource(source), component)
		if err != nil {
			return nil, err
		}
		out := make([]namedField, 0, len(defs))
		for _, def := range defs {
			built, err := def.Build()
			if err != nil {
				return nil, err
			}
			out = append(out, namedField{name: def.Name, field: built})
		}
		return out, nil
	default:
		return nil, fmt.Errorf("either a source or a config document is required")
	}
}

func runInteractive(ctx context.Context, fields []namedField) error {
	session := tui.NewSession()
	for _, entry := range fields {
		if err := session.Ask(ctx, entry.field); err != nil {
			return err
		}
		fmt.Printf("%s = %s\n", entry.name, entry.field.Value())
	}
	return nil
}

func parseSource(raw string) openapi.Source {
	path := strings.TrimSpace(raw)
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return openapi.SourceFromURL(path)
	}
	return openapi.SourceFromFile(path)
}

func writeOutput(path string, data []byte) {
	if path != "" {
		if err := os.WriteFile(path, data, 0o644); err != nil {
			log.Fatalf("Failed to write output: %v", err)
		}
		fmt.Printf("Markup written to %s\n", path)
		return
	}
	fmt.Println(string(data))
}
