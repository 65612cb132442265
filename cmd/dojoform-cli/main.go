package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	dojoform "github.com/goliatone/go-dojoform"
	"github.com/goliatone/go-dojoform/pkg/config"
)

func main() {
	source := flag.String("source", "schema.yaml", "OpenAPI document path")
	component := flag.String("component", "", "component schema to render")
	renderer := flag.String("renderer", "dijit", "renderer to use (dijit, preview)")
	configPath := flag.String("config", "", "toolkit config file (YAML)")
	theme := flag.String("theme", "", "theme override (claro, tundra, soria, nihilo)")
	output := flag.String("output", "", "output file (stdout if empty)")
	flag.Parse()

	if *component == "" {
		log.Fatal("a component schema is required (-component)")
	}

	ctx := context.Background()

	var options []dojoform.Option
	if *configPath != "" {
		options = append(options, dojoform.WithConfigFile(*configPath))
	}
	if *theme != "" {
		cfg := config.Default()
		if *configPath != "" {
			loaded, err := config.Load(*configPath)
			if err != nil {
				log.Fatalf("Failed to load config: %v", err)
			}
			cfg = loaded
		}
		cfg.Theme = *theme
		options = append(options, dojoform.WithConfig(cfg))
	}

	gen := dojoform.New(options...)

	result, err := gen.Generate(ctx, dojoform.Request{
		SourcePath: *source,
		Component:  *component,
		Renderer:   *renderer,
	})
	if err != nil {
		log.Fatalf("Failed to generate form: %v", err)
	}

	if *output != "" {
		if err := os.WriteFile(*output, result, 0o644); err != nil {
			log.Fatalf("Failed to write output: %v", err)
		}
		fmt.Printf("Form written to %s\n", *output)
	} else {
		fmt.Println(string(result))
	}
}
