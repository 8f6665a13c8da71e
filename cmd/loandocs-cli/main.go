package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/AlecAivazis/survey/v2"

	"github.com/goliatone/go-loandocs/pkg/templates"
)

func main() {
	templateID := flag.String("template", "", "template id to render")
	output := flag.String("output", "", "output file (stdout if empty)")
	vars := flag.String("vars", "", "comma-separated key=value variable pairs")
	listOnly := flag.Bool("list", false, "list available templates and exit")
	interactive := flag.Bool("interactive", false, "choose template and variables via prompts")
	flag.Parse()

	catalog := templates.NewCatalog()

	if *listOnly {
		for _, tpl := range catalog.All() {
			fmt.Printf("%-32s %-14s %s\n", tpl.ID, tpl.Category, tpl.Name)
		}
		return
	}

	id := *templateID
	variables := parseVars(*vars)

	if *interactive {
		var err error
		id, variables, err = promptForDocument(catalog)
		if err != nil {
			log.Fatalf("Prompt failed: %v", err)
		}
	}

	if id == "" {
		log.Fatal("Provide -template, or run with -interactive or -list")
	}

	tpl, err := catalog.Get(id)
	if err != nil {
		log.Fatalf("Unknown template %q; run with -list to see available ids", id)
	}

	if missing := templates.MissingVariables(tpl, variables); len(missing) > 0 {
		fmt.Fprintf(os.Stderr, "warning: unbound variables left in place: %s\n", strings.Join(missing, ", "))
	}

	document := templates.Substitute(tpl.Content, variables)

	if *output != "" {
		if err := os.WriteFile(*output, []byte(document), 0o644); err != nil {
			log.Fatalf("Failed to write output: %v", err)
		}
		fmt.Printf("Document written to %s\n", *output)
	} else {
		fmt.Println(document)
	}
}

func promptForDocument(catalog *templates.Catalog) (string, map[string]string, error) {
	all := catalog.All()
	options := make([]string, 0, len(all))
	for _, tpl := range all {
		options = append(options, tpl.ID)
	}

	var id string
	if err := survey.AskOne(&survey.Select{
		Message: "Template:",
		Options: options,
	}, &id); err != nil {
		return "", nil, err
	}

	tpl, err := catalog.Get(id)
	if err != nil {
		return "", nil, err
	}

	variables := make(map[string]string, len(tpl.Variables))
	for _, name := range tpl.Variables {
		var value string
		if err := survey.AskOne(&survey.Input{
			Message: name + ":",
		}, &value); err != nil {
			return "", nil, err
		}
		if value != "" {
			variables[name] = value
		}
	}
	return id, variables, nil
}

func parseVars(raw string) map[string]string {
	out := make(map[string]string)
	for _, pair := range strings.Split(raw, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		key, value, ok := strings.Cut(pair, "=")
		if !ok {
			continue
		}
		out[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	return out
}
