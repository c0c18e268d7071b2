package main

import (
	"flag"
	"fmt"
	"os"

	j "github.com/goccy/go-json"
	"github.com/rs/zerolog"

	lanthanum "github.com/mypebble/lanthanum"
	"github.com/mypebble/lanthanum/config"
	"github.com/mypebble/lanthanum/validator"
	"github.com/mypebble/lanthanum/yamldef"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	switch os.Args[1] {
	case "schema":
		schemaCmd(os.Args[2:], log)
	case "load":
		loadCmd(os.Args[2:], log)
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "lanthanum CLI\n\nUsage:\n  lanthanum schema -def def.yaml\n  lanthanum load -def def.yaml -data data.json\n\nNotes:\n  - schema prints the JSON Schema derived from a YAML field definition.\n  - load normalizes a JSON document through the definition, validates it,\n    and prints the normalized data.")
}

func schemaCmd(args []string, log zerolog.Logger) {
	fs := flag.NewFlagSet("schema", flag.ExitOnError)
	var defPath string
	fs.StringVar(&defPath, "def", "", "YAML field definition file")
	_ = fs.Parse(args)
	if defPath == "" {
		fs.Usage()
		os.Exit(2)
	}

	field := mustParseDef(defPath, log)
	out, err := j.MarshalIndent(field.Schema(), "", "  ")
	if err != nil {
		log.Fatal().Err(err).Msg("marshal schema")
	}
	fmt.Println(string(out))
}

func loadCmd(args []string, log zerolog.Logger) {
	fs := flag.NewFlagSet("load", flag.ExitOnError)
	var defPath, dataPath string
	fs.StringVar(&defPath, "def", "", "YAML field definition file")
	fs.StringVar(&dataPath, "data", "", "JSON data file")
	_ = fs.Parse(args)
	if defPath == "" || dataPath == "" {
		fs.Usage()
		os.Exit(2)
	}

	field := mustParseDef(defPath, log)

	raw, err := os.ReadFile(dataPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", dataPath).Msg("read data")
	}
	var doc any
	if err := j.Unmarshal(raw, &doc); err != nil {
		log.Fatal().Err(err).Str("path", dataPath).Msg("decode data")
	}

	inst := field.Clone()
	if err := inst.LoadData(doc); err != nil {
		log.Fatal().Err(err).Msg("load data")
	}
	if err := lanthanum.Validate(inst, validator.New()); err != nil {
		if iss, ok := lanthanum.AsIssues(err); ok {
			for _, it := range iss {
				log.Error().Str("path", it.Path).Str("code", it.Code).Msg(it.Message)
			}
		}
		log.Fatal().Msg("data does not conform to schema")
	}

	out, err := j.MarshalIndent(inst.Data(), "", "  ")
	if err != nil {
		log.Fatal().Err(err).Msg("marshal data")
	}
	fmt.Println(string(out))
}

func mustParseDef(path string, log zerolog.Logger) lanthanum.Field {
	settings, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("load settings")
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		log.Fatal().Err(err).Str("path", path).Msg("read definition")
	}
	field, err := yamldef.Parse(raw, yamldef.WithMediaURL(settings.MediaURL))
	if err != nil {
		log.Fatal().Err(err).Str("path", path).Msg("parse definition")
	}
	return field
}
