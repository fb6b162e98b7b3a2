// Command omni-inspect resolves application settings the same way a hosting
// application would and prints the result, for debugging staged bundles and
// override files.
package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/alecthomas/kingpin/v2"
	"go.uber.org/zap"

	"github.com/mmeany/omnisettings"
)

func main() {
	app := kingpin.New("omni-inspect", "Resolves layered application settings and prints the frozen result")
	dir := app.Flag("dir", "Directory holding omni-settings.toml and the settings bundle").Default(".").String()
	stage := app.Flag("stage", "Stage to resolve for, overriding the stage switch (assumes the default switch name)").String()
	key := app.Flag("key", "Print a single setting instead of the whole mapping").String()
	as := app.Flag("as", "Typed view used with --key").Default("string").Enum("string", "int", "int64", "bool", "strings", "int64s")
	prefix := app.Flag("prefix", "Restrict output to keys starting with this prefix").String()
	verbose := app.Flag("verbose", "Log resolution steps").Short('v').Bool()

	kingpin.MustParse(app.Parse(os.Args[1:]))

	logger := zap.NewNop()
	if *verbose {
		devLogger, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "omni-inspect: failed to initialize logger: %v\n", err)
			os.Exit(1)
		}
		logger = devLogger
	}
	defer func() {
		_ = logger.Sync()
	}()

	lookup := omnisettings.EnvLookup(os.LookupEnv)
	if *stage != "" {
		lookup = func(name string) (string, bool) {
			if name == "OMNI_STAGE" {
				return *stage, true
			}
			return os.LookupEnv(name)
		}
	}

	settings, err := omnisettings.NewBuilder().
		WithFS(os.DirFS(*dir)).
		WithEnviron(lookup).
		WithLogger(logger).
		Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "omni-inspect: %v\n", err)
		os.Exit(1)
	}

	if *key != "" {
		if err := printSetting(settings, *key, *as); err != nil {
			fmt.Fprintf(os.Stderr, "omni-inspect: %v\n", err)
			os.Exit(2)
		}
		return
	}

	printMapping(settings.Prefixed(*prefix))
}

// printSetting resolves one key with the requested typed view.
func printSetting(settings *omnisettings.Settings, key, as string) error {
	kinds := map[string]omnisettings.Kind{
		"string":  omnisettings.KindString,
		"int":     omnisettings.KindInt,
		"int64":   omnisettings.KindInt64,
		"bool":    omnisettings.KindBool,
		"strings": omnisettings.KindStrings,
		"int64s":  omnisettings.KindInt64s,
	}

	value, err := settings.Resolve(omnisettings.Request{Key: key, Kind: kinds[as]})
	if err != nil {
		return err
	}

	switch value.Kind() {
	case omnisettings.KindString:
		fmt.Println(value.Str())
	case omnisettings.KindInt:
		fmt.Println(value.Int())
	case omnisettings.KindInt64:
		fmt.Println(value.Int64())
	case omnisettings.KindBool:
		fmt.Println(value.Bool())
	case omnisettings.KindStrings:
		for _, element := range value.Strings() {
			fmt.Println(element)
		}
	case omnisettings.KindInt64s:
		for _, element := range value.Int64s() {
			fmt.Println(element)
		}
	}

	return nil
}

// printMapping prints key=value lines in key order.
func printMapping(mapping map[string]string) {
	keys := make([]string, 0, len(mapping))
	for key := range mapping {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		fmt.Printf("%s=%s\n", key, mapping[key])
	}
}
