// A minimal host application: resources are embedded, one loader injects
// values computed at startup, and consumers read typed settings.
package main

import (
	"embed"
	"fmt"
	"log"
	"time"

	"github.com/mmeany/omnisettings"
)

//go:embed omni-settings.toml application-settings.toml
var resources embed.FS

type dbConfig struct {
	Host    string        `settings:"host"`
	Port    int           `settings:"port"`
	Timeout time.Duration `settings:"timeout"`
}

func main() {
	startupLoader := omnisettings.LoaderFunc{
		Order: 10,
		Fn: func(settings map[string]string) error {
			settings["app.startedAt"] = time.Now().Format(time.RFC3339)
			return nil
		},
	}

	settings, err := omnisettings.Load(resources, startupLoader)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println("stage:", settings.Stage())
	fmt.Println("started at:", settings.String("app.startedAt"))

	var db dbConfig
	if err := settings.Decode("db.", &db); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("database: %s:%d (timeout %s)\n", db.Host, db.Port, db.Timeout)

	nodes := settings.Strings("cluster.nodes")
	fmt.Println("cluster nodes:", nodes)
}
