// Package omnisettings resolves layered application settings into a single
// frozen string-to-string mapping at startup, then serves typed reads from it
// for the rest of the process lifetime.
//
// Resolution runs once, merging sources in a fixed order where later sources
// overwrite earlier ones:
//
//  1. The bootstrap resource (omni-settings.toml) configures resolution
//     itself: switch names, the default stage, the bundle file name. Its
//     keys never appear in the resolved mapping.
//  2. The active stage is resolved from the stage switch (environment
//     variable OMNI_STAGE by default), falling back to the bootstrap's
//     defaultStage.
//  3. The stage's table of the settings bundle (application-settings.toml
//     by default) is flattened to dot-joined keys and merged.
//  4. If the settings switch (OMNI_SETTINGS by default) names a file, its
//     entries are merged on top. TOML, JSON and YAML are detected from the
//     extension or content.
//  5. Registered Loader implementations run in ascending priority order,
//     each free to add or overwrite keys.
//  6. The derived key "actualStageName" is written last and always holds
//     the resolved stage.
//
// Quick start:
//
//	//go:embed omni-settings.toml application-settings.toml
//	var resources embed.FS
//
//	settings, err := omnisettings.Load(resources)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	host := settings.String("db.host")
//	port, err := settings.Int("db.port")
//	hosts := settings.Strings("cluster.nodes")
//
// Every resolution-time failure is fatal: Build returns an error and no
// partial mapping is ever published. Type-coercion failures surface lazily,
// at access time, as *ParseError values.
//
// The returned Settings value is immutable and safe for unsynchronized
// concurrent reads from any number of goroutines.
package omnisettings
