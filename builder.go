package omnisettings

import (
	"fmt"
	"io/fs"
	"os"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Builder assembles one resolution run. It is the mutable half of the
// two-phase lifecycle: options accumulate here, Build performs the run and
// returns the frozen Settings. A Builder is not safe for concurrent use;
// resolution is meant to happen once, on one goroutine, at startup.
type Builder struct {
	fsys    fs.FS
	loaders []Loader
	lookup  EnvLookup
	logger  *zap.Logger
}

// NewBuilder returns a Builder reading resources from the current directory
// and switches from the process environment, logging nothing.
func NewBuilder() *Builder {
	return &Builder{
		fsys:   os.DirFS("."),
		lookup: os.LookupEnv,
		logger: zap.NewNop(),
	}
}

// WithFS sets the file system holding the bootstrap resource and the
// settings bundle, typically an embed.FS.
func (b *Builder) WithFS(fsys fs.FS) *Builder {
	b.fsys = fsys
	return b
}

// WithLoader registers one pluggable loader. Registration order breaks
// priority ties.
func (b *Builder) WithLoader(l Loader) *Builder {
	b.loaders = append(b.loaders, l)
	return b
}

// WithLoaders registers pluggable loaders in the given order.
func (b *Builder) WithLoaders(loaders ...Loader) *Builder {
	b.loaders = append(b.loaders, loaders...)
	return b
}

// WithEnviron replaces the environment lookup used for the stage and
// settings switches.
func (b *Builder) WithEnviron(lookup EnvLookup) *Builder {
	b.lookup = lookup
	return b
}

// WithLogger sets the logger for resolution progress.
func (b *Builder) WithLogger(logger *zap.Logger) *Builder {
	if logger != nil {
		b.logger = logger
	}
	return b
}

// Build runs the resolution pipeline once and freezes the result.
//
// Merge order, each step free to overwrite keys from the previous one:
//
//  1. bootstrap resource (controls the steps below, contributes no keys)
//  2. stage-specific entries from the settings bundle
//  3. the external override file, when the settings switch names one
//  4. every registered loader, ascending by priority
//  5. the derived StageKey entry, which always wins
//
// Any failure is fatal: Build returns a nil Settings and the error, never a
// partially resolved mapping.
func (b *Builder) Build() (*Settings, error) {
	log := b.logger.With(zap.String("resolution_id", uuid.NewString()))

	bs, err := loadBootstrap(b.fsys)
	if err != nil {
		return nil, err
	}

	stage, err := resolveStage(b.lookup, bs.StageSwitch, bs.DefaultStage)
	if err != nil {
		return nil, err
	}
	log.Debug("stage resolved",
		zap.String("stage", stage),
		zap.String("switch", envName(bs.StageSwitch)))

	working := make(map[string]string)

	if err := loadBundle(b.fsys, bs.BundleName, stage, working); err != nil {
		return nil, err
	}
	log.Debug("stage bundle merged",
		zap.String("bundle", bs.BundleName),
		zap.Int("keys", len(working)))

	if path, ok := b.lookup(envName(bs.SettingsSwitch)); ok && path != "" {
		if err := loadOverride(path, working); err != nil {
			return nil, err
		}
		log.Debug("override file merged",
			zap.String("path", path),
			zap.Int("keys", len(working)))
	}

	for _, loader := range sortLoaders(b.loaders) {
		if err := loader.Load(working); err != nil {
			return nil, fmt.Errorf("settings loader (priority %d) failed: %w", loader.Priority(), err)
		}
	}
	log.Debug("loader chain complete",
		zap.Int("loaders", len(b.loaders)),
		zap.Int("keys", len(working)))

	settings := newSettings(stage, working)
	log.Info("settings resolved",
		zap.String("stage", stage),
		zap.Int("keys", settings.Len()))

	return settings, nil
}

// MustBuild is Build for initialization paths where a configuration error is
// unrecoverable anyway.
func (b *Builder) MustBuild() *Settings {
	settings, err := b.Build()
	if err != nil {
		panic(fmt.Sprintf("omnisettings: resolution failed: %v", err))
	}
	return settings
}

// Load resolves settings from fsys with the given loaders in one call. It is
// the common case of Builder for applications without custom environment or
// logging needs.
func Load(fsys fs.FS, loaders ...Loader) (*Settings, error) {
	return NewBuilder().WithFS(fsys).WithLoaders(loaders...).Build()
}
