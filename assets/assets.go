package assets

import (
	"embed"
	"fmt"
	"math"
	"path/filepath"
	"sync"

	"github.com/automoto/slingfort/config"
	"github.com/lafriks/go-tiled"
)

var (
	//go:embed all:levels
	assetFS embed.FS
)

// Object group names read from level maps
const (
	groupSlingshot = "Slingshot"
	groupBlocks    = "Blocks"
	groupTargets   = "Targets"
	groupQueue     = "Queue"
)

type SlingshotSpawn struct {
	X, Y       float64
	Projectile config.ProjectileKind // Loaded when the level starts
}

// BlockSpawn is a block centered on X, Y before rotation by Angle (radians).
type BlockSpawn struct {
	X, Y   float64
	Size   config.BlockSize
	Width  float64
	Height float64
	Angle  float64
}

type TargetSpawn struct {
	X, Y float64
}

type Level struct {
	Name      string
	Width     int
	Height    int
	Slingshot SlingshotSpawn
	Blocks    []BlockSpawn
	Targets   []TargetSpawn
	Queue     []config.ProjectileKind
}

type LevelLoader struct {
	once   sync.Once
	levels []Level
	err    error
}

func NewLevelLoader() *LevelLoader {
	return &LevelLoader{}
}

var defaultLoader = NewLevelLoader()

// LevelAt returns the layout for a 1-based level index. Indexes past the last
// layout reuse the last one.
func LevelAt(index int) (*Level, error) {
	levels, err := defaultLoader.LoadLevels()
	if err != nil {
		return nil, err
	}
	if index < 1 {
		return nil, fmt.Errorf("level index %d out of range", index)
	}
	if index > len(levels) {
		index = len(levels)
	}
	return &levels[index-1], nil
}

// LoadLevels parses every embedded level once, ordered by file name.
func (l *LevelLoader) LoadLevels() ([]Level, error) {
	l.once.Do(func() {
		entries, err := assetFS.ReadDir("levels")
		if err != nil {
			l.err = fmt.Errorf("read levels directory: %w", err)
			return
		}
		for _, entry := range entries {
			if entry.IsDir() || filepath.Ext(entry.Name()) != ".tmx" {
				continue
			}
			level, err := l.LoadLevel(filepath.Join("levels", entry.Name()))
			if err != nil {
				l.err = err
				return
			}
			l.levels = append(l.levels, level)
		}
		if len(l.levels) == 0 {
			l.err = fmt.Errorf("no level files found in assets/levels")
		}
	})
	return l.levels, l.err
}

// MustLoadLevels panics when the embedded levels are broken.
func (l *LevelLoader) MustLoadLevels() []Level {
	levels, err := l.LoadLevels()
	if err != nil {
		panic(err)
	}
	return levels
}

func (l *LevelLoader) LoadLevel(levelPath string) (Level, error) {
	levelMap, err := tiled.LoadFile(levelPath, tiled.WithFileSystem(assetFS))
	if err != nil {
		return Level{}, fmt.Errorf("load %s: %w", levelPath, err)
	}

	level := Level{
		Name:   levelPath,
		Width:  levelMap.Width * levelMap.TileWidth,
		Height: levelMap.Height * levelMap.TileHeight,
		Slingshot: SlingshotSpawn{
			X:          config.Slingshot.AnchorX,
			Y:          config.Slingshot.AnchorY,
			Projectile: config.Projectile.Default,
		},
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case groupSlingshot:
			for _, o := range og.Objects {
				level.Slingshot.X = o.X
				level.Slingshot.Y = o.Y
				if kind := o.Properties.GetString("projectile"); kind != "" {
					level.Slingshot.Projectile = config.ProjectileKind(kind)
				}
			}
		case groupBlocks:
			for _, o := range og.Objects {
				size := config.BlockSize(o.Properties.GetString("size"))
				height, ok := config.Block.Heights[size]
				if !ok {
					return Level{}, fmt.Errorf("%s: block %d has unknown size %q", levelPath, o.ID, size)
				}
				width := config.Block.Width
				level.Blocks = append(level.Blocks, BlockSpawn{
					X:      o.X + width/2,
					Y:      o.Y + height/2,
					Size:   size,
					Width:  width,
					Height: height,
					Angle:  o.Properties.GetFloat("angle") * math.Pi / 180,
				})
			}
		case groupTargets:
			for _, o := range og.Objects {
				level.Targets = append(level.Targets, TargetSpawn{
					X: o.X + o.Width/2,
					Y: o.Y + o.Height/2,
				})
			}
		case groupQueue:
			for _, o := range og.Objects {
				kind := config.ProjectileKind(o.Properties.GetString("projectile"))
				if kind == "" {
					kind = config.Projectile.Default
				}
				level.Queue = append(level.Queue, kind)
			}
		}
	}

	for _, kind := range append([]config.ProjectileKind{level.Slingshot.Projectile}, level.Queue...) {
		if _, ok := config.Projectile.Types[kind]; !ok {
			return Level{}, fmt.Errorf("%s: unknown projectile %q", levelPath, kind)
		}
	}

	return level, nil
}
