package assets

import (
	"math"
	"testing"

	"github.com/automoto/slingfort/config"
)

func TestLoadLevels(t *testing.T) {
	levels, err := NewLevelLoader().LoadLevels()
	if err != nil {
		t.Fatalf("load levels: %v", err)
	}

	tests := []struct {
		blocks, targets, queue int
	}{
		{blocks: 3, targets: 1, queue: 2},
		{blocks: 6, targets: 3, queue: 4},
		{blocks: 8, targets: 5, queue: 6},
	}
	if len(levels) != len(tests) {
		t.Fatalf("got %d levels, want %d", len(levels), len(tests))
	}
	for i, tt := range tests {
		l := levels[i]
		if len(l.Blocks) != tt.blocks || len(l.Targets) != tt.targets || len(l.Queue) != tt.queue {
			t.Errorf("%s: blocks=%d targets=%d queue=%d, want %d/%d/%d",
				l.Name, len(l.Blocks), len(l.Targets), len(l.Queue), tt.blocks, tt.targets, tt.queue)
		}
		if l.Width != 2000 || l.Height != 720 {
			t.Errorf("%s: size %dx%d", l.Name, l.Width, l.Height)
		}
	}
}

func TestBlockGeometry(t *testing.T) {
	levels, err := NewLevelLoader().LoadLevels()
	if err != nil {
		t.Fatalf("load levels: %v", err)
	}

	slab := levels[0].Blocks[2]
	if slab.Size != config.BlockLarge || slab.Height != 220 || slab.Width != 35 {
		t.Fatalf("slab = %+v", slab)
	}
	if math.Abs(slab.Angle-config.AngleHorizontal) > 1e-9 {
		t.Fatalf("slab angle = %v, want %v", slab.Angle, config.AngleHorizontal)
	}
	if slab.X != 1605 || slab.Y != 522.5 {
		t.Fatalf("slab center = (%v, %v), want (1605, 522.5)", slab.X, slab.Y)
	}

	target := levels[0].Targets[0]
	if target.X != 1605 || target.Y != 630 {
		t.Fatalf("target center = (%v, %v)", target.X, target.Y)
	}
	if levels[0].Slingshot.X != 300 || levels[0].Slingshot.Projectile != config.ProjectileRed {
		t.Fatalf("slingshot = %+v", levels[0].Slingshot)
	}
}

func TestLevelAt(t *testing.T) {
	tests := []struct {
		index   int
		want    string
		wantErr bool
	}{
		{index: 1, want: "levels/level1.tmx"},
		{index: 3, want: "levels/level3.tmx"},
		{index: 9, want: "levels/level3.tmx"},
		{index: 0, wantErr: true},
	}
	for _, tt := range tests {
		l, err := LevelAt(tt.index)
		if tt.wantErr {
			if err == nil {
				t.Errorf("LevelAt(%d): expected error", tt.index)
			}
			continue
		}
		if err != nil {
			t.Fatalf("LevelAt(%d): %v", tt.index, err)
		}
		if l.Name != tt.want {
			t.Errorf("LevelAt(%d) = %s, want %s", tt.index, l.Name, tt.want)
		}
	}
}
