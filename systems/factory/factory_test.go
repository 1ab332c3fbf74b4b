package factory

import (
	"testing"

	"github.com/automoto/gravityman/components"
	cfg "github.com/automoto/gravityman/config"
	"github.com/automoto/gravityman/shared/gamemath"
	"github.com/automoto/gravityman/shared/leveldata"
	"github.com/automoto/gravityman/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

func count(w donburi.World, c donburi.IComponentType) int {
	n := 0
	donburi.NewQuery(filter.Contains(c)).Each(w, func(*donburi.Entry) { n++ })
	return n
}

func TestLoadLevelBuildsEveryPiece(t *testing.T) {
	w := donburi.NewWorld()
	CreateSpace(w, cfg.World.Width, cfg.World.Height, cfg.World.CellSize)
	levels := leveldata.Builtin()
	CreateLevel(w, levels)

	level := LoadLevel(w, 1)
	require.NotNil(t, level)
	require.True(t, level.Loaded)
	assert.Equal(t, 1, level.LevelIndex)
	assert.Equal(t, levels[1].Name, level.Current.Name)

	assert.Equal(t, len(levels[1].Walls), count(w, tags.Wall))
	assert.Equal(t, len(levels[1].Hazards), count(w, tags.Hazard))
	assert.Equal(t, len(levels[1].Items), count(w, tags.Item))
	assert.Equal(t, len(levels[1].Enemies), count(w, tags.Enemy))
	assert.Equal(t, 1, count(w, tags.Goal))
	assert.Equal(t, 1, count(w, tags.Player))

	player, ok := components.Player.First(w)
	require.True(t, ok)
	obj := components.Object.Get(player)
	assert.Equal(t, gamemath.NewRect(levels[1].Start.X, levels[1].Start.Y, cfg.Player.Width, cfg.Player.Height), obj.Rect())
	assert.Same(t, MustSpace(w), obj.Space)
	assert.Equal(t, player.Entity(), obj.Data.(*donburi.Entry).Entity())
}

func TestLoadLevelReplacesPreviousLevel(t *testing.T) {
	w := donburi.NewWorld()
	CreateSpace(w, cfg.World.Width, cfg.World.Height, cfg.World.CellSize)
	levels := leveldata.Builtin()
	CreateLevel(w, levels)

	LoadLevel(w, 0)
	LoadLevel(w, 2)

	assert.Equal(t, len(levels[2].Walls), count(w, tags.Wall))
	assert.Equal(t, len(levels[2].Items), count(w, tags.Item))
	assert.Equal(t, 1, count(w, tags.Player))
	assert.Equal(t, len(MustSpace(w).Objects()), count(w, components.Object))
}

func TestLoadLevelClampsIndex(t *testing.T) {
	w := donburi.NewWorld()
	CreateSpace(w, cfg.World.Width, cfg.World.Height, cfg.World.CellSize)
	CreateLevel(w, leveldata.Builtin())

	level := LoadLevel(w, 99)
	assert.Equal(t, 0, level.LevelIndex)
}

func TestLoadLevelWithoutLevelSingleton(t *testing.T) {
	w := donburi.NewWorld()
	assert.Nil(t, LoadLevel(w, 0))
}

func TestCreateEnemyMotion(t *testing.T) {
	w := donburi.NewWorld()
	CreateSpace(w, cfg.World.Width, cfg.World.Height, cfg.World.CellSize)

	patrol := CreateEnemy(w, leveldata.EnemySpawn{Rect: gamemath.NewRect(10, 10, 0, 0)})
	enemy := components.Enemy.Get(patrol)
	assert.Equal(t, leveldata.MotionPatrol, enemy.Motion)
	assert.Equal(t, "x", enemy.Axis)
	assert.Equal(t, cfg.Enemy.PatrolDistance, enemy.Distance)
	assert.NotNil(t, enemy.Tween)
	assert.False(t, patrol.HasComponent(components.Physics))
	assert.Equal(t, cfg.Enemy.Width, components.Object.Get(patrol).W)

	falling := CreateEnemy(w, leveldata.EnemySpawn{Rect: gamemath.NewRect(50, 10, 12, 12), Motion: leveldata.MotionGravity})
	assert.True(t, falling.HasComponent(components.Physics))
	assert.Nil(t, components.Enemy.Get(falling).Tween)
}
