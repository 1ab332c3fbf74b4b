package systems

import (
	"testing"

	"github.com/automoto/gravityman/components"
	cfg "github.com/automoto/gravityman/config"
	"github.com/automoto/gravityman/shared/gamemath"
	"github.com/automoto/gravityman/shared/leveldata"
	"github.com/automoto/gravityman/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

func floorLevel() leveldata.Level {
	return leveldata.Level{
		Name:  "floor",
		Start: gamemath.Vec{X: 12, Y: 12},
		Walls: []gamemath.Rect{gamemath.NewRect(0, 270, 240, 12)},
		Goal:  gamemath.NewRect(200, 100, 20, 20),
	}
}

func newTestWorld(t *testing.T, levels ...leveldata.Level) donburi.World {
	t.Helper()
	w := donburi.NewWorld()
	factory.CreateSpace(w, cfg.World.Width, cfg.World.Height, cfg.World.CellSize)
	factory.CreateLevel(w, levels)
	GetOrCreateSession(w)
	require.True(t, LoadLevelAt(w, 0))
	require.True(t, StartRun(w))
	DrainEvents(w)
	return w
}

func tick(w donburi.World, n int) {
	pipeline := Pipeline()
	for i := 0; i < n; i++ {
		for _, system := range pipeline {
			system(w)
		}
	}
}

// interact runs only the overlap and progression steps, for tests that
// place the player by hand.
func interact(w donburi.World) {
	UpdateObjects(w)
	UpdateInteractions(w)
	UpdateProgression(w)
}

func playerParts(t *testing.T, w donburi.World) (*components.PlayerData, components.ObjectData, *components.PhysicsData) {
	t.Helper()
	entry, ok := GetPlayer(w)
	require.True(t, ok)
	return components.Player.Get(entry), *components.Object.Get(entry), components.Physics.Get(entry)
}

func placePlayer(t *testing.T, w donburi.World, x, y float64) {
	t.Helper()
	_, obj, _ := playerParts(t, w)
	obj.X, obj.Y = x, y
	obj.Update()
}

func eventKinds(events []components.Event) []components.EventKind {
	kinds := make([]components.EventKind, len(events))
	for i, e := range events {
		kinds[i] = e.Kind
	}
	return kinds
}

func goalOpen(t *testing.T, w donburi.World) bool {
	t.Helper()
	entry, ok := components.Goal.First(w)
	require.True(t, ok)
	return components.Goal.Get(entry).Open
}

func TestPlayerSettlesOnFloor(t *testing.T) {
	w := newTestWorld(t, floorLevel())

	tick(w, 240)

	_, obj, physics := playerParts(t, w)
	assert.InDelta(t, 252.0, obj.Y, 1e-9)
	assert.Equal(t, 12.0, obj.X)
	assert.InDelta(t, 0.0, physics.SpeedY, 1e-9)
	assert.Equal(t, 0.0, physics.SpeedX)
	assert.True(t, physics.Grounded)
}

func TestFallSpeedStaysBelowMax(t *testing.T) {
	lvl := floorLevel()
	lvl.Walls = nil
	w := newTestWorld(t, lvl)

	terminal := gamemath.TerminalSpeed(cfg.Gravity.Strength, cfg.Player.Friction)
	for i := 0; i < 30; i++ {
		tick(w, 1)
		_, _, physics := playerParts(t, w)
		assert.LessOrEqual(t, physics.SpeedY, cfg.Player.MaxSpeed)
		assert.LessOrEqual(t, physics.SpeedY, terminal+1e-9)
	}
}

func TestSidewaysGravityLandsOnWorldEdge(t *testing.T) {
	w := newTestWorld(t, floorLevel())
	require.True(t, SetGravityDirection(w, "left"))

	tick(w, 120)

	_, obj, physics := playerParts(t, w)
	assert.Equal(t, 0.0, obj.X)
	assert.Equal(t, 12.0, obj.Y)
	assert.True(t, physics.Grounded)
}

func TestGravityIgnoresGarbage(t *testing.T) {
	w := newTestWorld(t, floorLevel())
	require.True(t, SetGravityDirection(w, "up"))

	for _, s := range []string{"", "UP", "north", "down ", "sideways", "<script>"} {
		assert.False(t, SetGravityDirection(w, s), s)
		assert.Equal(t, gamemath.Up, GetGravity(w).Direction, s)
	}
}

func TestGravityIgnoredWhilePaused(t *testing.T) {
	w := newTestWorld(t, floorLevel())
	require.True(t, TogglePause(w))

	assert.False(t, SetGravityDirection(w, "left"))
	assert.Equal(t, gamemath.Down, GetGravity(w).Direction)
}

func TestPauseFreezesSimulation(t *testing.T) {
	w := newTestWorld(t, floorLevel())
	tick(w, 5)
	_, before, physicsBefore := playerParts(t, w)
	y, speed := before.Y, physicsBefore.SpeedY

	require.True(t, TogglePause(w))
	tick(w, 20)

	_, after, physics := playerParts(t, w)
	assert.Equal(t, y, after.Y)
	assert.Equal(t, speed, physics.SpeedY)

	require.True(t, TogglePause(w))
	tick(w, 1)
	_, after, _ = playerParts(t, w)
	assert.Greater(t, after.Y, y)
}

func eightItemLevel() leveldata.Level {
	lvl := leveldata.Level{
		Name:     "eight",
		Start:    gamemath.Vec{X: 10, Y: 10},
		Goal:     gamemath.NewRect(100, 200, 20, 20),
		Required: 8,
	}
	for i := 0; i < 8; i++ {
		lvl.Items = append(lvl.Items, gamemath.NewRect(20+float64(i)*25, 100, 8, 8))
	}
	return lvl
}

func TestExitOpensOnEighthItem(t *testing.T) {
	lvl := eightItemLevel()
	w := newTestWorld(t, lvl)
	session := GetOrCreateSession(w)
	require.Equal(t, 8, session.Required)

	for i, item := range lvl.Items {
		placePlayer(t, w, item.X-2, item.Y-2)
		interact(w)

		assert.Equal(t, i+1, session.Collected)
		if i < 7 {
			assert.False(t, goalOpen(t, w), "after item %d", i+1)
		}
	}
	assert.True(t, goalOpen(t, w))

	events := eventKinds(DrainEvents(w))
	assert.Contains(t, events, components.EventExitOpened)

	placePlayer(t, w, lvl.Goal.X, lvl.Goal.Y)
	interact(w)
	assert.Equal(t, components.ModeLevelComplete, session.Mode)
	assert.Contains(t, eventKinds(DrainEvents(w)), components.EventLevelComplete)
}

func TestItemsCountOnce(t *testing.T) {
	lvl := eightItemLevel()
	w := newTestWorld(t, lvl)
	session := GetOrCreateSession(w)

	placePlayer(t, w, lvl.Items[0].X-2, lvl.Items[0].Y-2)
	for i := 0; i < 5; i++ {
		interact(w)
	}
	assert.Equal(t, 1, session.Collected)
}

func TestClosedGoalIsNotActionable(t *testing.T) {
	lvl := eightItemLevel()
	w := newTestWorld(t, lvl)

	placePlayer(t, w, lvl.Goal.X, lvl.Goal.Y)
	interact(w)

	assert.Equal(t, components.ModePlaying, GetOrCreateSession(w).Mode)
	assert.False(t, goalOpen(t, w))
}

func TestHazardResetsAttempt(t *testing.T) {
	lvl := eightItemLevel()
	lvl.Hazards = []gamemath.Rect{gamemath.NewRect(150, 150, 20, 20)}
	w := newTestWorld(t, lvl)
	session := GetOrCreateSession(w)

	placePlayer(t, w, lvl.Items[0].X-2, lvl.Items[0].Y-2)
	interact(w)
	placePlayer(t, w, lvl.Items[1].X-2, lvl.Items[1].Y-2)
	interact(w)
	require.Equal(t, 2, session.Collected)

	require.True(t, SetGravityDirection(w, "right"))
	_, _, physics := playerParts(t, w)
	physics.SpeedX, physics.SpeedY = 3, -2
	DrainEvents(w)

	placePlayer(t, w, 155, 155)
	interact(w)

	player, obj, physics := playerParts(t, w)
	assert.Equal(t, lvl.Start.X, obj.X)
	assert.Equal(t, lvl.Start.Y, obj.Y)
	assert.Equal(t, 0.0, physics.SpeedX)
	assert.Equal(t, 0.0, physics.SpeedY)
	assert.Equal(t, gamemath.Down, GetGravity(w).Direction)
	assert.Equal(t, 0, session.Collected)
	assert.False(t, goalOpen(t, w))
	components.Item.Each(w, func(e *donburi.Entry) {
		assert.False(t, components.Item.Get(e).Collected)
	})
	assert.Equal(t, components.ModePlaying, session.Mode)
	assert.True(t, player.Invulnerable())
	assert.Equal(t, cfg.Tick.HazardFlashFrames, session.HazardFlash)
	assert.Equal(t, []components.EventKind{components.EventHazardHit}, eventKinds(DrainEvents(w)))
}

func TestSubPixelHazardOverlapAcrossCells(t *testing.T) {
	lvl := floorLevel()
	lvl.Hazards = []gamemath.Rect{gamemath.NewRect(18.2, 150, 10, 10)}
	w := newTestWorld(t, lvl)

	// Right edge at 18 stops short of the hazard.
	placePlayer(t, w, 4, 146)
	interact(w)
	_, obj, _ := playerParts(t, w)
	assert.Equal(t, 4.0, obj.X)
	assert.Empty(t, DrainEvents(w))

	// Right edge at 18.5 overlaps by 0.3 and sits in the cell before it.
	placePlayer(t, w, 4.5, 146)
	require.True(t, gamemath.Overlaps(gamemath.NewRect(4.5, 146, cfg.Player.Width, cfg.Player.Height), lvl.Hazards[0]))
	interact(w)

	_, obj, _ = playerParts(t, w)
	assert.Equal(t, lvl.Start.X, obj.X)
	assert.Equal(t, lvl.Start.Y, obj.Y)
	assert.Equal(t, []components.EventKind{components.EventHazardHit}, eventKinds(DrainEvents(w)))
}

func TestSubPixelItemOverlapAcrossCells(t *testing.T) {
	lvl := floorLevel()
	lvl.Items = []gamemath.Rect{gamemath.NewRect(24.3, 100, 8, 8)}
	w := newTestWorld(t, lvl)
	session := GetOrCreateSession(w)

	placePlayer(t, w, 24.5-cfg.Player.Width, 96)
	interact(w)

	assert.Equal(t, 1, session.Collected)
	entry, ok := components.Item.First(w)
	require.True(t, ok)
	assert.True(t, components.Item.Get(entry).Collected)
}

func TestInvulnerabilityWindow(t *testing.T) {
	lvl := eightItemLevel()
	lvl.Hazards = []gamemath.Rect{gamemath.NewRect(150, 150, 20, 20)}
	w := newTestWorld(t, lvl)

	placePlayer(t, w, 155, 155)
	interact(w)
	require.Equal(t, []components.EventKind{components.EventHazardHit}, eventKinds(DrainEvents(w)))

	placePlayer(t, w, 155, 155)
	interact(w)
	assert.Empty(t, DrainEvents(w))

	for i := 0; i < cfg.Player.RespawnInvulnFrames; i++ {
		UpdatePlayer(w)
	}
	interact(w)
	assert.Equal(t, []components.EventKind{components.EventHazardHit}, eventKinds(DrainEvents(w)))
}

func TestEnemyTouchResets(t *testing.T) {
	lvl := floorLevel()
	lvl.Enemies = []leveldata.EnemySpawn{
		{Rect: gamemath.NewRect(100, 100, 12, 12), Motion: leveldata.MotionPatrol, Axis: "x", Distance: 20, Period: 1},
	}
	w := newTestWorld(t, lvl)

	placePlayer(t, w, 95, 95)
	interact(w)

	_, obj, _ := playerParts(t, w)
	assert.Equal(t, lvl.Start.X, obj.X)
	assert.Contains(t, eventKinds(DrainEvents(w)), components.EventHazardHit)
}

func TestPatrolEnemyMovesAndReturns(t *testing.T) {
	lvl := floorLevel()
	lvl.Enemies = []leveldata.EnemySpawn{
		{Rect: gamemath.NewRect(100, 50, 12, 12), Motion: leveldata.MotionPatrol, Axis: "x", Distance: 60, Period: 1},
	}
	w := newTestWorld(t, lvl)
	entry, ok := components.Enemy.First(w)
	require.True(t, ok)
	obj := components.Object.Get(entry)

	for i := 0; i < 30; i++ {
		UpdateEnemies(w)
	}
	assert.InDelta(t, 130.0, obj.X, 2)
	assert.Equal(t, 50.0, obj.Y)

	for i := 0; i < 60; i++ {
		UpdateEnemies(w)
	}
	assert.InDelta(t, 130.0, obj.X, 3)
	assert.False(t, components.Enemy.Get(entry).Forward)

	for i := 0; i < 30; i++ {
		UpdateEnemies(w)
	}
	assert.InDelta(t, 100.0, obj.X, 3)
}

func TestGravityEnemyFallsWithGravity(t *testing.T) {
	lvl := floorLevel()
	lvl.Enemies = []leveldata.EnemySpawn{
		{Rect: gamemath.NewRect(150, 20, 12, 12), Motion: leveldata.MotionGravity},
	}
	w := newTestWorld(t, lvl)
	entry, ok := components.Enemy.First(w)
	require.True(t, ok)
	require.True(t, entry.HasComponent(components.Physics))

	tick(w, 240)
	assert.InDelta(t, 258.0, components.Object.Get(entry).Y, 1e-9)

	require.True(t, SetGravityDirection(w, "up"))
	tick(w, 240)
	assert.Equal(t, 0.0, components.Object.Get(entry).Y)
}

func TestBoostFollowsGravity(t *testing.T) {
	w := newTestWorld(t, floorLevel())
	tick(w, 240)

	require.True(t, QueueBoost(w))
	assert.False(t, QueueBoost(w))

	UpdateSession(w)
	UpdatePlayer(w)
	player, _, physics := playerParts(t, w)
	assert.Equal(t, cfg.Boost.Impulse, physics.SpeedY)
	assert.Equal(t, cfg.Boost.CooldownTicks, player.BoostCooldown)
	assert.Contains(t, eventKinds(DrainEvents(w)), components.EventBoost)

	assert.False(t, QueueBoost(w))
	tick(w, cfg.Boost.CooldownTicks)
	assert.True(t, QueueBoost(w))
}

func TestResolveWallMarksGroundedAgainstGravity(t *testing.T) {
	ceiling := gamemath.NewRect(0, 0, 240, 6)
	body := gamemath.NewRect(50, 4, 14, 18)

	var physics components.PhysicsData
	physics.SpeedY = -3
	out, moved := ResolveWall(body, ceiling, &physics, gamemath.Up.Unit())
	require.True(t, moved)
	assert.Equal(t, 6.0, out.Y)
	assert.Equal(t, 0.0, physics.SpeedY)
	assert.True(t, physics.Grounded)

	physics = components.PhysicsData{SpeedY: -3}
	_, _ = ResolveWall(body, ceiling, &physics, gamemath.Down.Unit())
	assert.False(t, physics.Grounded)
}

func TestResolveWallLeavesSeparatedBodies(t *testing.T) {
	physics := components.PhysicsData{SpeedX: 2, SpeedY: 2}
	body := gamemath.NewRect(10, 10, 14, 18)
	out, moved := ResolveWall(body, gamemath.NewRect(24, 10, 10, 10), &physics, gamemath.Down.Unit())
	assert.False(t, moved)
	assert.Equal(t, body, out)
	assert.Equal(t, components.PhysicsData{SpeedX: 2, SpeedY: 2}, physics)
}

func TestCornerResolvesAgainstEveryWall(t *testing.T) {
	lvl := floorLevel()
	lvl.Walls = append(lvl.Walls, gamemath.NewRect(100, 200, 8, 70))
	w := newTestWorld(t, lvl)

	placePlayer(t, w, 95, 255)
	UpdateCollisions(w)

	_, obj, _ := playerParts(t, w)
	body := obj.Rect()
	for _, wall := range lvl.Walls {
		assert.False(t, gamemath.Overlaps(body, wall), "%v still inside %v", body, wall)
	}
}

func TestWallsResolveInLevelOrderAfterReload(t *testing.T) {
	first := floorLevel()
	first.Walls = append(first.Walls,
		gamemath.NewRect(100, 200, 8, 70),
		gamemath.NewRect(40, 60, 50, 8),
		gamemath.NewRect(160, 140, 8, 40),
	)
	second := floorLevel()
	second.Name = "floor again"
	w := newTestWorld(t, first, second)

	assert.Equal(t, first.Walls, levelWalls(w))

	require.True(t, LoadLevelAt(w, 1))
	assert.Equal(t, second.Walls, levelWalls(w))

	require.True(t, LoadLevelAt(w, 0))
	assert.Equal(t, first.Walls, levelWalls(w))
}

func TestLevelCompleteAdvances(t *testing.T) {
	first := floorLevel()
	first.Goal = gamemath.NewRect(0, 0, 60, 60)
	second := floorLevel()
	second.Name = "second"
	second.Start = gamemath.Vec{X: 100, Y: 30}
	second.Items = []gamemath.Rect{gamemath.NewRect(200, 250, 8, 8)}

	w := newTestWorld(t, first, second)
	session := GetOrCreateSession(w)

	tick(w, 2)
	require.Equal(t, components.ModeLevelComplete, session.Mode)

	tick(w, cfg.Tick.LevelCompleteFrames)
	assert.Equal(t, components.ModePlaying, session.Mode)
	level, ok := GetLevel(w)
	require.True(t, ok)
	assert.Equal(t, 1, level.LevelIndex)
	assert.Equal(t, 0, session.Collected)
	assert.Equal(t, 1, session.Required)
	assert.False(t, goalOpen(t, w))

	_, obj, _ := playerParts(t, w)
	assert.Equal(t, 100.0, obj.X)
}

func TestLastLevelEndsRun(t *testing.T) {
	lvl := floorLevel()
	lvl.Goal = gamemath.NewRect(0, 0, 60, 60)
	w := newTestWorld(t, lvl)
	session := GetOrCreateSession(w)

	tick(w, 2+cfg.Tick.LevelCompleteFrames)
	assert.Equal(t, components.ModeAllComplete, session.Mode)

	events := eventKinds(DrainEvents(w))
	assert.Contains(t, events, components.EventLevelComplete)
	assert.Contains(t, events, components.EventAllComplete)

	_, before, _ := playerParts(t, w)
	y := before.Y
	tick(w, 10)
	_, after, _ := playerParts(t, w)
	assert.Equal(t, y, after.Y)

	assert.False(t, TogglePause(w))
	require.True(t, RestartRun(w))
	assert.Equal(t, components.ModeSplash, session.Mode)
	require.True(t, StartRun(w))
	assert.Equal(t, components.ModePlaying, session.Mode)
}

func TestRestartMidRunReloadsFirstLevel(t *testing.T) {
	first := floorLevel()
	first.Goal = gamemath.NewRect(0, 0, 60, 60)
	second := floorLevel()
	second.Start = gamemath.Vec{X: 100, Y: 30}
	w := newTestWorld(t, first, second)

	tick(w, 2+cfg.Tick.LevelCompleteFrames)
	level, _ := GetLevel(w)
	require.Equal(t, 1, level.LevelIndex)

	require.True(t, SetGravityDirection(w, "up"))
	require.True(t, RestartRun(w))
	assert.Equal(t, 0, level.LevelIndex)
	assert.Equal(t, components.ModePlaying, GetOrCreateSession(w).Mode)
	assert.Equal(t, gamemath.Down, GetGravity(w).Direction)
}

func TestSplashIgnoresCommands(t *testing.T) {
	w := donburi.NewWorld()
	factory.CreateSpace(w, cfg.World.Width, cfg.World.Height, cfg.World.CellSize)
	factory.CreateLevel(w, []leveldata.Level{floorLevel()})
	require.True(t, LoadLevelAt(w, 0))

	assert.False(t, TogglePause(w))
	assert.False(t, RestartRun(w))
	assert.False(t, QueueBoost(w))
	assert.False(t, SetGravityDirection(w, "up"))

	tick(w, 10)
	_, obj, _ := playerParts(t, w)
	assert.Equal(t, 12.0, obj.Y)
}

func TestSystemsTolerateEmptyWorld(t *testing.T) {
	w := donburi.NewWorld()
	GetOrCreateSession(w).Mode = components.ModePlaying

	assert.NotPanics(t, func() { tick(w, 3) })
	assert.False(t, QueueBoost(w))
}
