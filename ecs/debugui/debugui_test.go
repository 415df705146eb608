package debugui

import (
	"reflect"
	"testing"
	"time"

	"github.com/plus3/scenecore/config"
	"github.com/plus3/scenecore/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type inspected struct {
	ecs.BaseComponent
	Speed   float32
	Lives   uint8
	Label   string
	Enabled bool
	Tags    []string
	Target  *ecs.Entity
	hidden  int
}

func TestReflectionCacheSkipsBaseComponent(t *testing.T) {
	cache := NewReflectionCache()

	fields := cache.GetFields(reflect.TypeFor[inspected]())

	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = f.Name
	}
	assert.Equal(t, []string{"Speed", "Lives", "Label", "Enabled", "Tags", "Target"}, names)
	editors := make([]fieldEditor, len(fields))
	for i, f := range fields {
		editors[i] = f.Editor
	}
	assert.Equal(t, []fieldEditor{editorFloat, editorUint, editorString, editorBool, editorSummary, editorNested}, editors)
	assert.True(t, fields[5].Deref)
	assert.False(t, fields[0].Deref)

	again := cache.GetFields(reflect.TypeFor[inspected]())
	assert.Same(t, &fields[0], &again[0], "second lookup is served from the cache")

	assert.Empty(t, cache.GetFields(reflect.TypeFor[int]()))
}

func TestSetFieldValue(t *testing.T) {
	e := ecs.NewEntity()
	c := ecs.AddComponent[inspected](e)
	val := reflect.ValueOf(c).Elem()

	assert.True(t, setFieldValue(val.FieldByName("Speed"), 2.5))
	assert.True(t, setFieldValue(val.FieldByName("Lives"), int64(3)))
	assert.True(t, setFieldValue(val.FieldByName("Label"), "hero"))
	assert.True(t, setFieldValue(val.FieldByName("Enabled"), true))

	assert.Equal(t, float32(2.5), c.Speed)
	assert.Equal(t, uint8(3), c.Lives)
	assert.Equal(t, "hero", c.Label)
	assert.True(t, c.Enabled)

	assert.False(t, setFieldValue(val.FieldByName("Lives"), int64(-1)))
	assert.False(t, setFieldValue(val.FieldByName("Lives"), int64(300)))
	assert.False(t, setFieldValue(val.FieldByName("Label"), int64(1)))
	assert.False(t, setFieldValue(val.FieldByName("hidden"), int64(1)))
	assert.Equal(t, uint8(3), c.Lives)
}

func TestFieldSummary(t *testing.T) {
	c := inspected{Tags: []string{"a", "b"}}
	val := reflect.ValueOf(c)

	assert.Equal(t, "Tags: [2 items]", fieldSummary("Tags", val.FieldByName("Tags")))
	assert.Equal(t, "Target: nil", fieldSummary("Target", val.FieldByName("Target")))
	assert.Equal(t, "Lives: 0", fieldSummary("Lives", val.FieldByName("Lives")))
	assert.Equal(t, "hidden: <unexported>", fieldSummary("hidden", val.FieldByName("hidden")))
	assert.Equal(t, "Counts: map[1 items]", fieldSummary("Counts", reflect.ValueOf(map[string]int{"x": 1})))
}

func TestInspectorWindowTitle(t *testing.T) {
	named := ecs.NewEntity(ecs.WithName("player"))
	assert.Equal(t, "Inspector: player", ecs.AddComponent[InspectorComponent](named).windowTitle())

	custom := ecs.AddComponent[InspectorComponent](named)
	custom.Title = "Debug"
	assert.Equal(t, "Debug", custom.windowTitle())

	assert.Equal(t, "Inspector", ecs.AddComponent[InspectorComponent](ecs.NewEntity()).windowTitle())
}

func TestStatsComponentSampling(t *testing.T) {
	target := ecs.NewEntity()
	scheduler := ecs.NewScheduler(target, config.SchedulerConfig{
		FrameInterval:   time.Millisecond,
		PhysicsStep:     time.Millisecond,
		MaxPhysicsSteps: 1,
	})

	sc := ecs.AddComponent[StatsComponent](ecs.NewEntity()).Init(scheduler, 4)
	require.Len(t, sc.frameHistory, 4)

	sc.sample(scheduler.GetStats())
	assert.Equal(t, 0, sc.frameIndex, "nothing rendered yet")

	scheduler.Once(0.001)
	sc.sample(scheduler.GetStats())
	sc.sample(scheduler.GetStats())
	assert.Equal(t, 1, sc.frameIndex, "each rendered frame is sampled once")

	for i := 0; i < 4; i++ {
		scheduler.Once(0.001)
		sc.sample(scheduler.GetStats())
	}
	assert.Equal(t, 1, sc.frameIndex, "history wraps around")
	assert.GreaterOrEqual(t, sc.average(), float32(0))

	assert.Len(t, ecs.AddComponent[StatsComponent](ecs.NewEntity()).Init(nil, 0).frameHistory, 120)
}
