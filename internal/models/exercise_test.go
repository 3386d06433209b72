package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExerciseListDecodesKnownKinds(t *testing.T) {
	raw := `[
		{"kind": "strength", "name": "Back Squat", "sets": 5, "reps": 5, "weight_kg": 80},
		{"kind": "timed", "name": "Row", "duration_seconds": 600, "distance_meters": 2000}
	]`

	var list ExerciseList
	require.NoError(t, json.Unmarshal([]byte(raw), &list))
	require.Len(t, list, 2)

	assert.Equal(t, ExerciseKindStrength, list[0].Kind)
	require.NotNil(t, list[0].Strength)
	assert.Equal(t, "Back Squat", list[0].Strength.Name)
	assert.Equal(t, 5, list[0].Strength.Sets)

	assert.Equal(t, ExerciseKindTimed, list[1].Kind)
	require.NotNil(t, list[1].Timed)
	assert.Equal(t, 600, list[1].Timed.DurationSeconds)
}

func TestExerciseListKeepsUnknownShapesOpaque(t *testing.T) {
	raw := `[{"kind": "mobility", "flow": ["cat", "cow"]}, "just a note"]`

	var list ExerciseList
	require.NoError(t, json.Unmarshal([]byte(raw), &list))
	require.Len(t, list, 2)

	assert.Equal(t, ExerciseKindOpaque, list[0].Kind)
	assert.JSONEq(t, `{"kind": "mobility", "flow": ["cat", "cow"]}`, string(list[0].Raw))
	assert.Equal(t, ExerciseKindOpaque, list[1].Kind)
}

func TestExerciseListWrapsNonArrayPayload(t *testing.T) {
	raw := `{"legacy": true, "blocks": []}`

	var list ExerciseList
	require.NoError(t, json.Unmarshal([]byte(raw), &list))
	require.Len(t, list, 1)
	assert.Equal(t, ExerciseKindOpaque, list[0].Kind)
	assert.JSONEq(t, raw, string(list[0].Raw))
}

func TestExerciseListRoundTripPreservesOpaque(t *testing.T) {
	raw := `[{"kind":"strength","name":"Deadlift","sets":3,"reps":5},{"custom":"shape","emom":12}]`

	var list ExerciseList
	require.NoError(t, json.Unmarshal([]byte(raw), &list))

	out, err := json.Marshal(list)
	require.NoError(t, err)
	assert.JSONEq(t, raw, string(out))
}
