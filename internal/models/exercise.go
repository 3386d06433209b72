package models

import "encoding/json"

// Известные виды упражнений. Всё, что не распознано,
// сохраняется как opaque и отдаётся без изменений.
const (
	ExerciseKindStrength = "strength"
	ExerciseKindTimed    = "timed"
	ExerciseKindOpaque   = "opaque"
)

type StrengthExercise struct {
	Name     string  `json:"name"`
	Sets     int     `json:"sets"`
	Reps     int     `json:"reps"`
	WeightKg float64 `json:"weight_kg,omitempty"`
}

type TimedExercise struct {
	Name            string `json:"name"`
	DurationSeconds int    `json:"duration_seconds"`
	DistanceMeters  int    `json:"distance_meters,omitempty"`
}

type Exercise struct {
	Kind     string
	Strength *StrengthExercise
	Timed    *TimedExercise
	Raw      json.RawMessage
}

func (e *Exercise) UnmarshalJSON(data []byte) error {
	var probe struct {
		Kind string `json:"kind"`
	}
	if err := json.Unmarshal(data, &probe); err == nil {
		switch probe.Kind {
		case ExerciseKindStrength:
			var s StrengthExercise
			if err := json.Unmarshal(data, &s); err == nil {
				e.Kind = ExerciseKindStrength
				e.Strength = &s
				return nil
			}
		case ExerciseKindTimed:
			var t TimedExercise
			if err := json.Unmarshal(data, &t); err == nil {
				e.Kind = ExerciseKindTimed
				e.Timed = &t
				return nil
			}
		}
	}

	e.Kind = ExerciseKindOpaque
	e.Raw = append(json.RawMessage(nil), data...)
	return nil
}

func (e Exercise) MarshalJSON() ([]byte, error) {
	switch e.Kind {
	case ExerciseKindStrength:
		return json.Marshal(struct {
			Kind string `json:"kind"`
			*StrengthExercise
		}{e.Kind, e.Strength})
	case ExerciseKindTimed:
		return json.Marshal(struct {
			Kind string `json:"kind"`
			*TimedExercise
		}{e.Kind, e.Timed})
	}
	if len(e.Raw) > 0 {
		return e.Raw, nil
	}
	return []byte("null"), nil
}

type ExerciseList []Exercise

func (l *ExerciseList) UnmarshalJSON(data []byte) error {
	var items []Exercise
	if err := json.Unmarshal(data, &items); err != nil {
		// не массив — заворачиваем целиком как один opaque-элемент
		*l = ExerciseList{{Kind: ExerciseKindOpaque, Raw: append(json.RawMessage(nil), data...)}}
		return nil
	}
	*l = items
	return nil
}
