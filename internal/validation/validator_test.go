package validation

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

type exerciseForm struct {
	LiftID string `json:"liftId" binding:"required" validate:"required"`
	Sets   int    `json:"sets" validate:"gte=0"`
}

type workoutForm struct {
	Name      string         `json:"name" validate:"notblank,max=5"`
	Email     string         `json:"email" validate:"omitempty,email"`
	Password  string         `json:"password" validate:"omitempty,password"`
	Exercises []exerciseForm `json:"exercises" validate:"dive"`
	Ignored   string         `json:"-" validate:"omitempty"`
}

func newValidator() *validator.Validate {
	v := validator.New()
	Register(v)
	return v
}

func TestToDetails_FieldErrors(t *testing.T) {
	err := newValidator().Struct(workoutForm{
		Name:      "   ",
		Email:     "nope",
		Password:  "short",
		Exercises: []exerciseForm{{LiftID: "squat", Sets: 1}, {Sets: -1}},
	})

	details := ToDetails(err)

	assert.Equal(t, map[string]string{
		"name":                "must not be blank",
		"email":               "must be a valid email",
		"password":            "must be between 8 and 72 characters long",
		"exercises[1].liftId": "is required",
		"exercises[1].sets":   "must be greater than or equal to 0",
	}, details)
}

func TestToDetails_MaxLength(t *testing.T) {
	err := newValidator().Struct(workoutForm{Name: "Leg Day"})
	assert.Equal(t, map[string]string{"name": "must be at most 5 characters long"}, ToDetails(err))
}

func TestToDetails_Passes(t *testing.T) {
	err := newValidator().Struct(workoutForm{Name: "Legs", Password: "long enough"})
	assert.NoError(t, err)
	assert.Nil(t, ToDetails(nil))
}

func TestToDetails_JSONErrors(t *testing.T) {
	var dst struct{ Sets int }
	err := json.Unmarshal([]byte(`{"Sets": "x"}`), &dst)
	assert.Equal(t, map[string]string{"payload": "invalid json"}, ToDetails(err))

	err = json.Unmarshal([]byte(`{"Sets": }`), &dst)
	assert.Equal(t, map[string]string{"payload": "invalid json"}, ToDetails(err))

	assert.Equal(t, map[string]string{"payload": "invalid payload"}, ToDetails(errors.New("boom")))
}
