package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validStudentRequest() StudentRequest {
	return StudentRequest{
		RegNo:      "23CSE0001",
		Name:       "Jane Roe",
		Block:      "A",
		RoomNumber: "101",
		Mess:       "Anna Mess",
		MessType:   "Veg",
	}
}

func TestValidateStudentAccepted(t *testing.T) {
	v := NewValidator()
	req := validStudentRequest()
	assert.Nil(t, ValidateStudent(v, &req))
}

func TestValidateStudentRegNoFormat(t *testing.T) {
	v := NewValidator()
	req := validStudentRequest()
	req.RegNo = "abc1234"
	msgs := ValidateStudent(v, &req)
	require.Len(t, msgs, 1)
	assert.Equal(t, "abc1234 is not a valid registration number! Format should be: 23CSE0001", msgs[0])
}

func TestValidateStudentBlock(t *testing.T) {
	v := NewValidator()

	req := validStudentRequest()
	req.Block = "AB"
	msgs := ValidateStudent(v, &req)
	require.Len(t, msgs, 1)
	assert.Equal(t, "AB must be a single uppercase letter!", msgs[0])

	req = validStudentRequest()
	req.Block = "a"
	msgs = ValidateStudent(v, &req)
	require.Len(t, msgs, 1)
	assert.Equal(t, "a must be a single uppercase letter!", msgs[0])

	req = validStudentRequest()
	req.Block = "Z"
	assert.Nil(t, ValidateStudent(v, &req))
}

func TestValidateStudentRoomNumber(t *testing.T) {
	v := NewValidator()

	req := validStudentRequest()
	req.RoomNumber = "12"
	msgs := ValidateStudent(v, &req)
	require.Len(t, msgs, 1)
	assert.Equal(t, "12 must be a 3-digit number!", msgs[0])

	req = validStudentRequest()
	req.RoomNumber = "12A"
	msgs = ValidateStudent(v, &req)
	require.Len(t, msgs, 1)
	assert.Equal(t, "12A must be a 3-digit number!", msgs[0])
}

func TestValidateStudentNameLength(t *testing.T) {
	v := NewValidator()
	req := validStudentRequest()
	req.Name = "J"
	msgs := ValidateStudent(v, &req)
	require.Len(t, msgs, 1)
	assert.Equal(t, "Name must be at least 2 characters long", msgs[0])
}

func TestValidateStudentNameCharacters(t *testing.T) {
	v := NewValidator()
	req := validStudentRequest()
	req.Name = "Jane42"
	msgs := ValidateStudent(v, &req)
	require.Len(t, msgs, 1)
	assert.Equal(t, "Jane42 can only contain letters and spaces!", msgs[0])
}

func TestValidateStudentEnums(t *testing.T) {
	v := NewValidator()

	req := validStudentRequest()
	req.Mess = "Cafeteria"
	msgs := ValidateStudent(v, &req)
	require.Len(t, msgs, 1)
	assert.Equal(t, "Cafeteria is not a valid mess", msgs[0])

	req = validStudentRequest()
	req.MessType = "Vegan"
	msgs = ValidateStudent(v, &req)
	require.Len(t, msgs, 1)
	assert.Equal(t, "Vegan is not a valid mess type", msgs[0])
}

func TestValidateStudentReportsEveryFailingField(t *testing.T) {
	v := NewValidator()
	req := StudentRequest{}
	msgs := ValidateStudent(v, &req)
	assert.Equal(t, []string{
		"Registration number is required",
		"Name is required",
		"Block is required",
		"Room number is required",
		"Mess selection is required",
		"Mess type is required",
	}, msgs)
}

func wasteRequest(amount float64) WasteRequest {
	return WasteRequest{Type: "plate", Amount: &amount, Reason: "leftover rice after lunch"}
}

func TestValidateWasteAmountBounds(t *testing.T) {
	v := NewValidator()

	req := wasteRequest(-5)
	msgs := ValidateWaste(v, &req)
	require.Len(t, msgs, 1)
	assert.Equal(t, "Amount cannot be negative", msgs[0])

	req = wasteRequest(0)
	assert.Nil(t, ValidateWaste(v, &req))
}

func TestValidateWasteRequiredFields(t *testing.T) {
	v := NewValidator()
	req := WasteRequest{}
	msgs := ValidateWaste(v, &req)
	assert.Equal(t, []string{
		"Waste type is required",
		"Amount is required",
		"Reason is required",
	}, msgs)
}

func TestValidateWasteType(t *testing.T) {
	v := NewValidator()
	req := wasteRequest(2)
	req.Type = "liquid"
	msgs := ValidateWaste(v, &req)
	require.Len(t, msgs, 1)
	assert.Equal(t, "liquid is not a valid waste type", msgs[0])
}

func TestValidateSuggestion(t *testing.T) {
	v := NewValidator()

	req := SuggestionRequest{MealType: "lunch", Suggestion: "more south indian breakfast options"}
	assert.Nil(t, ValidateSuggestion(v, &req))

	req = SuggestionRequest{MealType: "brunch", Suggestion: "more south indian breakfast options"}
	msgs := ValidateSuggestion(v, &req)
	require.Len(t, msgs, 1)
	assert.Equal(t, "brunch is not a valid meal type", msgs[0])

	req = SuggestionRequest{MealType: "lunch", Suggestion: "short"}
	msgs = ValidateSuggestion(v, &req)
	require.Len(t, msgs, 1)
	assert.Equal(t, "Suggestion must be at least 10 characters long", msgs[0])

	req = SuggestionRequest{}
	msgs = ValidateSuggestion(v, &req)
	assert.Equal(t, []string{
		"Please select a meal type",
		"Please enter your suggestion",
	}, msgs)
}
