package shared_test

import (
	"errors"
	"testing"

	"github.com/jackyeh168/autoservice/src/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type rowMarker struct{}
type listMarker struct{}

type testRowID = shared.EntityID[rowMarker]
type testListID = shared.EntityID[listMarker]

// contextError 模擬各 bounded context 的 DomainError
type contextError struct {
	message string
	context map[string]interface{}
}

func (e *contextError) Error() string {
	return e.message
}

func (e *contextError) WithContext(keyValues ...interface{}) error {
	ctx := make(map[string]interface{})
	for i := 0; i+1 < len(keyValues); i += 2 {
		ctx[keyValues[i].(string)] = keyValues[i+1]
	}
	return &contextError{message: e.message, context: ctx}
}

var (
	errInvalidRow  = &contextError{message: "invalid row id"}
	errInvalidList = &contextError{message: "invalid list id"}
)

func TestNewEntityID_GeneratesUniqueIDs(t *testing.T) {
	// Act
	id1 := shared.NewEntityID[rowMarker]()
	id2 := shared.NewEntityID[rowMarker]()

	// Assert
	assert.False(t, id1.IsEmpty())
	assert.NotEqual(t, id1.String(), id2.String(), "每次生成的 UUID 應該不同")
	assert.False(t, id1.Equals(id2))
}

func TestEntityIDFromString_ValidUUID_Success(t *testing.T) {
	// Arrange
	raw := "550e8400-e29b-41d4-a716-446655440000"

	// Act
	id, err := shared.EntityIDFromString[rowMarker](raw, errInvalidRow)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, raw, id.String())
}

func TestEntityIDFromString_NormalisesToLowercase(t *testing.T) {
	// Act
	id, err := shared.EntityIDFromString[rowMarker]("550E8400-E29B-41D4-A716-446655440000", errInvalidRow)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "550e8400-e29b-41d4-a716-446655440000", id.String())
}

func TestEntityIDFromString_InvalidInput_ReturnsContextualError(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{"空字串", ""},
		{"不是 UUID 格式", "not-a-uuid"},
		{"部分 UUID", "550e8400-e29b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Act
			id, err := shared.EntityIDFromString[rowMarker](tt.value, errInvalidRow)

			// Assert
			require.Error(t, err)
			assert.True(t, id.IsEmpty(), "解析失敗應該返回空 ID")

			var ctxErr *contextError
			require.True(t, errors.As(err, &ctxErr))
			assert.Equal(t, "invalid row id", ctxErr.message)
			assert.Equal(t, tt.value, ctxErr.context["input"])
			assert.NotNil(t, ctxErr.context["parse_error"])
		})
	}
}

func TestEntityIDFromString_NilUUID_Rejected(t *testing.T) {
	// Act
	id, err := shared.EntityIDFromString[listMarker]("00000000-0000-0000-0000-000000000000", errInvalidList)

	// Assert
	assert.Equal(t, errInvalidList, err)
	assert.True(t, id.IsEmpty())
}

func TestEntityIDFromString_PlainErrorTemplate_ReturnedAsIs(t *testing.T) {
	// Arrange
	plain := errors.New("plain")

	// Act
	_, err := shared.EntityIDFromString[rowMarker]("bad", plain)

	// Assert
	assert.Equal(t, plain, err)
}

func TestEntityID_DifferentMarkers_AreDistinctTypes(t *testing.T) {
	// Arrange
	raw := "550e8400-e29b-41d4-a716-446655440000"

	// Act
	rowID, _ := shared.EntityIDFromString[rowMarker](raw, errInvalidRow)
	listID, _ := shared.EntityIDFromString[listMarker](raw, errInvalidList)

	// Assert
	assert.IsType(t, testRowID{}, rowID)
	assert.IsType(t, testListID{}, listID)
	assert.Equal(t, rowID.String(), listID.String())
}

func TestEntityID_ZeroValue_IsEmpty(t *testing.T) {
	assert.True(t, testRowID{}.IsEmpty())
}
