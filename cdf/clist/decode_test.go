package clist

import (
	"encoding/json"
	"testing"

	"cdf-scope/cdf/cbytes"
	"github.com/stretchr/testify/assert"
)

func decodeOneInt(reader *cbytes.Reader) (*int32, error) {
	result, err := reader.ReadInt()
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func TestDecode_Absent(t *testing.T) {
	reader := cbytes.NewBytesReader(
		[]byte{
			0x00, 0x00, 0x00, 0x00,
			0x00, 0x00, 0x00, 0x00,
		},
	)

	list, err := Decode(reader, TagDimension, decodeOneInt)
	assert.NoError(t, err)
	assert.False(t, list.Present)
	assert.Empty(t, list.Items)
	assert.Equal(t, int64(8), reader.Position())
}

func TestDecode_MalformedAbsent(t *testing.T) {
	reader := cbytes.NewBytesReader(
		[]byte{
			0x00, 0x00, 0x00, 0x00,
			0x00, 0x00, 0x00, 0x01,
		},
	)

	_, err := Decode(reader, TagDimension, decodeOneInt)
	assert.ErrorIs(t, err, ErrMalformedAbsentList)
}

func TestDecode_WrongTag(t *testing.T) {
	reader := cbytes.NewBytesReader(
		[]byte{
			0x00, 0x00, 0x00, 0x0C,
			0x00, 0x00, 0x00, 0x00,
		},
	)

	_, err := Decode(reader, TagDimension, decodeOneInt)
	assert.ErrorIs(t, err, ErrWrongListTag)
}

func TestDecode_Present(t *testing.T) {
	reader := cbytes.NewBytesReader(
		[]byte{
			0x00, 0x00, 0x00, 0x0A,
			0x00, 0x00, 0x00, 0x02,
			0x00, 0x00, 0x00, 0x07,
			0x00, 0x00, 0x00, 0x08,
		},
	)

	list, err := Decode(reader, TagDimension, decodeOneInt)
	assert.NoError(t, err)
	assert.True(t, list.Present)
	assert.Equal(t, []int32{7, 8}, list.Items)
}

func TestDecode_NegativeCount(t *testing.T) {
	reader := cbytes.NewBytesReader(
		[]byte{
			0x00, 0x00, 0x00, 0x0A,
			0xFF, 0xFF, 0xFF, 0xFF,
		},
	)

	_, err := Decode(reader, TagDimension, decodeOneInt)
	assert.ErrorIs(t, err, cbytes.ErrNegativeValue)
}

func TestDecode_TruncatedTag(t *testing.T) {
	reader := cbytes.NewBytesReader([]byte{0x00, 0x00})

	_, err := Decode(reader, TagDimension, decodeOneInt)
	assert.ErrorIs(t, err, cbytes.ErrTruncated)
}

func TestList_MarshalJSON(t *testing.T) {
	absentBytes, err := json.Marshal(List[int32]{})
	assert.NoError(t, err)
	assert.Equal(t, `"absent"`, string(absentBytes))

	presentBytes, err := json.Marshal(List[int32]{Present: true, Items: []int32{1, 2}})
	assert.NoError(t, err)
	assert.Equal(t, `[1,2]`, string(presentBytes))
}
