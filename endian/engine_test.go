package endian

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetLittleEndianEngine(t *testing.T) {
	require := require.New(t)

	engine := GetLittleEndianEngine()
	require.Equal(binary.LittleEndian, engine)

	buf := engine.AppendUint32(nil, 0x54534644)
	require.Equal([]byte{0x44, 0x46, 0x53, 0x54}, buf)
}
