package boot

import (
	"crypto/md5"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	_, err := Load(make([]byte, 0x200))
	assert.Error(t, err)

	r, err := Load(make([]byte, Size))
	require.NoError(t, err)
	sum := md5.Sum(make([]byte, Size))
	assert.Equal(t, hex.EncodeToString(sum[:]), r.Checksum())
	assert.Equal(t, "unknown", r.Model())
	assert.Len(t, r.Regions(), 1)

	var none *ROM
	assert.Equal(t, "none", none.Model())
	assert.Empty(t, none.Checksum())
}

func TestROM_RegionsCGB(t *testing.T) {
	raw := make([]byte, SizeCGB)
	raw[0x0000] = 0x31
	raw[0x0100] = 0xAA // never mapped
	raw[0x0200] = 0x42

	r, err := Load(raw)
	require.NoError(t, err)

	regions := r.Regions()
	require.Len(t, regions, 2)
	assert.Len(t, regions[0x0000], 0x100)
	assert.Equal(t, uint8(0x31), regions[0x0000][0])
	assert.Len(t, regions[0x0200], 0x700)
	assert.Equal(t, uint8(0x42), regions[0x0200][0])
}
